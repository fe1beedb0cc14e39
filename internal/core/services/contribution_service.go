package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/money"
	"chamaflow/internal/pkg/validate"
)

// ContributionService records member savings contributions.
type ContributionService struct {
	contributionRepo repositories.ContributionRepository
	notifier         *NotificationService
}

func NewContributionService(contributionRepo repositories.ContributionRepository, notifier *NotificationService) *ContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		notifier:         notifier,
	}
}

type SubmitContributionInput struct {
	Amount        string `json:"amount" validate:"required"`
	Date          string `json:"date" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
	ReceiptCode   string `json:"receipt_code" validate:"omitempty,max=50"`
}

// Submit records a contribution for the calling member.
func (s *ContributionService) Submit(ctx context.Context, caller Caller, input SubmitContributionInput) (*models.Contribution, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	amountCents, err := money.Parse(input.Amount)
	if err != nil || amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	date, err := time.Parse(domain.DateLayout, input.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "M-Pesa"
	}
	receiptCode := input.ReceiptCode
	if receiptCode == "" {
		receiptCode = strings.ToUpper(uuid.NewString()[:8])
	}

	contribution := &models.Contribution{
		PersonID:      caller.PersonID,
		AmountCents:   amountCents,
		Date:          date,
		PaymentMethod: paymentMethod,
		ReceiptCode:   receiptCode,
	}
	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, domain.ErrInternalServer
	}

	s.notifier.Notify(ctx, caller.UserID, "Contribution Received",
		fmt.Sprintf("We received your contribution of KES %s on %s.",
			money.Format(amountCents), date.Format(domain.DateLayout)))

	return contribution, nil
}

// ListMine returns the caller's contributions, newest first.
func (s *ContributionService) ListMine(ctx context.Context, caller Caller) ([]*models.Contribution, error) {
	contributions, err := s.contributionRepo.ListByPerson(ctx, caller.PersonID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return contributions, nil
}

// List returns a page of all contributions with the total count.
func (s *ContributionService) List(ctx context.Context, offset, limit int) ([]*models.Contribution, int64, error) {
	contributions, total, err := s.contributionRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, domain.ErrInternalServer
	}
	return contributions, total, nil
}
