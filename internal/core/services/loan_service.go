package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/money"
	"chamaflow/internal/pkg/validate"
)

// LoanService owns the loan lifecycle: request, review, listing.
// Reviews run inside a row-locked transaction so two officials racing
// on the same loan cannot both win.
type LoanService struct {
	loanRepo repositories.LoanRepository
	notifier *NotificationService
}

func NewLoanService(loanRepo repositories.LoanRepository, notifier *NotificationService) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		notifier: notifier,
	}
}

type RequestLoanInput struct {
	Amount  string `json:"amount" validate:"required"`
	Purpose string `json:"purpose" validate:"required"`
	DueDate string `json:"due_date" validate:"required"`
}

// Request files a new loan for the calling member. Loans always start
// pending regardless of the caller's role.
func (s *LoanService) Request(ctx context.Context, caller Caller, input RequestLoanInput) (*models.Loan, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	amountCents, err := money.Parse(input.Amount)
	if err != nil || amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	dueDate, err := time.Parse(domain.DateLayout, input.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	loan := &models.Loan{
		PersonID:    caller.PersonID,
		AmountCents: amountCents,
		Purpose:     input.Purpose,
		DueDate:     dueDate,
		Status:      string(domain.LoanPending),
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, domain.ErrInternalServer
	}
	return loan, nil
}

// Approve moves a pending loan to approved.
func (s *LoanService) Approve(ctx context.Context, reviewer Caller, loanID uint) (*models.Loan, error) {
	return s.review(ctx, reviewer, loanID, domain.LoanApproved)
}

// Reject moves a pending loan to rejected. The reviewer is recorded
// either way so the decision is attributable.
func (s *LoanService) Reject(ctx context.Context, reviewer Caller, loanID uint) (*models.Loan, error) {
	return s.review(ctx, reviewer, loanID, domain.LoanRejected)
}

func (s *LoanService) review(ctx context.Context, reviewer Caller, loanID uint, target domain.LoanStatus) (*models.Loan, error) {
	loan, err := s.loanRepo.Transition(ctx, loanID, func(loan *models.Loan) error {
		// Guards run before any mutation so a refused review leaves
		// the row untouched.
		if reviewer.PersonID == loan.PersonID {
			return domain.ErrSelfDealing
		}
		if !domain.LoanStatus(loan.Status).CanTransition(target) {
			return domain.ErrInvalidTransition
		}

		reviewerID := reviewer.UserID
		loan.Status = string(target)
		loan.Approved = target == domain.LoanApproved
		loan.ApprovedBy = &reviewerID
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, domain.ErrLoanNotFound
		case errors.Is(err, domain.ErrSelfDealing),
			errors.Is(err, domain.ErrInvalidTransition):
			return nil, err
		default:
			return nil, domain.ErrInternalServer
		}
	}

	title := "Loan Approved"
	message := fmt.Sprintf("Your loan of KES %s has been approved.", money.Format(loan.AmountCents))
	if target == domain.LoanRejected {
		title = "Loan Rejected"
		message = fmt.Sprintf("Your loan request of KES %s was rejected.", money.Format(loan.AmountCents))
	}
	s.notifier.NotifyPerson(ctx, loan.PersonID, title, message)

	return loan, nil
}

// ListMine returns the caller's own loans, newest first.
func (s *LoanService) ListMine(ctx context.Context, caller Caller) ([]*models.Loan, error) {
	loans, err := s.loanRepo.ListByPerson(ctx, caller.PersonID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return loans, nil
}

// List returns a page of all loans together with the total count.
func (s *LoanService) List(ctx context.Context, offset, limit int) ([]*models.Loan, int64, error) {
	loans, total, err := s.loanRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, domain.ErrInternalServer
	}
	return loans, total, nil
}

// Get returns a single loan by id.
func (s *LoanService) Get(ctx context.Context, loanID uint) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, domain.ErrInternalServer
	}
	return loan, nil
}
