package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/money"
	"chamaflow/internal/pkg/validate"
)

// RentService tracks group-owned rental properties and their income.
type RentService struct {
	propertyRepo repositories.PropertyRepository
}

func NewRentService(propertyRepo repositories.PropertyRepository) *RentService {
	return &RentService{propertyRepo: propertyRepo}
}

type AddPropertyInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	MonthlyRent string `json:"monthly_rent" validate:"required"`
	IsOccupied  *bool  `json:"is_occupied"`
	TenantName  string `json:"tenant_name" validate:"omitempty,max=100"`
	TenantPhone string `json:"tenant_phone" validate:"omitempty,max=20"`
}

// AddProperty registers a rental property.
func (s *RentService) AddProperty(ctx context.Context, input AddPropertyInput) (*models.Property, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	rentCents, err := money.Parse(input.MonthlyRent)
	if err != nil || rentCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	property := &models.Property{
		Name:        input.Name,
		Location:    input.Location,
		RentCents:   rentCents,
		IsOccupied:  true,
		TenantName:  input.TenantName,
		TenantPhone: input.TenantPhone,
	}
	if input.IsOccupied != nil {
		property.IsOccupied = *input.IsOccupied
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, domain.ErrInternalServer
	}
	return property, nil
}

// ListProperties returns all registered properties.
func (s *RentService) ListProperties(ctx context.Context) ([]*models.Property, error) {
	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return properties, nil
}

type RecordRentPaymentInput struct {
	Amount        string `json:"amount" validate:"required"`
	PaymentDate   string `json:"payment_date" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
	ReceiptCode   string `json:"receipt_code" validate:"omitempty,max=50"`
	Notes         string `json:"notes" validate:"omitempty,max=200"`
}

// RecordPayment records rent received for a property.
func (s *RentService) RecordPayment(ctx context.Context, propertyID uint, input RecordRentPaymentInput) (*models.RentPayment, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, domain.ErrInternalServer
	}

	amountCents, err := money.Parse(input.Amount)
	if err != nil || amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	paymentDate, err := time.Parse(domain.DateLayout, input.PaymentDate)
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

	payment := &models.RentPayment{
		PropertyID:    propertyID,
		AmountCents:   amountCents,
		PaymentDate:   paymentDate,
		PaymentMethod: paymentMethod,
		ReceiptCode:   receiptCode,
		Notes:         input.Notes,
	}
	if err := s.propertyRepo.CreatePayment(ctx, payment); err != nil {
		return nil, domain.ErrInternalServer
	}
	return payment, nil
}

// ListPayments returns the payments recorded for a property.
func (s *RentService) ListPayments(ctx context.Context, propertyID uint) ([]*models.RentPayment, error) {
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, domain.ErrInternalServer
	}

	payments, err := s.propertyRepo.ListPayments(ctx, propertyID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return payments, nil
}
