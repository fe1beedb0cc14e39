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
	"chamaflow/internal/pkg/validate"
)

// MaintenanceService tracks maintenance issues on rental properties.
type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	propertyRepo    repositories.PropertyRepository
}

func NewMaintenanceService(maintenanceRepo repositories.MaintenanceRepository, propertyRepo repositories.PropertyRepository) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
	}
}

type ReportIssueInput struct {
	PropertyID       uint   `json:"property_id" validate:"required"`
	IssueDescription string `json:"issue_description" validate:"required,max=255"`
}

// Report files a maintenance request against a property.
func (s *MaintenanceService) Report(ctx context.Context, input ReportIssueInput) (*models.MaintenanceRequest, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.propertyRepo.GetByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, domain.ErrInternalServer
	}

	request := &models.MaintenanceRequest{
		PropertyID:       input.PropertyID,
		IssueDescription: input.IssueDescription,
		Status:           models.MaintenancePending,
	}
	if err := s.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, domain.ErrInternalServer
	}
	return request, nil
}

// List returns all maintenance requests, newest first.
func (s *MaintenanceService) List(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	requests, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return requests, nil
}

type ResolveIssueInput struct {
	ResolutionNotes string `json:"resolution_notes" validate:"omitempty,max=255"`
}

// Resolve closes a maintenance request with optional notes.
func (s *MaintenanceService) Resolve(ctx context.Context, requestID uint, input ResolveIssueInput) (*models.MaintenanceRequest, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	request, err := s.maintenanceRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, domain.ErrInternalServer
	}

	now := time.Now()
	request.Status = models.MaintenanceResolved
	request.ResolvedDate = &now
	request.ResolutionNotes = input.ResolutionNotes
	if err := s.maintenanceRepo.Update(ctx, request); err != nil {
		return nil, domain.ErrInternalServer
	}
	return request, nil
}
