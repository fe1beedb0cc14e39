package repositories

import (
	"context"

	"chamaflow/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// maintenanceRepository implements MaintenanceRepository interface
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// Create creates a new maintenance request
func (r *maintenanceRepository) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a maintenance request by ID
func (r *maintenanceRepository) GetByID(ctx context.Context, id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := r.db.WithContext(ctx).First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List lists maintenance requests newest-first
func (r *maintenanceRepository) List(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	var requests []*models.MaintenanceRequest
	err := r.db.WithContext(ctx).
		Preload("Property").
		Order("reported_date DESC").
		Find(&requests).Error
	return requests, err
}

// Update updates a maintenance request
func (r *maintenanceRepository) Update(ctx context.Context, request *models.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}
