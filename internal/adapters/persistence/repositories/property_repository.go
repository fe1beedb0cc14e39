package repositories

import (
	"context"

	"chamaflow/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// propertyRepository implements PropertyRepository interface
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create creates a new property
func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// GetByID gets a property by ID
func (r *propertyRepository) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// List lists all properties
func (r *propertyRepository) List(ctx context.Context) ([]*models.Property, error) {
	var properties []*models.Property
	err := r.db.WithContext(ctx).Find(&properties).Error
	return properties, err
}

// CreatePayment records a rent payment
func (r *propertyRepository) CreatePayment(ctx context.Context, payment *models.RentPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// ListPayments lists a property's rent payments newest-first
func (r *propertyRepository) ListPayments(ctx context.Context, propertyID uint) ([]*models.RentPayment, error) {
	var payments []*models.RentPayment
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}
