package repositories

import (
	"context"

	"chamaflow/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// contributionRepository implements ContributionRepository interface
type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

// Create creates a new contribution
func (r *contributionRepository) Create(ctx context.Context, contribution *models.Contribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

// ListByPerson lists contributions for one person
func (r *contributionRepository) ListByPerson(ctx context.Context, personID uint) ([]*models.Contribution, error) {
	var contributions []*models.Contribution
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("date DESC").
		Find(&contributions).Error
	return contributions, err
}

// List lists all contributions newest-first with pagination
func (r *contributionRepository) List(ctx context.Context, offset, limit int) ([]*models.Contribution, int64, error) {
	var contributions []*models.Contribution
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Contribution{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Person").
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&contributions).Error
	if err != nil {
		return nil, 0, err
	}

	return contributions, total, nil
}
