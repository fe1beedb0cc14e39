package repositories

import (
	"context"
	"time"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loanRepository implements LoanRepository interface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create creates a new loan
func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByID gets a loan by ID with the borrower loaded
func (r *loanRepository) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Preload("Person").
		First(&loan, id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListByPerson lists loans for one person, newest-first
func (r *loanRepository) ListByPerson(ctx context.Context, personID uint) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("request_date DESC").
		Find(&loans).Error
	return loans, err
}

// List lists all loans ordered by request date descending
func (r *loanRepository) List(ctx context.Context, offset, limit int) ([]*models.Loan, int64, error) {
	var loans []*models.Loan
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Loan{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Person").
		Order("request_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&loans).Error
	if err != nil {
		return nil, 0, err
	}

	return loans, total, nil
}

// Transition applies fn to the loan under SELECT ... FOR UPDATE so that
// two concurrent approvals on the same loan serialize; the loser of the
// race sees the already-resolved row and fn rejects it.
func (r *loanRepository) Transition(ctx context.Context, id uint, fn func(*models.Loan) error) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Person").
			First(&loan, id).Error; err != nil {
			return err
		}
		if err := fn(&loan); err != nil {
			return err
		}
		return tx.Save(&loan).Error
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListApprovedDueBetween lists approved loans with a due date inside the
// window, for due-date reminders.
func (r *loanRepository) ListApprovedDueBetween(ctx context.Context, from, to time.Time) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Preload("Person").
		Where("status = ? AND due_date BETWEEN ? AND ?", string(domain.LoanApproved), from, to).
		Find(&loans).Error
	return loans, err
}
