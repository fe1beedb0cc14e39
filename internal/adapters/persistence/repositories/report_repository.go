package repositories

import (
	"context"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"

	"gorm.io/gorm"
)

// reportRepository implements ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) sum(ctx context.Context, model interface{}, column, cond string, args ...interface{}) (int64, error) {
	var total *int64
	q := r.db.WithContext(ctx).Model(model).Select("SUM(" + column + ")")
	if cond != "" {
		q = q.Where(cond, args...)
	}
	if err := q.Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// SumContributions sums every contribution
func (r *reportRepository) SumContributions(ctx context.Context) (int64, error) {
	return r.sum(ctx, &models.Contribution{}, "amount_cents", "")
}

// SumContributionsByPerson sums one person's contributions
func (r *reportRepository) SumContributionsByPerson(ctx context.Context, personID uint) (int64, error) {
	return r.sum(ctx, &models.Contribution{}, "amount_cents", "person_id = ?", personID)
}

// SumApprovedLoans sums the principal of approved loans
func (r *reportRepository) SumApprovedLoans(ctx context.Context) (int64, error) {
	return r.sum(ctx, &models.Loan{}, "amount_cents", "status = ?", string(domain.LoanApproved))
}

// SumLoansByPerson sums one person's loan principal
func (r *reportRepository) SumLoansByPerson(ctx context.Context, personID uint) (int64, error) {
	return r.sum(ctx, &models.Loan{}, "amount_cents", "person_id = ?", personID)
}

// SumRepaymentsByPerson sums one person's loan repayments
func (r *reportRepository) SumRepaymentsByPerson(ctx context.Context, personID uint) (int64, error) {
	return r.sum(ctx, &models.Loan{}, "repayment_cents", "person_id = ?", personID)
}

// SumLoanInterest sums interest across all loans
func (r *reportRepository) SumLoanInterest(ctx context.Context) (int64, error) {
	return r.sum(ctx, &models.Loan{}, "interest_cents", "")
}

// SumRentPayments sums all rent collected
func (r *reportRepository) SumRentPayments(ctx context.Context) (int64, error) {
	return r.sum(ctx, &models.RentPayment{}, "amount_cents", "")
}

// CountPersons counts registered members
func (r *reportRepository) CountPersons(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Person{}).Count(&count).Error
	return count, err
}
