package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	return db, mock
}

func loanColumns() []string {
	return []string{
		"id", "amount_cents", "purpose", "request_date", "due_date",
		"status", "approved", "approved_by", "interest_cents",
		"repayment_cents", "person_id",
	}
}

func TestLoanTransitionLocksRowAndSaves(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanRepository(db)

	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM .loans. WHERE .loans.\..id. = \? .* FOR UPDATE`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows(loanColumns()).
			AddRow(1, 500000, "School fees", time.Now(), due,
				string(domain.LoanPending), false, nil, 0, 0, 7))
	mock.ExpectQuery(`SELECT \* FROM .persons. WHERE .persons.\..id. = \?`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "phone"}).
			AddRow(7, "Wanjiku Kamau", "0712345678"))
	mock.ExpectExec(`UPDATE .loans. SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reviewerID := uint(20)
	loan, err := repo.Transition(context.Background(), 1, func(loan *models.Loan) error {
		loan.Status = string(domain.LoanApproved)
		loan.Approved = true
		loan.ApprovedBy = &reviewerID
		return nil
	})
	if err != nil {
		t.Fatalf("Transition() error = %v", err)
	}
	if loan.Status != string(domain.LoanApproved) {
		t.Errorf("Status = %q, want approved", loan.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoanTransitionRollsBackOnGuardError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM .loans. WHERE .loans.\..id. = \? .* FOR UPDATE`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows(loanColumns()).
			AddRow(1, 500000, "School fees", time.Now(), time.Now(),
				string(domain.LoanApproved), true, 20, 0, 0, 7))
	mock.ExpectQuery(`SELECT \* FROM .persons. WHERE .persons.\..id. = \?`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "phone"}).
			AddRow(7, "Wanjiku Kamau", "0712345678"))
	mock.ExpectRollback()

	_, err := repo.Transition(context.Background(), 1, func(loan *models.Loan) error {
		if !domain.LoanStatus(loan.Status).CanTransition(domain.LoanApproved) {
			return domain.ErrInvalidTransition
		}
		return nil
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("Transition() error = %v, want ErrInvalidTransition", err)
	}

	// No UPDATE was issued before the rollback.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoanTransitionUnknownLoan(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM .loans.`).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows(loanColumns()))
	mock.ExpectRollback()

	_, err := repo.Transition(context.Background(), 99, func(*models.Loan) error { return nil })
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Transition() error = %v, want ErrRecordNotFound", err)
	}
}

func TestUserExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .users. WHERE email = \?`).
		WithArgs("wanjiku@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "wanjiku@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if !exists {
		t.Error("ExistsByEmail() = false, want true")
	}
}

func TestNotificationMarkReadUnknownRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`UPDATE .notifications. SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), 5, 1)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("MarkRead() error = %v, want ErrRecordNotFound", err)
	}
}
