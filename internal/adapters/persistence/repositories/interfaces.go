package repositories

import (
	"context"
	"time"

	"chamaflow/internal/adapters/persistence/models"
)

// PersonRepository defines person repository interface
type PersonRepository interface {
	// CreateWithUser atomically creates a person and its login user.
	// Either both rows are persisted or neither is.
	CreateWithUser(ctx context.Context, person *models.Person, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.Person, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id uint) error
}

// RoleRepository defines role repository interface
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*models.Role, error)
	GetByID(ctx context.Context, id uint) (*models.Role, error)
	List(ctx context.Context) ([]*models.Role, error)
}

// UserRepository defines user repository interface
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByPersonID(ctx context.Context, personID uint) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ListAll(ctx context.Context) ([]*models.User, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// ContributionRepository defines contribution repository interface.
// Contributions are append-only: there is no update or delete.
type ContributionRepository interface {
	Create(ctx context.Context, contribution *models.Contribution) error
	ListByPerson(ctx context.Context, personID uint) ([]*models.Contribution, error)
	List(ctx context.Context, offset, limit int) ([]*models.Contribution, int64, error)
}

// LoanRepository defines loan repository interface
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, id uint) (*models.Loan, error)
	ListByPerson(ctx context.Context, personID uint) ([]*models.Loan, error)
	List(ctx context.Context, offset, limit int) ([]*models.Loan, int64, error)
	// Transition loads the loan under a row lock, applies fn and saves the
	// result, all inside one transaction. An error from fn rolls back.
	Transition(ctx context.Context, id uint, fn func(*models.Loan) error) (*models.Loan, error)
	ListApprovedDueBetween(ctx context.Context, from, to time.Time) ([]*models.Loan, error)
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uint) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID uint) error
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

// MeetingRepository defines meeting repository interface
type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	GetByID(ctx context.Context, id uint) (*models.Meeting, error)
	ListUpcoming(ctx context.Context) ([]*models.Meeting, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*models.Meeting, error)
	CreateMinute(ctx context.Context, minute *models.Minute) error
	ListMinutes(ctx context.Context, meetingID uint) ([]*models.Minute, error)
}

// PropertyRepository defines property and rent payment repository interface
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uint) (*models.Property, error)
	List(ctx context.Context) ([]*models.Property, error)
	CreatePayment(ctx context.Context, payment *models.RentPayment) error
	ListPayments(ctx context.Context, propertyID uint) ([]*models.RentPayment, error)
}

// MaintenanceRepository defines maintenance request repository interface
type MaintenanceRepository interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id uint) (*models.MaintenanceRequest, error)
	List(ctx context.Context) ([]*models.MaintenanceRequest, error)
	Update(ctx context.Context, request *models.MaintenanceRequest) error
}

// ReportRepository defines aggregate queries for reporting
type ReportRepository interface {
	SumContributions(ctx context.Context) (int64, error)
	SumContributionsByPerson(ctx context.Context, personID uint) (int64, error)
	SumApprovedLoans(ctx context.Context) (int64, error)
	SumLoansByPerson(ctx context.Context, personID uint) (int64, error)
	SumRepaymentsByPerson(ctx context.Context, personID uint) (int64, error)
	SumLoanInterest(ctx context.Context) (int64, error)
	SumRentPayments(ctx context.Context) (int64, error)
	CountPersons(ctx context.Context) (int64, error)
}
