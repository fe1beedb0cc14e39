package domain

import "time"

// Date layouts used on the wire. Contributions, loan due dates and rent
// payments use the calendar layout; meetings and notification timestamps
// use the date-time layout.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// Person is a human member of the cooperative and the financial subject
// of contributions and loans.
type Person struct {
	ID               uint
	FullName         string
	Phone            string
	EmergencyContact string
}

// User is a login identity bound to exactly one Person and one Role.
type User struct {
	ID       uint
	Email    string
	Password string // Hashed
	Role     Role
	PersonID uint
}

// Contribution is an append-only inflow ledger entry.
type Contribution struct {
	ID            uint
	AmountCents   int64
	Date          time.Time
	PersonID      uint
	PaymentMethod string
	ReceiptCode   string
}

// Loan is an outflow ledger entry with an approval workflow.
type Loan struct {
	ID             uint
	AmountCents    int64
	Purpose        string
	RequestDate    time.Time
	DueDate        time.Time
	Status         LoanStatus
	Approved       bool
	ApprovedBy     *uint
	InterestCents  int64
	RepaymentCents int64
	PersonID       uint
}

// RefreshToken represents a stored refresh token in the domain
type RefreshToken struct {
	ID        uint
	UserID    uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
