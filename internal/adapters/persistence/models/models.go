package models

import (
	"time"

	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/money"

	"gorm.io/gorm"
)

// ============================================================
// Identity: Person, Role, User
// ============================================================

// Person represents persons table. Deleting a person cascades to its
// users, contributions and loans: no orphaned financial records.
type Person struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	FullName         string `gorm:"size:120;not null" json:"full_name"`
	Phone            string `gorm:"uniqueIndex;size:20;not null" json:"phone"`
	EmergencyContact string `gorm:"size:20" json:"emergency_contact,omitempty"`

	Users         []User         `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
	Contributions []Contribution `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
	Loans         []Loan         `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Person) TableName() string {
	return "persons"
}

// Role represents roles table. Immutable reference data, seeded at startup.
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

// User represents users table
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	RoleID   uint   `gorm:"not null" json:"role_id"`
	PersonID uint   `gorm:"not null;index" json:"person_id"`

	Role   *Role   `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`

	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// RoleName returns the role name, empty if the relation is not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// UserResponse DTO
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	PersonID uint   `json:"person_id"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.RoleName(),
		PersonID: u.PersonID,
	}
	if u.Person != nil {
		resp.FullName = u.Person.FullName
		resp.Phone = u.Person.Phone
	}
	return resp
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Ledger: Contribution, Loan
// ============================================================

// Contribution represents contributions table. Append-only: no update or
// delete path exists outside the Person cascade.
type Contribution struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AmountCents   int64     `gorm:"not null" json:"amount_cents"`
	Date          time.Time `gorm:"type:date;not null" json:"date"`
	PersonID      uint      `gorm:"not null;index" json:"person_id"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	ReceiptCode   string    `gorm:"size:50" json:"receipt_code,omitempty"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (Contribution) TableName() string {
	return "contributions"
}

// ContributionResponse DTO
type ContributionResponse struct {
	ID            uint   `json:"id"`
	Member        string `json:"member,omitempty"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	PaymentMethod string `json:"payment_method"`
	ReceiptCode   string `json:"receipt_code,omitempty"`
}

func (c *Contribution) ToResponse() *ContributionResponse {
	resp := &ContributionResponse{
		ID:            c.ID,
		Amount:        money.Format(c.AmountCents),
		Date:          c.Date.Format(domain.DateLayout),
		PaymentMethod: c.PaymentMethod,
		ReceiptCode:   c.ReceiptCode,
	}
	if c.Person != nil {
		resp.Member = c.Person.FullName
	}
	return resp
}

// Loan represents loans table. Status, approved and approved_by change
// together and only through the loan service transition.
type Loan struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AmountCents    int64     `gorm:"not null" json:"amount_cents"`
	Purpose        string    `gorm:"size:100" json:"purpose,omitempty"`
	RequestDate    time.Time `gorm:"autoCreateTime" json:"request_date"`
	DueDate        time.Time `gorm:"type:date" json:"due_date"`
	Status         string    `gorm:"size:30;default:'pending';index" json:"status"`
	Approved       bool      `gorm:"default:false" json:"approved"`
	ApprovedBy     *uint     `json:"approved_by"`
	InterestCents  int64     `gorm:"default:0" json:"interest_cents"`
	RepaymentCents int64     `gorm:"default:0" json:"repayment_cents"`
	PersonID       uint      `gorm:"not null;index" json:"person_id"`

	Person   *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
	Approver *User   `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
}

func (Loan) TableName() string {
	return "loans"
}

// LoanResponse DTO
type LoanResponse struct {
	ID          uint   `json:"id"`
	Member      string `json:"member,omitempty"`
	Amount      string `json:"amount"`
	Purpose     string `json:"purpose,omitempty"`
	Status      string `json:"status"`
	Approved    bool   `json:"approved"`
	ApprovedBy  *uint  `json:"approved_by,omitempty"`
	RequestDate string `json:"request_date"`
	DueDate     string `json:"due_date"`
}

func (l *Loan) ToResponse() *LoanResponse {
	resp := &LoanResponse{
		ID:          l.ID,
		Amount:      money.Format(l.AmountCents),
		Purpose:     l.Purpose,
		Status:      l.Status,
		Approved:    l.Approved,
		ApprovedBy:  l.ApprovedBy,
		RequestDate: l.RequestDate.Format(domain.DateTimeLayout),
		DueDate:     l.DueDate.Format(domain.DateLayout),
	}
	if l.Person != nil {
		resp.Member = l.Person.FullName
	}
	return resp
}

// ============================================================
// Meetings & Minutes
// ============================================================

// Meeting represents meetings table
type Meeting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"size:150" json:"location"`
	Description string    `gorm:"size:300" json:"description,omitempty"`
	CreatedBy   uint      `json:"created_by"`

	Minutes []Minute `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Meeting) TableName() string {
	return "meetings"
}

// Minute represents minutes table
type Minute struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MeetingID uint      `gorm:"not null;index" json:"meeting_id"`
	WrittenBy uint      `gorm:"not null" json:"written_by"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (Minute) TableName() string {
	return "minutes"
}

// ============================================================
// Notifications
// ============================================================

// Notification represents notifications table. Rows are appended
// best-effort by the notification service; unread by default.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:120;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// ============================================================
// Property, Rent & Maintenance
// ============================================================

// Property represents properties table
type Property struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120;not null" json:"name"`
	Location    string `gorm:"size:200" json:"location,omitempty"`
	RentCents   int64  `gorm:"not null" json:"rent_cents"`
	IsOccupied  bool   `gorm:"default:true" json:"is_occupied"`
	TenantName  string `gorm:"size:100" json:"tenant_name,omitempty"`
	TenantPhone string `gorm:"size:20" json:"tenant_phone,omitempty"`

	RentPayments        []RentPayment        `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}

// RentPayment represents rent_payments table
type RentPayment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"not null;index" json:"property_id"`
	AmountCents   int64     `gorm:"not null" json:"amount_cents"`
	PaymentDate   time.Time `gorm:"type:date;not null" json:"payment_date"`
	PaymentMethod string    `gorm:"size:50;not null;default:'M-Pesa'" json:"payment_method"`
	ReceiptCode   string    `gorm:"size:50" json:"receipt_code,omitempty"`
	Notes         string    `gorm:"size:200" json:"notes,omitempty"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

func (RentPayment) TableName() string {
	return "rent_payments"
}

// Maintenance request statuses
const (
	MaintenancePending  = "Pending"
	MaintenanceResolved = "Resolved"
)

// MaintenanceRequest represents maintenance_requests table
type MaintenanceRequest struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	PropertyID       uint       `gorm:"not null;index" json:"property_id"`
	IssueDescription string     `gorm:"size:255;not null" json:"issue_description"`
	ReportedDate     time.Time  `gorm:"autoCreateTime" json:"reported_date"`
	Status           string     `gorm:"size:50;default:'Pending'" json:"status"`
	ResolvedDate     *time.Time `json:"resolved_date,omitempty"`
	ResolutionNotes  string     `gorm:"size:255" json:"resolution_notes,omitempty"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Person{},
		&Role{},
		&User{},
		&RefreshToken{},
		&Contribution{},
		&Loan{},
		&Meeting{},
		&Minute{},
		&Notification{},
		&Property{},
		&RentPayment{},
		&MaintenanceRequest{},
	)
}
