package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"
)

// In-memory repository fakes. The loan fake mirrors the transactional
// contract of the real repository: the mutation runs on a copy and is
// only published when fn succeeds.

type fakeLoanRepo struct {
	loans  map[uint]*models.Loan
	nextID uint
	err    error
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[uint]*models.Loan), nextID: 1}
}

func (f *fakeLoanRepo) Create(ctx context.Context, loan *models.Loan) error {
	if f.err != nil {
		return f.err
	}
	loan.ID = f.nextID
	f.nextID++
	loan.RequestDate = time.Now()
	stored := *loan
	f.loans[loan.ID] = &stored
	return nil
}

func (f *fakeLoanRepo) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	loan, ok := f.loans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *loan
	return &copied, nil
}

func (f *fakeLoanRepo) ListByPerson(ctx context.Context, personID uint) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, loan := range f.loans {
		if loan.PersonID == personID {
			copied := *loan
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeLoanRepo) List(ctx context.Context, offset, limit int) ([]*models.Loan, int64, error) {
	var out []*models.Loan
	for _, loan := range f.loans {
		copied := *loan
		out = append(out, &copied)
	}
	return out, int64(len(f.loans)), nil
}

func (f *fakeLoanRepo) Transition(ctx context.Context, id uint, fn func(*models.Loan) error) (*models.Loan, error) {
	loan, ok := f.loans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	working := *loan
	if err := fn(&working); err != nil {
		return nil, err
	}
	f.loans[id] = &working
	result := working
	return &result, nil
}

func (f *fakeLoanRepo) ListApprovedDueBetween(ctx context.Context, from, to time.Time) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, loan := range f.loans {
		if loan.Status == string(domain.LoanApproved) && !loan.DueDate.Before(from) && !loan.DueDate.After(to) {
			copied := *loan
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	failForUserID uint
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if f.failForUserID != 0 && n.UserID == f.failForUserID {
		return errors.New("write failed")
	}
	n.ID = uint(len(f.notifications) + 1)
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID uint) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID uint) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// titles returns the notification titles delivered to a user, in order.
func (f *fakeNotificationRepo) titles(userID uint) []string {
	var out []string
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n.Title)
		}
	}
	return out
}

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByPersonID(ctx context.Context, personID uint) (*models.User, error) {
	for _, u := range f.users {
		if u.PersonID == personID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	return f.users, int64(len(f.users)), nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]*models.User, error) {
	return f.users, nil
}

type fakePersonRepo struct {
	persons   map[uint]*models.Person
	nextID    uint
	createErr error
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{persons: make(map[uint]*models.Person), nextID: 1}
}

func (f *fakePersonRepo) CreateWithUser(ctx context.Context, person *models.Person, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	person.ID = f.nextID
	f.nextID++
	f.persons[person.ID] = person
	user.PersonID = person.ID
	user.ID = person.ID + 100
	return nil
}

func (f *fakePersonRepo) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	person, ok := f.persons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return person, nil
}

func (f *fakePersonRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	for _, p := range f.persons {
		if p.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePersonRepo) Update(ctx context.Context, person *models.Person) error {
	if _, ok := f.persons[person.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.persons[person.ID] = person
	return nil
}

func (f *fakePersonRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.persons[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.persons, id)
	return nil
}

type fakeRoleRepo struct{}

func (f *fakeRoleRepo) roleID(name string) uint {
	for i, role := range domain.Roles {
		if string(role) == name {
			return uint(i + 1)
		}
	}
	return 0
}

func (f *fakeRoleRepo) GetByName(ctx context.Context, name string) (*models.Role, error) {
	if id := f.roleID(name); id != 0 {
		return &models.Role{ID: id, Name: name}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	if id == 0 || int(id) > len(domain.Roles) {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Role{ID: id, Name: string(domain.Roles[id-1])}, nil
}

func (f *fakeRoleRepo) List(ctx context.Context) ([]*models.Role, error) {
	var out []*models.Role
	for i, role := range domain.Roles {
		out = append(out, &models.Role{ID: uint(i + 1), Name: string(role)})
	}
	return out, nil
}

type fakeRefreshTokenRepo struct {
	tokens []*models.RefreshToken
}

func (f *fakeRefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	token.ID = uint(len(f.tokens) + 1)
	f.tokens = append(f.tokens, token)
	return nil
}

func (f *fakeRefreshTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	for _, t := range f.tokens {
		if t.TokenHash == tokenHash {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, id uint) error {
	for _, t := range f.tokens {
		if t.ID == id {
			now := time.Now()
			t.RevokedAt = &now
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRefreshTokenRepo) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	for _, t := range f.tokens {
		if t.TokenHash == tokenHash {
			now := time.Now()
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllByUserID(ctx context.Context, userID uint) error {
	for _, t := range f.tokens {
		if t.UserID == userID {
			now := time.Now()
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

type fakeContributionRepo struct {
	contributions []*models.Contribution
}

func (f *fakeContributionRepo) Create(ctx context.Context, c *models.Contribution) error {
	c.ID = uint(len(f.contributions) + 1)
	f.contributions = append(f.contributions, c)
	return nil
}

func (f *fakeContributionRepo) ListByPerson(ctx context.Context, personID uint) ([]*models.Contribution, error) {
	var out []*models.Contribution
	for _, c := range f.contributions {
		if c.PersonID == personID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContributionRepo) List(ctx context.Context, offset, limit int) ([]*models.Contribution, int64, error) {
	return f.contributions, int64(len(f.contributions)), nil
}

type fakeMeetingRepo struct {
	meetings []*models.Meeting
	minutes  []*models.Minute
}

func (f *fakeMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	meeting.ID = uint(len(f.meetings) + 1)
	f.meetings = append(f.meetings, meeting)
	return nil
}

func (f *fakeMeetingRepo) GetByID(ctx context.Context, id uint) (*models.Meeting, error) {
	for _, m := range f.meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMeetingRepo) ListUpcoming(ctx context.Context) ([]*models.Meeting, error) {
	var out []*models.Meeting
	now := time.Now()
	for _, m := range f.meetings {
		if m.Date.After(now) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*models.Meeting, error) {
	var out []*models.Meeting
	for _, m := range f.meetings {
		if !m.Date.Before(from) && !m.Date.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) CreateMinute(ctx context.Context, minute *models.Minute) error {
	minute.ID = uint(len(f.minutes) + 1)
	f.minutes = append(f.minutes, minute)
	return nil
}

func (f *fakeMeetingRepo) ListMinutes(ctx context.Context, meetingID uint) ([]*models.Minute, error) {
	var out []*models.Minute
	for _, m := range f.minutes {
		if m.MeetingID == meetingID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeReportRepo struct {
	contributions         int64
	contributionsByPerson map[uint]int64
	approvedLoans         int64
	loansByPerson         map[uint]int64
	repaymentsByPerson    map[uint]int64
	loanInterest          int64
	rentPayments          int64
	persons               int64
}

func (f *fakeReportRepo) SumContributions(ctx context.Context) (int64, error) {
	return f.contributions, nil
}

func (f *fakeReportRepo) SumContributionsByPerson(ctx context.Context, personID uint) (int64, error) {
	return f.contributionsByPerson[personID], nil
}

func (f *fakeReportRepo) SumApprovedLoans(ctx context.Context) (int64, error) {
	return f.approvedLoans, nil
}

func (f *fakeReportRepo) SumLoansByPerson(ctx context.Context, personID uint) (int64, error) {
	return f.loansByPerson[personID], nil
}

func (f *fakeReportRepo) SumRepaymentsByPerson(ctx context.Context, personID uint) (int64, error) {
	return f.repaymentsByPerson[personID], nil
}

func (f *fakeReportRepo) SumLoanInterest(ctx context.Context) (int64, error) {
	return f.loanInterest, nil
}

func (f *fakeReportRepo) SumRentPayments(ctx context.Context) (int64, error) {
	return f.rentPayments, nil
}

func (f *fakeReportRepo) CountPersons(ctx context.Context) (int64, error) {
	return f.persons, nil
}
