package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"
)

func newLoanFixture() (*LoanService, *fakeLoanRepo, *fakeNotificationRepo, *fakeUserRepo) {
	loanRepo := newFakeLoanRepo()
	notificationRepo := &fakeNotificationRepo{}
	userRepo := &fakeUserRepo{users: []*models.User{
		{ID: 10, PersonID: 1, Email: "borrower@example.com"},
		{ID: 20, PersonID: 2, Email: "treasurer@example.com"},
	}}
	notifier := NewNotificationService(notificationRepo, userRepo)
	return NewLoanService(loanRepo, notifier), loanRepo, notificationRepo, userRepo
}

func seedPendingLoan(t *testing.T, svc *LoanService, personID uint) *models.Loan {
	t.Helper()
	loan, err := svc.Request(context.Background(), Caller{UserID: 10, PersonID: personID}, RequestLoanInput{
		Amount:  "5000",
		Purpose: "School fees",
		DueDate: "2026-12-01",
	})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	return loan
}

func TestRequestCreatesPendingLoan(t *testing.T) {
	svc, repo, _, _ := newLoanFixture()

	loan := seedPendingLoan(t, svc, 1)

	if loan.Status != string(domain.LoanPending) {
		t.Errorf("Status = %q, want %q", loan.Status, domain.LoanPending)
	}
	if loan.Approved {
		t.Error("new loan must not be approved")
	}
	if loan.ApprovedBy != nil {
		t.Error("new loan must have no reviewer")
	}
	if loan.AmountCents != 500000 {
		t.Errorf("AmountCents = %d, want 500000", loan.AmountCents)
	}
	if len(repo.loans) != 1 {
		t.Fatalf("stored %d loans, want 1", len(repo.loans))
	}
}

func TestRequestRejectsBadInput(t *testing.T) {
	svc, repo, _, _ := newLoanFixture()
	caller := Caller{UserID: 10, PersonID: 1}

	tests := []struct {
		name    string
		input   RequestLoanInput
		wantErr error
	}{
		{"zero amount", RequestLoanInput{Amount: "0", Purpose: "x", DueDate: "2026-12-01"}, domain.ErrInvalidAmount},
		{"negative amount", RequestLoanInput{Amount: "-50", Purpose: "x", DueDate: "2026-12-01"}, domain.ErrInvalidAmount},
		{"garbage amount", RequestLoanInput{Amount: "abc", Purpose: "x", DueDate: "2026-12-01"}, domain.ErrInvalidAmount},
		{"bad date", RequestLoanInput{Amount: "100", Purpose: "x", DueDate: "01/12/2026"}, domain.ErrInvalidDate},
		{"missing fields", RequestLoanInput{}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Request(context.Background(), caller, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Request() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(repo.loans) != 0 {
		t.Errorf("stored %d loans, want 0", len(repo.loans))
	}
}

func TestApproveTransitionsAndNotifies(t *testing.T) {
	svc, repo, notifications, _ := newLoanFixture()
	loan := seedPendingLoan(t, svc, 1)
	treasurer := Caller{UserID: 20, PersonID: 2, Role: domain.RoleTreasurer}

	approved, err := svc.Approve(context.Background(), treasurer, loan.ID)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	if approved.Status != string(domain.LoanApproved) {
		t.Errorf("Status = %q, want %q", approved.Status, domain.LoanApproved)
	}
	if !approved.Approved {
		t.Error("Approved flag must be set")
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != treasurer.UserID {
		t.Errorf("ApprovedBy = %v, want %d", approved.ApprovedBy, treasurer.UserID)
	}

	stored := repo.loans[loan.ID]
	if stored.Status != string(domain.LoanApproved) {
		t.Errorf("stored status = %q, want approved", stored.Status)
	}

	// Borrower (user 10) gets exactly one approval notification.
	got := notifications.titles(10)
	if len(got) != 1 || got[0] != "Loan Approved" {
		t.Errorf("borrower notifications = %v, want [Loan Approved]", got)
	}
}

func TestRejectRecordsReviewerAndNotifies(t *testing.T) {
	svc, repo, notifications, _ := newLoanFixture()
	loan := seedPendingLoan(t, svc, 1)
	chair := Caller{UserID: 20, PersonID: 2, Role: domain.RoleChairperson}

	rejected, err := svc.Reject(context.Background(), chair, loan.ID)
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}

	if rejected.Status != string(domain.LoanRejected) {
		t.Errorf("Status = %q, want %q", rejected.Status, domain.LoanRejected)
	}
	if rejected.Approved {
		t.Error("Approved flag must stay false on rejection")
	}
	if rejected.ApprovedBy == nil || *rejected.ApprovedBy != chair.UserID {
		t.Errorf("ApprovedBy = %v, want %d (reviewer recorded on rejection too)", rejected.ApprovedBy, chair.UserID)
	}
	if repo.loans[loan.ID].Status != string(domain.LoanRejected) {
		t.Error("stored loan not rejected")
	}

	got := notifications.titles(10)
	if len(got) != 1 || got[0] != "Loan Rejected" {
		t.Errorf("borrower notifications = %v, want [Loan Rejected]", got)
	}
}

func TestSelfDealingRefused(t *testing.T) {
	svc, repo, notifications, _ := newLoanFixture()
	loan := seedPendingLoan(t, svc, 2)

	// The reviewer is the borrower. Both approve and reject must be
	// refused and the loan must stay pending and untouched.
	self := Caller{UserID: 20, PersonID: 2, Role: domain.RoleTreasurer}

	if _, err := svc.Approve(context.Background(), self, loan.ID); !errors.Is(err, domain.ErrSelfDealing) {
		t.Errorf("Approve() error = %v, want ErrSelfDealing", err)
	}
	if _, err := svc.Reject(context.Background(), self, loan.ID); !errors.Is(err, domain.ErrSelfDealing) {
		t.Errorf("Reject() error = %v, want ErrSelfDealing", err)
	}

	stored := repo.loans[loan.ID]
	if stored.Status != string(domain.LoanPending) {
		t.Errorf("stored status = %q, want pending", stored.Status)
	}
	if stored.ApprovedBy != nil {
		t.Error("refused review must not record a reviewer")
	}
	if len(notifications.notifications) != 0 {
		t.Errorf("refused review sent %d notifications, want 0", len(notifications.notifications))
	}
}

func TestReviewOfSettledLoanRefused(t *testing.T) {
	svc, repo, notifications, _ := newLoanFixture()
	loan := seedPendingLoan(t, svc, 1)
	first := Caller{UserID: 20, PersonID: 2, Role: domain.RoleTreasurer}
	second := Caller{UserID: 30, PersonID: 3, Role: domain.RoleChairperson}

	if _, err := svc.Approve(context.Background(), first, loan.ID); err != nil {
		t.Fatalf("first Approve() error = %v", err)
	}

	if _, err := svc.Approve(context.Background(), second, loan.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("second Approve() error = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.Reject(context.Background(), second, loan.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Reject() after approve error = %v, want ErrInvalidTransition", err)
	}

	// The first decision stands.
	stored := repo.loans[loan.ID]
	if stored.Status != string(domain.LoanApproved) || *stored.ApprovedBy != first.UserID {
		t.Errorf("stored loan = %q by %v, want approved by %d", stored.Status, stored.ApprovedBy, first.UserID)
	}
	if got := notifications.titles(10); len(got) != 1 {
		t.Errorf("borrower got %d notifications, want exactly 1", len(got))
	}
}

func TestReviewUnknownLoan(t *testing.T) {
	svc, _, _, _ := newLoanFixture()
	reviewer := Caller{UserID: 20, PersonID: 2}

	if _, err := svc.Approve(context.Background(), reviewer, 999); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Errorf("Approve() error = %v, want ErrLoanNotFound", err)
	}
}

func TestApproveSucceedsWhenNotificationFails(t *testing.T) {
	svc, repo, notifications, _ := newLoanFixture()
	notifications.failForUserID = 10
	loan := seedPendingLoan(t, svc, 1)
	treasurer := Caller{UserID: 20, PersonID: 2, Role: domain.RoleTreasurer}

	approved, err := svc.Approve(context.Background(), treasurer, loan.ID)
	if err != nil {
		t.Fatalf("Approve() error = %v, notification failure must not surface", err)
	}
	if approved.Status != string(domain.LoanApproved) {
		t.Errorf("Status = %q, want approved", approved.Status)
	}
	if repo.loans[loan.ID].Status != string(domain.LoanApproved) {
		t.Error("stored loan must be approved despite notification failure")
	}
}

func TestListMineFiltersByCaller(t *testing.T) {
	svc, _, _, _ := newLoanFixture()
	seedPendingLoan(t, svc, 1)
	seedPendingLoan(t, svc, 1)
	seedPendingLoan(t, svc, 2)

	mine, err := svc.ListMine(context.Background(), Caller{PersonID: 1})
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("ListMine() returned %d loans, want 2", len(mine))
	}
}

func TestDueDateParsing(t *testing.T) {
	svc, repo, _, _ := newLoanFixture()

	loan := seedPendingLoan(t, svc, 1)
	want, _ := time.Parse(domain.DateLayout, "2026-12-01")
	if !repo.loans[loan.ID].DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", repo.loans[loan.ID].DueDate, want)
	}
}
