package services

import (
	"context"
	"errors"
	"testing"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"
)

func TestNotifyAllContinuesPastFailure(t *testing.T) {
	repo := &fakeNotificationRepo{failForUserID: 2}
	userRepo := &fakeUserRepo{users: []*models.User{
		{ID: 1}, {ID: 2}, {ID: 3},
	}}
	svc := NewNotificationService(repo, userRepo)

	svc.NotifyAll(context.Background(), "Upcoming Meeting", "Saturday 10am")

	// User 2's write fails; users 1 and 3 still get theirs.
	if len(repo.notifications) != 2 {
		t.Fatalf("delivered %d notifications, want 2", len(repo.notifications))
	}
	for _, userID := range []uint{1, 3} {
		if got := repo.titles(userID); len(got) != 1 {
			t.Errorf("user %d got %d notifications, want 1", userID, len(got))
		}
	}
}

func TestNotifyPersonWithoutAccountIsNoop(t *testing.T) {
	repo := &fakeNotificationRepo{}
	userRepo := &fakeUserRepo{users: []*models.User{{ID: 1, PersonID: 1}}}
	svc := NewNotificationService(repo, userRepo)

	svc.NotifyPerson(context.Background(), 99, "Loan Approved", "msg")

	if len(repo.notifications) != 0 {
		t.Errorf("delivered %d notifications, want 0 for member without account", len(repo.notifications))
	}
}

func TestMarkReadScopedToOwner(t *testing.T) {
	repo := &fakeNotificationRepo{}
	userRepo := &fakeUserRepo{users: []*models.User{{ID: 1}, {ID: 2}}}
	svc := NewNotificationService(repo, userRepo)

	svc.Notify(context.Background(), 1, "Welcome", "hello")

	// Another user cannot mark it read.
	if err := svc.MarkRead(context.Background(), 1, 2); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MarkRead() by non-owner error = %v, want ErrNotFound", err)
	}
	if err := svc.MarkRead(context.Background(), 1, 1); err != nil {
		t.Errorf("MarkRead() by owner error = %v", err)
	}

	count, err := svc.CountUnread(context.Background(), 1)
	if err != nil {
		t.Fatalf("CountUnread() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountUnread() = %d, want 0 after read", count)
	}
}

func TestCountUnread(t *testing.T) {
	repo := &fakeNotificationRepo{}
	userRepo := &fakeUserRepo{users: []*models.User{{ID: 1}}}
	svc := NewNotificationService(repo, userRepo)

	svc.Notify(context.Background(), 1, "A", "a")
	svc.Notify(context.Background(), 1, "B", "b")

	count, err := svc.CountUnread(context.Background(), 1)
	if err != nil {
		t.Fatalf("CountUnread() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountUnread() = %d, want 2", count)
	}
}
