package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/core/domain"
)

// NotificationService delivers in-app notifications. Delivery is best
// effort: a failed write is logged and never propagated to the caller,
// so the operation that triggered the notification always succeeds or
// fails on its own terms.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, userRepo repositories.UserRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Notify writes a notification for a single user account.
func (s *NotificationService) Notify(ctx context.Context, userID uint, title, message string) {
	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("⚠️ Failed to notify user %d (%s): %v", userID, title, err)
	}
}

// NotifyPerson resolves the member's account and notifies it. Members
// without an account are skipped.
func (s *NotificationService) NotifyPerson(ctx context.Context, personID uint, title, message string) {
	user, err := s.userRepo.GetByPersonID(ctx, personID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Failed to resolve account for member %d: %v", personID, err)
		}
		return
	}
	s.Notify(ctx, user.ID, title, message)
}

// NotifyAll fans a notification out to every user account. A failure
// for one recipient does not stop delivery to the rest.
func (s *NotificationService) NotifyAll(ctx context.Context, title, message string) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to list users for broadcast (%s): %v", title, err)
		return
	}
	for _, user := range users {
		s.Notify(ctx, user.ID, title, message)
	}
}

// ListMine returns the caller's inbox, newest first.
func (s *NotificationService) ListMine(ctx context.Context, userID uint) ([]*models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return notifications, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uint) error {
	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrInternalServer
	}
	return nil
}

// CountUnread returns the caller's unread notification count.
func (s *NotificationService) CountUnread(ctx context.Context, userID uint) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, domain.ErrInternalServer
	}
	return count, nil
}
