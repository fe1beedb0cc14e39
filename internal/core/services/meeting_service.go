package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/validate"
)

// MeetingService schedules meetings and records their minutes.
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	notifier    *NotificationService
}

func NewMeetingService(meetingRepo repositories.MeetingRepository, notifier *NotificationService) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		notifier:    notifier,
	}
}

type CreateMeetingInput struct {
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"required,max=150"`
	Description string `json:"description" validate:"omitempty,max=300"`
}

// Create schedules a meeting and announces it to every member.
func (s *MeetingService) Create(ctx context.Context, caller Caller, input CreateMeetingInput) (*models.Meeting, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	date, err := time.Parse(domain.DateTimeLayout, input.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	meeting := &models.Meeting{
		Date:        date,
		Location:    input.Location,
		Description: input.Description,
		CreatedBy:   caller.UserID,
	}
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, domain.ErrInternalServer
	}

	s.notifier.NotifyAll(ctx, "Upcoming Meeting",
		fmt.Sprintf("A meeting is scheduled for %s at %s.",
			date.Format(domain.DateTimeLayout), meeting.Location))

	return meeting, nil
}

// ListUpcoming returns meetings from now onwards, soonest first.
func (s *MeetingService) ListUpcoming(ctx context.Context) ([]*models.Meeting, error) {
	meetings, err := s.meetingRepo.ListUpcoming(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return meetings, nil
}

type AddMinutesInput struct {
	Content string `json:"content" validate:"required"`
}

// AddMinutes records minutes for a held meeting and tells everyone
// they are available.
func (s *MeetingService) AddMinutes(ctx context.Context, caller Caller, meetingID uint, input AddMinutesInput) (*models.Minute, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, domain.ErrInternalServer
	}

	minute := &models.Minute{
		MeetingID: meeting.ID,
		WrittenBy: caller.UserID,
		Content:   input.Content,
	}
	if err := s.meetingRepo.CreateMinute(ctx, minute); err != nil {
		return nil, domain.ErrInternalServer
	}

	s.notifier.NotifyAll(ctx, "Meeting Minutes Posted",
		fmt.Sprintf("Minutes for the meeting of %s are now available.",
			meeting.Date.Format(domain.DateLayout)))

	return minute, nil
}

// ListMinutes returns the minutes recorded for a meeting.
func (s *MeetingService) ListMinutes(ctx context.Context, meetingID uint) ([]*models.Minute, error) {
	if _, err := s.meetingRepo.GetByID(ctx, meetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, domain.ErrInternalServer
	}

	minutes, err := s.meetingRepo.ListMinutes(ctx, meetingID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return minutes, nil
}
