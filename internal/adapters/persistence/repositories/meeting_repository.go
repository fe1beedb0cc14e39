package repositories

import (
	"context"
	"time"

	"chamaflow/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// meetingRepository implements MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// GetByID gets a meeting by ID
func (r *meetingRepository) GetByID(ctx context.Context, id uint) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.WithContext(ctx).First(&meeting, id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListUpcoming lists meetings in ascending date order
func (r *meetingRepository) ListUpcoming(ctx context.Context) ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	err := r.db.WithContext(ctx).Order("date ASC").Find(&meetings).Error
	return meetings, err
}

// ListBetween lists meetings scheduled inside the window, for reminders
func (r *meetingRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC").
		Find(&meetings).Error
	return meetings, err
}

// CreateMinute adds minutes to a meeting
func (r *meetingRepository) CreateMinute(ctx context.Context, minute *models.Minute) error {
	return r.db.WithContext(ctx).Create(minute).Error
}

// ListMinutes lists minutes for a meeting
func (r *meetingRepository) ListMinutes(ctx context.Context, meetingID uint) ([]*models.Minute, error) {
	var minutes []*models.Minute
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("timestamp ASC").
		Find(&minutes).Error
	return minutes, err
}
