package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/money"
)

// ReminderService sends scheduled reminders for loans nearing their
// due date and for meetings happening soon.
type ReminderService struct {
	loanRepo    repositories.LoanRepository
	meetingRepo repositories.MeetingRepository
	notifier    *NotificationService
	cron        *cron.Cron
}

func NewReminderService(
	loanRepo repositories.LoanRepository,
	meetingRepo repositories.MeetingRepository,
	notifier *NotificationService,
) *ReminderService {
	return &ReminderService{
		loanRepo:    loanRepo,
		meetingRepo: meetingRepo,
		notifier:    notifier,
		cron:        cron.New(),
	}
}

// Start schedules the daily reminder run at 08:30.
func (s *ReminderService) Start() error {
	if _, err := s.cron.AddFunc("30 8 * * *", s.RunDailyReminders); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("⏰ Reminder scheduler started (daily at 08:30)")
	return nil
}

// Stop halts the scheduler. Running jobs finish.
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("⏰ Reminder scheduler stopped")
}

// RunDailyReminders executes one reminder sweep. Exposed so a run can
// be triggered outside the schedule.
func (s *ReminderService) RunDailyReminders() {
	ctx := context.Background()
	s.remindDueLoans(ctx)
	s.remindUpcomingMeetings(ctx)
}

// remindDueLoans notifies borrowers whose approved loans fall due
// within the next seven days.
func (s *ReminderService) remindDueLoans(ctx context.Context) {
	now := time.Now()
	loans, err := s.loanRepo.ListApprovedDueBetween(ctx, now, now.AddDate(0, 0, 7))
	if err != nil {
		log.Printf("⚠️ Loan reminder sweep failed: %v", err)
		return
	}

	for _, loan := range loans {
		s.notifier.NotifyPerson(ctx, loan.PersonID, "Loan Due Soon",
			fmt.Sprintf("Your loan of KES %s is due on %s.",
				money.Format(loan.AmountCents), loan.DueDate.Format(domain.DateLayout)))
	}
	if len(loans) > 0 {
		log.Printf("⏰ Sent %d loan due reminders", len(loans))
	}
}

// remindUpcomingMeetings announces meetings happening in the next day.
func (s *ReminderService) remindUpcomingMeetings(ctx context.Context) {
	now := time.Now()
	meetings, err := s.meetingRepo.ListBetween(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		log.Printf("⚠️ Meeting reminder sweep failed: %v", err)
		return
	}

	for _, meeting := range meetings {
		s.notifier.NotifyAll(ctx, "Meeting Reminder",
			fmt.Sprintf("Reminder: meeting on %s at %s.",
				meeting.Date.Format(domain.DateTimeLayout), meeting.Location))
	}
}
