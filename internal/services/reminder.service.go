package services

import (
	"context"
	"time"

	"hrm/config"
	"hrm/internal/database"
	"hrm/internal/logger"
	. "hrm/internal/models"
)

// ReminderService periodically finds upcoming scheduled interviews that
// have not been reminded yet and sends a best-effort email for each. A
// failed send leaves ReminderSentAt unset so the next sweep retries it.
type ReminderService struct {
	db     database.DB
	mailer *Mailer
	config config.Config
	log    logger.Logger
}

func NewReminderService(db database.DB, mailer *Mailer, config config.Config) *ReminderService {
	return &ReminderService{
		db:     db,
		mailer: mailer,
		config: config,
		log:    logger.New("ReminderService"),
	}
}

// Sweep is registered with the gocron scheduler in cmd/server.
func (s *ReminderService) Sweep() {
	log := s.log.Function("Sweep")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	cutoff := now.Add(s.config.ReminderWindow())

	var interviews []Interview
	err := s.db.SQLWithContext(ctx).
		Preload("Candidate").
		Where("status = ?", InterviewScheduled).
		Where("reminder_sent_at IS NULL").
		Where("scheduled_at > ? AND scheduled_at <= ?", now, cutoff).
		Find(&interviews).Error
	if err != nil {
		log.Er("failed to query interviews for reminders", err)
		return
	}

	for _, interview := range interviews {
		if interview.Candidate == nil {
			log.Warn("interview has no candidate, skipping reminder", "interviewID", interview.ID)
			continue
		}

		err := s.mailer.SendInterviewReminder(
			interview.Candidate.Email,
			interview.Candidate.FirstName,
			interview.ScheduledAt.Format(time.RFC1123),
		)
		if err != nil {
			log.Warn("failed to send interview reminder", "interviewID", interview.ID, "error", err)
			continue
		}

		sentAt := time.Now()
		if err := s.db.SQLWithContext(ctx).
			Model(&Interview{}).
			Where("id = ?", interview.ID).
			Update("reminder_sent_at", sentAt).Error; err != nil {
			log.Er("failed to stamp reminder sent time", err, "interviewID", interview.ID)
		}
	}
}
