package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "SCHEDULED"
	InterviewCompleted InterviewStatus = "COMPLETED"
)

// Interview is one scheduled or historical interview event for a candidate.
type Interview struct {
	BaseUUIDModel
	CandidateID    uuid.UUID       `gorm:"type:varchar(64);not null;index" json:"candidateId"`
	Candidate      *Candidate      `gorm:"foreignKey:CandidateID"          json:"-"`
	ScheduledAt    time.Time       `gorm:"not null"                        json:"scheduledAt"`
	Interviewer    string          `gorm:"type:varchar(100)"               json:"interviewer"`
	Status         InterviewStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	ReminderSentAt *time.Time      `json:"reminderSentAt,omitempty"`
}

type ScheduleInterviewRequest struct {
	CandidateID string    `json:"candidateId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Interviewer string    `json:"interviewer"`
}
