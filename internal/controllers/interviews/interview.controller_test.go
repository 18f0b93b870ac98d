package interviewController

import (
	"context"
	"testing"
	"time"

	"hrm/internal/apperrors"
	"hrm/internal/database"
	. "hrm/internal/models"
	"hrm/internal/repositories"
	"hrm/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestController(t *testing.T) (*InterviewController, repositories.CandidateRepository, repositories.AuditLogRepository) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&Candidate{}, &Interview{}, &AuditLogEntry{}))

	db := database.DB{SQL: gormDB}
	interviewRepo := repositories.NewInterview(db)
	candidateRepo := repositories.NewCandidate(db)
	auditRepo := repositories.NewAuditLog(db)

	controller := New(interviewRepo, candidateRepo, auditRepo, services.NewTransactionService(db))
	return controller, candidateRepo, auditRepo
}

var admin = User{Email: "admin@riseandshine.example", Role: RoleAdmin, Active: true}

func TestSchedule_CreatesInterviewAndMovesStatus(t *testing.T) {
	controller, candidateRepo, auditRepo := newTestController(t)

	candidate := &Candidate{
		FirstName: "Jordan",
		LastName:  "Avery",
		Email:     "jordan.avery@example.com",
		Status:    StatusToInterview,
	}
	require.NoError(t, candidateRepo.Create(context.Background(), candidate))

	interview, err := controller.Schedule(context.Background(), &ScheduleInterviewRequest{
		CandidateID: candidate.ID.String(),
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Interviewer: "Dana Whitfield",
	}, admin)
	require.NoError(t, err)
	assert.Equal(t, InterviewScheduled, interview.Status)

	updated, err := candidateRepo.GetByID(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusInterviewScheduled, updated.Status)

	entries, err := auditRepo.GetByCandidate(context.Background(), candidate.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Status changed from TO_INTERVIEW to INTERVIEW_SCHEDULED", entries[0].Notes)
}

func TestSchedule_AlreadyScheduled_NoDuplicateAudit(t *testing.T) {
	controller, candidateRepo, auditRepo := newTestController(t)

	candidate := &Candidate{
		FirstName: "Jordan",
		LastName:  "Avery",
		Email:     "jordan.avery@example.com",
		Status:    StatusInterviewScheduled,
	}
	require.NoError(t, candidateRepo.Create(context.Background(), candidate))

	_, err := controller.Schedule(context.Background(), &ScheduleInterviewRequest{
		CandidateID: candidate.ID.String(),
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}, admin)
	require.NoError(t, err)

	entries, err := auditRepo.GetByCandidate(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSchedule_CandidateNotFound(t *testing.T) {
	controller, _, _ := newTestController(t)

	_, err := controller.Schedule(context.Background(), &ScheduleInterviewRequest{
		CandidateID: uuid.NewString(),
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}, admin)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSchedule_MissingScheduledAt(t *testing.T) {
	controller, candidateRepo, _ := newTestController(t)

	candidate := &Candidate{
		FirstName: "Jordan",
		LastName:  "Avery",
		Email:     "jordan.avery@example.com",
		Status:    StatusToInterview,
	}
	require.NoError(t, candidateRepo.Create(context.Background(), candidate))

	_, err := controller.Schedule(context.Background(), &ScheduleInterviewRequest{
		CandidateID: candidate.ID.String(),
	}, admin)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestListByCandidate(t *testing.T) {
	controller, candidateRepo, _ := newTestController(t)

	candidate := &Candidate{
		FirstName: "Jordan",
		LastName:  "Avery",
		Email:     "jordan.avery@example.com",
		Status:    StatusToInterview,
	}
	require.NoError(t, candidateRepo.Create(context.Background(), candidate))

	for i := 0; i < 2; i++ {
		_, err := controller.Schedule(context.Background(), &ScheduleInterviewRequest{
			CandidateID: candidate.ID.String(),
			ScheduledAt: time.Now().Add(time.Duration(24*(i+1)) * time.Hour),
		}, admin)
		require.NoError(t, err)
	}

	interviews, err := controller.ListByCandidate(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Len(t, interviews, 2)

	_, err = controller.ListByCandidate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
