package interviewController

import (
	"context"
	"fmt"
	"time"

	"hrm/internal/apperrors"
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/repositories"
	"hrm/internal/services"

	"github.com/google/uuid"
)

// InterviewController books and lists interviews. Completion and deletion
// run through the lifecycle controller because they move candidate status.
type InterviewController struct {
	interviewRepo      repositories.InterviewRepository
	candidateRepo      repositories.CandidateRepository
	auditRepo          repositories.AuditLogRepository
	transactionService *services.TransactionService
	log                logger.Logger
}

func New(
	interviewRepo repositories.InterviewRepository,
	candidateRepo repositories.CandidateRepository,
	auditRepo repositories.AuditLogRepository,
	transactionService *services.TransactionService,
) *InterviewController {
	return &InterviewController{
		interviewRepo:      interviewRepo,
		candidateRepo:      candidateRepo,
		auditRepo:          auditRepo,
		transactionService: transactionService,
		log:                logger.New("InterviewController"),
	}
}

// Schedule books an interview and moves the candidate to
// INTERVIEW_SCHEDULED, atomically with the audit entry.
func (c *InterviewController) Schedule(ctx context.Context, req *ScheduleInterviewRequest, actingUser User) (*Interview, error) {
	log := c.log.Function("Schedule")

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return nil, apperrors.InvalidState("candidateId is not a valid id")
	}
	if req.ScheduledAt.IsZero() {
		return nil, apperrors.InvalidState("scheduledAt is required")
	}

	var interview *Interview
	err = c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		candidate, err := c.candidateRepo.GetByID(txCtx, candidateID)
		if err != nil {
			return err
		}

		interview = &Interview{
			CandidateID: candidate.ID,
			ScheduledAt: req.ScheduledAt,
			Interviewer: req.Interviewer,
			Status:      InterviewScheduled,
		}
		if err := c.interviewRepo.Create(txCtx, interview); err != nil {
			return err
		}

		if candidate.Status == StatusInterviewScheduled {
			return nil
		}

		if err := c.candidateRepo.UpdateStatus(txCtx, candidate.ID, StatusInterviewScheduled); err != nil {
			return err
		}

		entry := &AuditLogEntry{
			CandidateID: candidate.ID,
			AuditType:   AuditStatusChange,
			DateTime:    time.Now(),
			Notes:       fmt.Sprintf("Status changed from %s to %s", candidate.Status, StatusInterviewScheduled),
			CreatedBy:   actingUser.Email,
		}
		return c.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	if err := c.candidateRepo.InvalidateCache(ctx, candidateID); err != nil {
		log.Warn("failed to invalidate candidate cache", "candidateID", candidateID, "error", err)
	}

	log.Info("interview scheduled", "interviewID", interview.ID, "candidateID", candidateID)
	return interview, nil
}

func (c *InterviewController) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*Interview, error) {
	if _, err := c.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}
	return c.interviewRepo.GetByCandidate(ctx, candidateID)
}
