package lifecycleController

import (
	"context"
	"fmt"
	"time"

	"hrm/config"
	"hrm/internal/apperrors"
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/repositories"
	"hrm/internal/services"

	"github.com/google/uuid"
)

// LifecycleController is the single entry point for RBT candidate status
// changes. Every status write, its interview side effects, and its audit
// entry commit in one transaction; best-effort side effects (account
// downgrade, email) run after the commit and never roll it back.
type LifecycleController struct {
	candidateRepo      repositories.CandidateRepository
	interviewRepo      repositories.InterviewRepository
	auditRepo          repositories.AuditLogRepository
	userRepo           repositories.UserRepository
	transactionService *services.TransactionService
	mailer             *services.Mailer
	policy             TransitionPolicy
	log                logger.Logger
}

func New(
	candidateRepo repositories.CandidateRepository,
	interviewRepo repositories.InterviewRepository,
	auditRepo repositories.AuditLogRepository,
	userRepo repositories.UserRepository,
	transactionService *services.TransactionService,
	mailer *services.Mailer,
	config config.Config,
) *LifecycleController {
	var policy TransitionPolicy = PermissivePolicy{}
	if config.StrictTransitions {
		policy = StrictPolicy{}
	}

	return &LifecycleController{
		candidateRepo:      candidateRepo,
		interviewRepo:      interviewRepo,
		auditRepo:          auditRepo,
		userRepo:           userRepo,
		transactionService: transactionService,
		mailer:             mailer,
		policy:             policy,
		log:                logger.New("LifecycleController"),
	}
}

// SetStatus applies a status change with its side effects and audit entry
// atomically and returns the persisted status.
func (c *LifecycleController) SetStatus(
	ctx context.Context,
	candidateID uuid.UUID,
	newStatus CandidateStatus,
	actingUser User,
) (CandidateStatus, error) {
	log := c.log.Function("SetStatus")

	err := c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		candidate, err := c.candidateRepo.GetByID(txCtx, candidateID)
		if err != nil {
			return err
		}

		if err := validateTransition(c.policy, candidate.Status, newStatus); err != nil {
			return err
		}

		if newStatus == StatusInterviewCompleted {
			if err := c.interviewRepo.CompleteAllScheduled(txCtx, candidateID); err != nil {
				return err
			}
		}

		if err := c.candidateRepo.UpdateStatus(txCtx, candidateID, newStatus); err != nil {
			return err
		}

		return c.writeStatusAudit(txCtx, candidateID, candidate.Status, newStatus, actingUser)
	})
	if err != nil {
		return "", err
	}

	c.invalidateCandidate(ctx, candidateID)
	log.Info("candidate status updated", "candidateID", candidateID, "status", newStatus)

	return newStatus, nil
}

// Reject always moves the candidate to REJECTED. The linked portal account
// downgrade and the rejection email run after the commit; their failures
// are logged and swallowed.
func (c *LifecycleController) Reject(ctx context.Context, candidateID uuid.UUID, actingUser User) error {
	log := c.log.Function("Reject")

	var candidate *Candidate
	err := c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		loaded, err := c.candidateRepo.GetByID(txCtx, candidateID)
		if err != nil {
			return err
		}
		candidate = loaded

		if err := c.candidateRepo.UpdateStatus(txCtx, candidateID, StatusRejected); err != nil {
			return err
		}

		return c.writeStatusAudit(txCtx, candidateID, candidate.Status, StatusRejected, actingUser)
	})
	if err != nil {
		return err
	}

	c.invalidateCandidate(ctx, candidateID)

	if err := c.downgradeLinkedAccount(ctx, candidate); err != nil {
		log.Warn("failed to downgrade linked account after rejection",
			"candidateID", candidateID, "error", err)
	}

	go func(email, firstName string) {
		if err := c.mailer.SendRejection(email, firstName); err != nil {
			log.Warn("failed to send rejection email", "candidateID", candidateID, "error", err)
		}
	}(candidate.Email, candidate.FirstName)

	return nil
}

// CompleteInterview completes one interview explicitly. The interview must
// currently be SCHEDULED; the candidate moves to INTERVIEW_COMPLETED.
func (c *LifecycleController) CompleteInterview(ctx context.Context, interviewID uuid.UUID, actingUser User) error {
	log := c.log.Function("CompleteInterview")

	var candidateID uuid.UUID
	err := c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		interview, err := c.interviewRepo.GetByID(txCtx, interviewID)
		if err != nil {
			return err
		}

		if interview.Status != InterviewScheduled {
			return apperrors.InvalidState(
				fmt.Sprintf("interview is %s, only SCHEDULED interviews can be completed", interview.Status),
			)
		}

		interview.Status = InterviewCompleted
		if err := c.interviewRepo.Update(txCtx, interview); err != nil {
			return err
		}

		candidate, err := c.candidateRepo.GetByID(txCtx, interview.CandidateID)
		if err != nil {
			return err
		}
		candidateID = candidate.ID

		if err := c.candidateRepo.UpdateStatus(txCtx, candidate.ID, StatusInterviewCompleted); err != nil {
			return err
		}

		return c.writeStatusAudit(txCtx, candidate.ID, candidate.Status, StatusInterviewCompleted, actingUser)
	})
	if err != nil {
		return err
	}

	c.invalidateCandidate(ctx, candidateID)
	log.Info("interview completed", "interviewID", interviewID)

	return nil
}

// DeleteInterview removes an interview and, when no scheduled interviews
// remain for a candidate still in INTERVIEW_SCHEDULED, reverts the
// candidate to the fixed reversion target.
func (c *LifecycleController) DeleteInterview(ctx context.Context, interviewID uuid.UUID, actingUser User) error {
	log := c.log.Function("DeleteInterview")

	var candidateID uuid.UUID
	err := c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		interview, err := c.interviewRepo.GetByID(txCtx, interviewID)
		if err != nil {
			return err
		}
		candidateID = interview.CandidateID

		if err := c.interviewRepo.Delete(txCtx, interviewID); err != nil {
			return err
		}

		remaining, err := c.interviewRepo.CountScheduled(txCtx, interview.CandidateID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		candidate, err := c.candidateRepo.GetByID(txCtx, interview.CandidateID)
		if err != nil {
			return err
		}
		if candidate.Status != StatusInterviewScheduled {
			return nil
		}

		if err := c.candidateRepo.UpdateStatus(txCtx, candidate.ID, ReversionTarget); err != nil {
			return err
		}

		return c.writeStatusAudit(txCtx, candidate.ID, candidate.Status, ReversionTarget, actingUser)
	})
	if err != nil {
		return err
	}

	c.invalidateCandidate(ctx, candidateID)
	log.Info("interview deleted", "interviewID", interviewID)

	return nil
}

// DeleteCandidate is the explicit admin purge: interviews and the
// candidate row go in one transaction, leaving an RBT_DELETED audit entry.
func (c *LifecycleController) DeleteCandidate(ctx context.Context, candidateID uuid.UUID, actingUser User) error {
	log := c.log.Function("DeleteCandidate")

	err := c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		candidate, err := c.candidateRepo.GetByID(txCtx, candidateID)
		if err != nil {
			return err
		}

		if err := c.interviewRepo.DeleteByCandidate(txCtx, candidateID); err != nil {
			return err
		}

		if err := c.candidateRepo.Delete(txCtx, candidateID); err != nil {
			return err
		}

		entry := &AuditLogEntry{
			CandidateID: candidateID,
			AuditType:   AuditRBTDeleted,
			DateTime:    time.Now(),
			Notes:       fmt.Sprintf("RBT %s %s deleted", candidate.FirstName, candidate.LastName),
			CreatedBy:   actingUser.Email,
		}
		return c.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		return err
	}

	c.invalidateCandidate(ctx, candidateID)
	log.Info("candidate deleted", "candidateID", candidateID)

	return nil
}

// UpdateAuditEntry is the manual admin correction path for audit notes.
func (c *LifecycleController) UpdateAuditEntry(ctx context.Context, entryID uuid.UUID, notes string) (*AuditLogEntry, error) {
	entry, err := c.auditRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	entry.Notes = notes
	if err := c.auditRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteAuditEntry is the manual admin correction path for removing an
// entry entirely.
func (c *LifecycleController) DeleteAuditEntry(ctx context.Context, entryID uuid.UUID) error {
	return c.auditRepo.Delete(ctx, entryID)
}

func (c *LifecycleController) GetAuditTrail(ctx context.Context, candidateID uuid.UUID) ([]*AuditLogEntry, error) {
	if _, err := c.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}
	return c.auditRepo.GetByCandidate(ctx, candidateID)
}

func (c *LifecycleController) writeStatusAudit(
	ctx context.Context,
	candidateID uuid.UUID,
	previous, next CandidateStatus,
	actingUser User,
) error {
	entry := &AuditLogEntry{
		CandidateID: candidateID,
		AuditType:   AuditStatusChange,
		DateTime:    time.Now(),
		Notes:       fmt.Sprintf("Status changed from %s to %s", previous, next),
		CreatedBy:   actingUser.Email,
	}
	return c.auditRepo.Create(ctx, entry)
}

func (c *LifecycleController) downgradeLinkedAccount(ctx context.Context, candidate *Candidate) error {
	if candidate.UserID == nil {
		return nil
	}

	user, err := c.userRepo.GetByID(ctx, *candidate.UserID)
	if err != nil {
		return err
	}

	if user.Role == RoleRBT && !user.Active {
		return nil
	}

	user.Role = RoleRBT
	user.Active = false
	return c.userRepo.Update(ctx, user)
}

func (c *LifecycleController) invalidateCandidate(ctx context.Context, candidateID uuid.UUID) {
	if candidateID == uuid.Nil {
		return
	}
	if err := c.candidateRepo.InvalidateCache(ctx, candidateID); err != nil {
		c.log.Warn("failed to invalidate candidate cache", "candidateID", candidateID, "error", err)
	}
}
