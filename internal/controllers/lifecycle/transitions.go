package lifecycleController

import (
	"fmt"

	"hrm/internal/apperrors"
	. "hrm/internal/models"
)

// ReversionTarget is the status a candidate falls back to when their last
// scheduled interview is deleted. It is a fixed literal rather than the
// candidate's actual prior status, which loses information when the
// candidate was e.g. TO_INTERVIEW before scheduling.
// TODO: confirm with operations whether the fallback should derive from
// the audit trail instead.
const ReversionTarget = StatusReachOutEmailSent

// TransitionPolicy decides whether a status transition is allowed. The
// portal historically allowed any-to-any, so PermissivePolicy is the
// default; StrictPolicy enforces the pipeline graph and is opt-in via
// config.
type TransitionPolicy interface {
	Allowed(from, to CandidateStatus) bool
}

type PermissivePolicy struct{}

func (PermissivePolicy) Allowed(from, to CandidateStatus) bool {
	return true
}

// StrictPolicy allows only forward pipeline moves, rejection from any
// non-terminal status, and the interview-delete reversion.
type StrictPolicy struct{}

var strictGraph = map[CandidateStatus][]CandidateStatus{
	StatusNew:                {StatusReachOut, StatusRejected},
	StatusReachOut:           {StatusReachOutEmailSent, StatusRejected},
	StatusReachOutEmailSent:  {StatusToInterview, StatusRejected},
	StatusToInterview:        {StatusInterviewScheduled, StatusRejected},
	StatusInterviewScheduled: {StatusInterviewCompleted, ReversionTarget, StatusRejected},
	StatusInterviewCompleted: {StatusHired, StatusRejected},
	StatusHired:              {},
	StatusRejected:           {},
}

func (StrictPolicy) Allowed(from, to CandidateStatus) bool {
	for _, next := range strictGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

func validateTransition(policy TransitionPolicy, from, to CandidateStatus) error {
	if !to.Valid() {
		return apperrors.InvalidState(fmt.Sprintf("unknown status %q", to))
	}

	if !policy.Allowed(from, to) {
		return apperrors.InvalidState(fmt.Sprintf("transition from %s to %s is not allowed", from, to))
	}

	return nil
}
