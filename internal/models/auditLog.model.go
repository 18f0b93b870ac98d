package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditType string

const (
	AuditStatusChange AuditType = "STATUS_CHANGE"
	AuditRBTDeleted   AuditType = "RBT_DELETED"
)

// AuditLogEntry is an append-only record of a lifecycle event. Entries are
// written in the same transaction as the status change they describe; the
// only mutations afterward go through the manual admin correction path.
type AuditLogEntry struct {
	BaseUUIDModel
	CandidateID uuid.UUID `gorm:"type:varchar(64);not null;index" json:"candidateId"`
	AuditType   AuditType `gorm:"type:varchar(30);not null"       json:"auditType"`
	DateTime    time.Time `gorm:"not null"                        json:"dateTime"`
	Notes       string    `gorm:"type:text"                       json:"notes"`
	CreatedBy   string    `gorm:"type:varchar(100)"               json:"createdBy"`
}

type UpdateAuditLogRequest struct {
	Notes string `json:"notes"`
}
