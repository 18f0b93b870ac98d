package repositories

import (
	"context"
	"errors"

	"hrm/internal/apperrors"
	"hrm/internal/database"
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, entry *AuditLogEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*AuditLogEntry, error)
	GetByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*AuditLogEntry, error)
	Update(ctx context.Context, entry *AuditLogEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogRepository struct {
	db  database.DB
	log logger.Logger
}

func NewAuditLog(db database.DB) AuditLogRepository {
	return &auditLogRepository{
		db:  db,
		log: logger.New("auditLogRepository"),
	}
}

func (r *auditLogRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *auditLogRepository) Create(ctx context.Context, entry *AuditLogEntry) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(entry).Error; err != nil {
		return log.Err("failed to create audit log entry", err, "entry", entry)
	}

	return nil
}

func (r *auditLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*AuditLogEntry, error) {
	log := r.log.Function("GetByID")

	var entry AuditLogEntry
	if err := r.getDB(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("audit log entry")
		}
		return nil, log.Err("failed to get audit log entry by id", err, "id", id)
	}

	return &entry, nil
}

func (r *auditLogRepository) GetByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*AuditLogEntry, error) {
	log := r.log.Function("GetByCandidate")

	var entries []*AuditLogEntry
	if err := r.getDB(ctx).
		Where("candidate_id = ?", candidateID).
		Order("date_time DESC").
		Find(&entries).Error; err != nil {
		return nil, log.Err("failed to get audit log entries", err, "candidateID", candidateID)
	}

	return entries, nil
}

// Update exists only for the manual admin correction path.
func (r *auditLogRepository) Update(ctx context.Context, entry *AuditLogEntry) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(entry).Error; err != nil {
		return log.Err("failed to update audit log entry", err, "entryID", entry.ID)
	}

	return nil
}

// Delete exists only for the manual admin correction path.
func (r *auditLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&AuditLogEntry{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete audit log entry", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("audit log entry")
	}

	return nil
}
