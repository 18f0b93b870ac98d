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

type InterviewRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Interview, error)
	Create(ctx context.Context, interview *Interview) error
	Update(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*Interview, error)
	CountScheduled(ctx context.Context, candidateID uuid.UUID) (int64, error)
	CompleteAllScheduled(ctx context.Context, candidateID uuid.UUID) error
	DeleteByCandidate(ctx context.Context, candidateID uuid.UUID) error
}

type interviewRepository struct {
	db  database.DB
	log logger.Logger
}

func NewInterview(db database.DB) InterviewRepository {
	return &interviewRepository{
		db:  db,
		log: logger.New("interviewRepository"),
	}
}

func (r *interviewRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *interviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*Interview, error) {
	log := r.log.Function("GetByID")

	var interview Interview
	if err := r.getDB(ctx).First(&interview, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("interview")
		}
		return nil, log.Err("failed to get interview by id", err, "id", id)
	}

	return &interview, nil
}

func (r *interviewRepository) Create(ctx context.Context, interview *Interview) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(interview).Error; err != nil {
		return log.Err("failed to create interview", err, "interview", interview)
	}

	return nil
}

func (r *interviewRepository) Update(ctx context.Context, interview *Interview) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(interview).Error; err != nil {
		return log.Err("failed to update interview", err, "interviewID", interview.ID)
	}

	return nil
}

func (r *interviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&Interview{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete interview", err, "id", id)
	}

	return nil
}

func (r *interviewRepository) GetByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*Interview, error) {
	log := r.log.Function("GetByCandidate")

	var interviews []*Interview
	if err := r.getDB(ctx).
		Where("candidate_id = ?", candidateID).
		Order("scheduled_at DESC").
		Find(&interviews).Error; err != nil {
		return nil, log.Err("failed to get interviews by candidate", err, "candidateID", candidateID)
	}

	return interviews, nil
}

func (r *interviewRepository) CountScheduled(ctx context.Context, candidateID uuid.UUID) (int64, error) {
	log := r.log.Function("CountScheduled")

	var count int64
	if err := r.getDB(ctx).
		Model(&Interview{}).
		Where("candidate_id = ? AND status = ?", candidateID, InterviewScheduled).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count scheduled interviews", err, "candidateID", candidateID)
	}

	return count, nil
}

func (r *interviewRepository) CompleteAllScheduled(ctx context.Context, candidateID uuid.UUID) error {
	log := r.log.Function("CompleteAllScheduled")

	if err := r.getDB(ctx).
		Model(&Interview{}).
		Where("candidate_id = ? AND status = ?", candidateID, InterviewScheduled).
		Update("status", InterviewCompleted).Error; err != nil {
		return log.Err("failed to complete scheduled interviews", err, "candidateID", candidateID)
	}

	return nil
}

func (r *interviewRepository) DeleteByCandidate(ctx context.Context, candidateID uuid.UUID) error {
	log := r.log.Function("DeleteByCandidate")

	if err := r.getDB(ctx).
		Where("candidate_id = ?", candidateID).
		Delete(&Interview{}).Error; err != nil {
		return log.Err("failed to delete interviews by candidate", err, "candidateID", candidateID)
	}

	return nil
}
