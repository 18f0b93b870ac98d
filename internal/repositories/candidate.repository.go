package repositories

import (
	"context"
	"errors"
	"time"

	"hrm/internal/apperrors"
	"hrm/internal/database"
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const CANDIDATE_CACHE_EXPIRY = 1 * time.Hour

type CandidateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status CandidateStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]*Candidate, error)
	GetByStatus(ctx context.Context, status CandidateStatus) ([]*Candidate, error)
	InvalidateCache(ctx context.Context, id uuid.UUID) error
}

type candidateRepository struct {
	db  database.DB
	log logger.Logger
}

func NewCandidate(db database.DB) CandidateRepository {
	return &candidateRepository{
		db:  db,
		log: logger.New("candidateRepository"),
	}
}

func (r *candidateRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	log := r.log.Function("GetByID")

	var candidate Candidate

	// Ambient transactions bypass the cache so reads always see the
	// transaction's own writes.
	if _, inTx := services.GetTransaction(ctx); !inTx {
		if found, err := r.getCacheByID(ctx, id, &candidate); err == nil && found {
			return &candidate, nil
		}
	}

	if err := r.getDB(ctx).First(&candidate, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("candidate")
		}
		return nil, log.Err("failed to get candidate by id", err, "id", id)
	}

	// Only Create and Update populate the cache, with the value they just
	// persisted. A read racing a status commit would otherwise re-cache
	// the old row after the invalidation.
	return &candidate, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *Candidate) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(candidate).Error; err != nil {
		return log.Err("failed to create candidate", err, "candidate", candidate)
	}

	if err := r.addToCache(ctx, candidate); err != nil {
		log.Warn("failed to add candidate to cache", "candidateID", candidate.ID, "error", err)
	}

	return nil
}

func (r *candidateRepository) Update(ctx context.Context, candidate *Candidate) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(candidate).Error; err != nil {
		return log.Err("failed to update candidate", err, "candidateID", candidate.ID)
	}

	if err := r.addToCache(ctx, candidate); err != nil {
		log.Warn("failed to update candidate in cache", "candidateID", candidate.ID, "error", err)
	}

	return nil
}

func (r *candidateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status CandidateStatus) error {
	log := r.log.Function("UpdateStatus")

	result := r.getDB(ctx).Model(&Candidate{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return log.Err("failed to update candidate status", result.Error, "id", id, "status", status)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("candidate")
	}

	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&Candidate{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete candidate", err, "id", id)
	}

	if err := r.InvalidateCache(ctx, id); err != nil {
		log.Warn("failed to remove candidate from cache", "candidateID", id, "error", err)
	}

	return nil
}

func (r *candidateRepository) GetAll(ctx context.Context) ([]*Candidate, error) {
	log := r.log.Function("GetAll")

	var candidates []*Candidate
	if err := r.getDB(ctx).Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, log.Err("failed to get all candidates", err)
	}

	return candidates, nil
}

func (r *candidateRepository) GetByStatus(ctx context.Context, status CandidateStatus) ([]*Candidate, error) {
	log := r.log.Function("GetByStatus")

	var candidates []*Candidate
	if err := r.getDB(ctx).Where("status = ?", status).Find(&candidates).Error; err != nil {
		return nil, log.Err("failed to get candidates by status", err, "status", status)
	}

	return candidates, nil
}

func (r *candidateRepository) InvalidateCache(ctx context.Context, id uuid.UUID) error {
	return database.NewCacheBuilder(r.db.Cache.Candidate, id.String()).
		WithContext(ctx).
		Delete()
}

func (r *candidateRepository) getCacheByID(ctx context.Context, id uuid.UUID, candidate *Candidate) (bool, error) {
	return database.NewCacheBuilder(r.db.Cache.Candidate, id.String()).
		WithContext(ctx).
		Get(candidate)
}

func (r *candidateRepository) addToCache(ctx context.Context, candidate *Candidate) error {
	return database.NewCacheBuilder(r.db.Cache.Candidate, candidate.ID.String()).
		WithStruct(candidate).
		WithTTL(CANDIDATE_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
