package candidateController

import (
	"context"

	"hrm/internal/apperrors"
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/repositories"

	"github.com/google/uuid"
)

// CandidateController covers intake and the contact/address CRUD path.
// Status never changes here; that is the lifecycle controller's job.
type CandidateController struct {
	candidateRepo repositories.CandidateRepository
	log           logger.Logger
}

func New(candidateRepo repositories.CandidateRepository) *CandidateController {
	return &CandidateController{
		candidateRepo: candidateRepo,
		log:           logger.New("CandidateController"),
	}
}

// Intake creates a new candidate at the head of the pipeline.
func (c *CandidateController) Intake(ctx context.Context, req *CreateCandidateRequest) (*Candidate, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return nil, apperrors.InvalidState("firstName, lastName and email are required")
	}

	candidate := &Candidate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Status:       StatusNew,
	}

	if err := c.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	c.log.Function("Intake").Info("candidate created", "candidateID", candidate.ID)
	return candidate, nil
}

func (c *CandidateController) GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	return c.candidateRepo.GetByID(ctx, id)
}

func (c *CandidateController) List(ctx context.Context, status CandidateStatus) ([]*Candidate, error) {
	if status == "" {
		return c.candidateRepo.GetAll(ctx)
	}

	if !status.Valid() {
		return nil, apperrors.InvalidState("unknown status filter")
	}

	return c.candidateRepo.GetByStatus(ctx, status)
}

// UpdateContact applies partial contact/address edits.
func (c *CandidateController) UpdateContact(ctx context.Context, id uuid.UUID, req *UpdateCandidateRequest) (*Candidate, error) {
	candidate, err := c.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		candidate.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		candidate.LastName = *req.LastName
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.AddressLine1 != nil {
		candidate.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		candidate.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		candidate.City = *req.City
	}
	if req.State != nil {
		candidate.State = *req.State
	}
	if req.ZipCode != nil {
		candidate.ZipCode = *req.ZipCode
	}
	if req.Latitude != nil {
		candidate.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		candidate.Longitude = req.Longitude
	}

	if err := c.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}
