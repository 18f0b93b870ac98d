package schedulingController

import (
	"context"
	"math"
	"sort"

	"hrm/internal/apperrors"
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/repositories"

	"github.com/google/uuid"
)

const (
	defaultMatchLimit = 5
	maxMatchLimit     = 25
	earthRadiusKm     = 6371.0
)

// SchedulingController is the scheduling beta: rank hired RBTs by distance
// from a client. The selection is bounded and entirely in memory; nothing
// is persisted.
type SchedulingController struct {
	clientRepo    repositories.ClientRepository
	candidateRepo repositories.CandidateRepository
	log           logger.Logger
}

func New(
	clientRepo repositories.ClientRepository,
	candidateRepo repositories.CandidateRepository,
) *SchedulingController {
	return &SchedulingController{
		clientRepo:    clientRepo,
		candidateRepo: candidateRepo,
		log:           logger.New("SchedulingController"),
	}
}

// Match returns up to limit hired candidates ordered by distance from the
// client. Candidates without coordinates are skipped.
func (c *SchedulingController) Match(ctx context.Context, req *MatchRequest) ([]RankedCandidate, error) {
	log := c.log.Function("Match")

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, apperrors.InvalidState("clientId is not a valid id")
	}

	client, err := c.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultMatchLimit
	}
	if limit > maxMatchLimit {
		limit = maxMatchLimit
	}

	candidates, err := c.candidateRepo.GetByStatus(ctx, StatusHired)
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Latitude == nil || candidate.Longitude == nil {
			continue
		}
		ranked = append(ranked, RankedCandidate{
			Candidate: *candidate,
			DistanceKm: haversineKm(
				client.Latitude, client.Longitude,
				*candidate.Latitude, *candidate.Longitude,
			),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	log.Info("ranked candidates for client", "clientID", clientID, "matches", len(ranked))
	return ranked, nil
}

func (c *SchedulingController) CreateClient(ctx context.Context, req *CreateClientRequest) (*Client, error) {
	if req.Name == "" {
		return nil, apperrors.InvalidState("name is required")
	}

	client := &Client{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	if err := c.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *SchedulingController) ListClients(ctx context.Context) ([]*Client, error) {
	return c.clientRepo.GetAll(ctx)
}

// haversineKm is the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
