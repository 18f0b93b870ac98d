package schedulingController

import (
	"context"
	"fmt"
	"testing"

	"hrm/internal/apperrors"
	"hrm/internal/database"
	. "hrm/internal/models"
	"hrm/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestController(t *testing.T) (*SchedulingController, repositories.ClientRepository, repositories.CandidateRepository) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&Candidate{}, &Client{}))

	db := database.DB{SQL: gormDB}
	clientRepo := repositories.NewClient(db)
	candidateRepo := repositories.NewCandidate(db)

	return New(clientRepo, candidateRepo), clientRepo, candidateRepo
}

func hiredCandidate(t *testing.T, repo repositories.CandidateRepository, name string, lat, lon *float64) *Candidate {
	t.Helper()

	candidate := &Candidate{
		FirstName: name,
		LastName:  "Hired",
		Email:     fmt.Sprintf("%s@example.com", name),
		Status:    StatusHired,
		Latitude:  lat,
		Longitude: lon,
	}
	require.NoError(t, repo.Create(context.Background(), candidate))
	return candidate
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestMatch_RanksByDistance(t *testing.T) {
	controller, clientRepo, candidateRepo := newTestController(t)

	// Client in central Austin.
	client := &Client{Name: "Harper Family", Latitude: 30.2672, Longitude: -97.7431}
	require.NoError(t, clientRepo.Create(context.Background(), client))

	// Near, mid, far.
	near := hiredCandidate(t, candidateRepo, "near", floatPtr(30.2700), floatPtr(-97.7400))
	mid := hiredCandidate(t, candidateRepo, "mid", floatPtr(30.5083), floatPtr(-97.6789))
	far := hiredCandidate(t, candidateRepo, "far", floatPtr(32.7767), floatPtr(-96.7970))

	matches, err := controller.Match(context.Background(), &MatchRequest{ClientID: client.ID.String()})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, near.ID, matches[0].Candidate.ID)
	assert.Equal(t, mid.ID, matches[1].Candidate.ID)
	assert.Equal(t, far.ID, matches[2].Candidate.ID)

	assert.Less(t, matches[0].DistanceKm, matches[1].DistanceKm)
	assert.Less(t, matches[1].DistanceKm, matches[2].DistanceKm)

	// Dallas is roughly 290km from Austin.
	assert.InDelta(t, 290, matches[2].DistanceKm, 20)
}

func TestMatch_SkipsCandidatesWithoutCoordinates(t *testing.T) {
	controller, clientRepo, candidateRepo := newTestController(t)

	client := &Client{Name: "Harper Family", Latitude: 30.2672, Longitude: -97.7431}
	require.NoError(t, clientRepo.Create(context.Background(), client))

	hiredCandidate(t, candidateRepo, "located", floatPtr(30.2700), floatPtr(-97.7400))
	hiredCandidate(t, candidateRepo, "nowhere", nil, nil)

	matches, err := controller.Match(context.Background(), &MatchRequest{ClientID: client.ID.String()})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "located", matches[0].Candidate.FirstName)
}

func TestMatch_OnlyHiredCandidates(t *testing.T) {
	controller, clientRepo, candidateRepo := newTestController(t)

	client := &Client{Name: "Harper Family", Latitude: 30.2672, Longitude: -97.7431}
	require.NoError(t, clientRepo.Create(context.Background(), client))

	applicant := &Candidate{
		FirstName: "stillnew",
		LastName:  "Applicant",
		Email:     "stillnew@example.com",
		Status:    StatusNew,
		Latitude:  floatPtr(30.2672),
		Longitude: floatPtr(-97.7431),
	}
	require.NoError(t, candidateRepo.Create(context.Background(), applicant))

	matches, err := controller.Match(context.Background(), &MatchRequest{ClientID: client.ID.String()})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatch_LimitDefaultsAndCaps(t *testing.T) {
	controller, clientRepo, candidateRepo := newTestController(t)

	client := &Client{Name: "Harper Family", Latitude: 30.2672, Longitude: -97.7431}
	require.NoError(t, clientRepo.Create(context.Background(), client))

	for i := 0; i < 30; i++ {
		hiredCandidate(t, candidateRepo, fmt.Sprintf("rbt%02d", i),
			floatPtr(30.2+float64(i)*0.01), floatPtr(-97.7))
	}

	matches, err := controller.Match(context.Background(), &MatchRequest{ClientID: client.ID.String()})
	require.NoError(t, err)
	assert.Len(t, matches, defaultMatchLimit)

	matches, err = controller.Match(context.Background(), &MatchRequest{
		ClientID: client.ID.String(),
		Limit:    100,
	})
	require.NoError(t, err)
	assert.Len(t, matches, maxMatchLimit)
}

func TestMatch_ClientNotFound(t *testing.T) {
	controller, _, _ := newTestController(t)

	_, err := controller.Match(context.Background(), &MatchRequest{ClientID: uuid.NewString()})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMatch_InvalidClientID(t *testing.T) {
	controller, _, _ := newTestController(t)

	_, err := controller.Match(context.Background(), &MatchRequest{ClientID: "not-a-uuid"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Austin to Houston is about 235km.
	distance := haversineKm(30.2672, -97.7431, 29.7604, -95.3698)
	assert.InDelta(t, 235, distance, 15)

	// Zero distance for identical points.
	assert.Zero(t, haversineKm(30.0, -97.0, 30.0, -97.0))
}
