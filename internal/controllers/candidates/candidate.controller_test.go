package candidateController

import (
	"context"
	"testing"

	"hrm/internal/apperrors"
	"hrm/internal/database"
	. "hrm/internal/models"
	"hrm/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestController(t *testing.T) *CandidateController {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&Candidate{}, &Interview{}))

	return New(repositories.NewCandidate(database.DB{SQL: gormDB}))
}

func stringPtr(s string) *string {
	return &s
}

func TestIntake_CreatesCandidateAtPipelineHead(t *testing.T) {
	controller := newTestController(t)

	candidate, err := controller.Intake(context.Background(), &CreateCandidateRequest{
		FirstName: "Alicia",
		LastName:  "Tran",
		Email:     "alicia.tran@example.com",
		Phone:     "555-0101",
		City:      "Austin",
		State:     "TX",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusNew, candidate.Status)
	assert.NotZero(t, candidate.ID)
}

func TestIntake_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		request CreateCandidateRequest
	}{
		{
			name:    "missing first name",
			request: CreateCandidateRequest{LastName: "Tran", Email: "a@example.com"},
		},
		{
			name:    "missing last name",
			request: CreateCandidateRequest{FirstName: "Alicia", Email: "a@example.com"},
		},
		{
			name:    "missing email",
			request: CreateCandidateRequest{FirstName: "Alicia", LastName: "Tran"},
		},
	}

	controller := newTestController(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := controller.Intake(context.Background(), &tt.request)
			assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		})
	}
}

func TestUpdateContact_PartialEdit(t *testing.T) {
	controller := newTestController(t)

	candidate, err := controller.Intake(context.Background(), &CreateCandidateRequest{
		FirstName: "Alicia",
		LastName:  "Tran",
		Email:     "alicia.tran@example.com",
		City:      "Austin",
	})
	require.NoError(t, err)

	updated, err := controller.UpdateContact(context.Background(), candidate.ID, &UpdateCandidateRequest{
		Phone: stringPtr("555-0199"),
		City:  stringPtr("Round Rock"),
	})
	require.NoError(t, err)

	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Round Rock", updated.City)
	// Untouched fields stay put, and status never moves on this path.
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, StatusNew, updated.Status)
}

func TestList_FilterValidation(t *testing.T) {
	controller := newTestController(t)

	_, err := controller.Intake(context.Background(), &CreateCandidateRequest{
		FirstName: "Alicia",
		LastName:  "Tran",
		Email:     "alicia.tran@example.com",
	})
	require.NoError(t, err)

	all, err := controller.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	filtered, err := controller.List(context.Background(), StatusNew)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	empty, err := controller.List(context.Background(), StatusHired)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = controller.List(context.Background(), CandidateStatus("BOGUS"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}
