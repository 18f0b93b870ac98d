package userController

import (
	"context"
	"testing"

	"hrm/config"
	"hrm/internal/apperrors"
	"hrm/internal/database"
	. "hrm/internal/models"
	"hrm/internal/repositories"
	"hrm/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestController(t *testing.T) (*UserController, repositories.UserRepository) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&User{}))

	db := database.DB{SQL: gormDB}
	userRepo := repositories.NewUser(db)
	sessionService := services.NewSessionService(db, config.Config{SessionTTLHours: 1})

	return New(userRepo, sessionService), userRepo
}

func createTestUser(t *testing.T, repo repositories.UserRepository, active bool) *User {
	t.Helper()

	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	user := &User{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     "dana.whitfield@example.com",
		Password:  hash,
		Role:      RoleAdmin,
		Active:    active,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLogin_Success(t *testing.T) {
	controller, repo := newTestController(t)
	createTestUser(t, repo, true)

	user, token, err := controller.Login(context.Background(), &LoginRequest{
		Email:    "dana.whitfield@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "dana.whitfield@example.com", user.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	controller, repo := newTestController(t)
	createTestUser(t, repo, true)

	_, _, err := controller.Login(context.Background(), &LoginRequest{
		Email:    "dana.whitfield@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	controller, _ := newTestController(t)

	_, _, err := controller.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_InactiveAccount(t *testing.T) {
	controller, repo := newTestController(t)
	createTestUser(t, repo, false)

	_, _, err := controller.Login(context.Background(), &LoginRequest{
		Email:    "dana.whitfield@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.NotEmpty(t, hash)
}
