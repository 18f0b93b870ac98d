package userController

import (
	"context"
	"errors"

	"hrm/internal/apperrors"
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/repositories"
	"hrm/internal/services"

	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	userRepo       repositories.UserRepository
	sessionService *services.SessionService
	log            logger.Logger
}

func New(userRepo repositories.UserRepository, sessionService *services.SessionService) *UserController {
	return &UserController{
		userRepo:       userRepo,
		sessionService: sessionService,
		log:            logger.New("UserController"),
	}
}

// Login verifies credentials and issues a session token. Bad credentials
// and inactive accounts both come back as Unauthorized so the response
// never leaks which one it was.
func (c *UserController) Login(ctx context.Context, req *LoginRequest) (*User, string, error) {
	log := c.log.Function("Login")

	user, err := c.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", err
	}

	if !user.Active {
		return nil, "", apperrors.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := c.sessionService.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	log.Info("user logged in", "userID", user.ID)
	return user, token, nil
}

func (c *UserController) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return c.sessionService.Revoke(ctx, token)
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
