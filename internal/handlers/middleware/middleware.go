package middleware

import (
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/repositories"
	"hrm/internal/services"

	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "session_id"

type Middleware struct {
	sessionService *services.SessionService
	userRepo       repositories.UserRepository
	log            logger.Logger
}

func New(sessionService *services.SessionService, userRepo repositories.UserRepository) Middleware {
	return Middleware{
		sessionService: sessionService,
		userRepo:       userRepo,
		log:            logger.New("middleware"),
	}
}

// RequireAuth resolves the session cookie to a user and stores it in
// locals. The role check is re-derived on every request; nothing is
// cached in process.
func (m Middleware) RequireAuth(c *fiber.Ctx) error {
	log := m.log.Function("RequireAuth")

	token := c.Cookies(SessionCookie)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "missing session"})
	}

	userID, found, err := m.sessionService.Resolve(c.Context(), token)
	if err != nil {
		log.Er("failed to resolve session", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to resolve session"})
	}
	if !found {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "invalid session"})
	}

	user, err := m.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "invalid session"})
	}

	if !user.Active {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "account is inactive"})
	}

	c.Locals("user", *user)
	c.Locals("session_token", token)

	return c.Next()
}

// RequireAdmin must run after RequireAuth.
func (m Middleware) RequireAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(User)
	if !ok || !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).
			JSON(fiber.Map{"error": "admin role required"})
	}

	return c.Next()
}
