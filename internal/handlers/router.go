package handlers

import (
	"hrm/internal/app"
	"hrm/internal/apperrors"
	"hrm/internal/handlers/middleware"
	"hrm/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewUserHandler(*app, api).Register()
	NewCandidateHandler(*app, api).Register()
	NewInterviewHandler(*app, api).Register()
	NewAuditLogHandler(*app, api).Register()
	NewSchedulingHandler(*app, api).Register()

	return nil
}

// errorJSON maps a controller error onto the wire taxonomy:
// 401/403/404/400/500 with an {"error": message} body.
func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusCode(err)).
		JSON(fiber.Map{"error": err.Error()})
}
