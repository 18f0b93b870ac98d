package handlers

import (
	"time"

	"hrm/internal/app"
	userController "hrm/internal/controllers/users"
	"hrm/internal/handlers/middleware"
	"hrm/internal/logger"
	. "hrm/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
	controller userController.UserController
	sessionTTL time.Duration
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		controller: *app.UserController,
		sessionTTL: app.Config.SessionTTL(),
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/users")
	users.Post("/login", h.login)

	users.Get("/", h.middleware.RequireAuth, h.getUser)
	users.Post("/logout", h.middleware.RequireAuth, h.logout)
}

func (h *UserHandler) login(c *fiber.Ctx) error {
	log := h.log.Function("login")

	var loginRequest LoginRequest
	if err := c.BodyParser(&loginRequest); err != nil {
		log.Er("failed to parse login request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse login request"})
	}

	user, token, err := h.controller.Login(c.Context(), &loginRequest)
	if err != nil {
		return errorJSON(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"message": "success", "user": user})
}

func (h *UserHandler) getUser(c *fiber.Ctx) error {
	user := c.Locals("user").(User)
	return c.JSON(fiber.Map{"message": "success", "user": user})
}

func (h *UserHandler) logout(c *fiber.Ctx) error {
	log := h.log.Function("logout")

	token, _ := c.Locals("session_token").(string)
	if err := h.controller.Logout(c.Context(), token); err != nil {
		log.Er("failed to revoke session", err)
	}

	c.ClearCookie(middleware.SessionCookie)
	return c.JSON(fiber.Map{"message": "success"})
}
