package handlers

import (
	"hrm/internal/app"
	schedulingController "hrm/internal/controllers/scheduling"
	"hrm/internal/logger"
	. "hrm/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SchedulingHandler struct {
	Handler
	controller schedulingController.SchedulingController
}

func NewSchedulingHandler(app app.App, router fiber.Router) *SchedulingHandler {
	log := logger.New("handlers").File("scheduling_handler")
	return &SchedulingHandler{
		controller: *app.SchedulingController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SchedulingHandler) Register() {
	auth := []fiber.Handler{h.middleware.RequireAuth, h.middleware.RequireAdmin}

	scheduling := h.router.Group("/scheduling", auth...)
	scheduling.Post("/match", h.match)

	clients := h.router.Group("/clients", auth...)
	clients.Post("/", h.createClient)
	clients.Get("/", h.listClients)
}

func (h *SchedulingHandler) match(c *fiber.Ctx) error {
	log := h.log.Function("match")

	var request MatchRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse match request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse match request"})
	}

	matches, err := h.controller.Match(c.Context(), &request)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "matches": matches})
}

func (h *SchedulingHandler) createClient(c *fiber.Ctx) error {
	log := h.log.Function("createClient")

	var request CreateClientRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse client request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse client request"})
	}

	client, err := h.controller.CreateClient(c.Context(), &request)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "client": client})
}

func (h *SchedulingHandler) listClients(c *fiber.Ctx) error {
	clients, err := h.controller.ListClients(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "clients": clients})
}
