package handlers

import (
	"hrm/internal/app"
	interviewController "hrm/internal/controllers/interviews"
	lifecycleController "hrm/internal/controllers/lifecycle"
	"hrm/internal/logger"
	. "hrm/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	Handler
	controller interviewController.InterviewController
	lifecycle  lifecycleController.LifecycleController
}

func NewInterviewHandler(app app.App, router fiber.Router) *InterviewHandler {
	log := logger.New("handlers").File("interview_handler")
	return &InterviewHandler{
		controller: *app.InterviewController,
		lifecycle:  *app.LifecycleController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *InterviewHandler) Register() {
	interviews := h.router.Group("/interviews",
		h.middleware.RequireAuth, h.middleware.RequireAdmin)

	interviews.Post("/", h.scheduleInterview)
	interviews.Get("/candidate/:id", h.listByCandidate)
	interviews.Patch("/:id/complete", h.completeInterview)
	interviews.Delete("/:id", h.deleteInterview)
}

func (h *InterviewHandler) scheduleInterview(c *fiber.Ctx) error {
	log := h.log.Function("scheduleInterview")

	var request ScheduleInterviewRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse interview request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse interview request"})
	}

	user := c.Locals("user").(User)
	interview, err := h.controller.Schedule(c.Context(), &request, user)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "interview": interview})
}

func (h *InterviewHandler) listByCandidate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid candidate id"})
	}

	interviews, err := h.controller.ListByCandidate(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "interviews": interviews})
}

func (h *InterviewHandler) completeInterview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid interview id"})
	}

	user := c.Locals("user").(User)
	if err := h.lifecycle.CompleteInterview(c.Context(), id, user); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *InterviewHandler) deleteInterview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid interview id"})
	}

	user := c.Locals("user").(User)
	if err := h.lifecycle.DeleteInterview(c.Context(), id, user); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
