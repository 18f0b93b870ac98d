package handlers

import (
	"hrm/internal/app"
	candidateController "hrm/internal/controllers/candidates"
	lifecycleController "hrm/internal/controllers/lifecycle"
	"hrm/internal/logger"
	. "hrm/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	Handler
	controller candidateController.CandidateController
	lifecycle  lifecycleController.LifecycleController
}

func NewCandidateHandler(app app.App, router fiber.Router) *CandidateHandler {
	log := logger.New("handlers").File("candidate_handler")
	return &CandidateHandler{
		controller: *app.CandidateController,
		lifecycle:  *app.LifecycleController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *CandidateHandler) Register() {
	candidates := h.router.Group("/candidates",
		h.middleware.RequireAuth, h.middleware.RequireAdmin)

	candidates.Get("/", h.listCandidates)
	candidates.Post("/", h.createCandidate)
	candidates.Get("/:id", h.getCandidate)
	candidates.Put("/:id", h.updateCandidate)
	candidates.Delete("/:id", h.deleteCandidate)
	candidates.Patch("/:id/status", h.updateStatus)
	candidates.Post("/:id/reject", h.rejectCandidate)
	candidates.Get("/:id/audit-logs", h.getAuditTrail)
}

func (h *CandidateHandler) listCandidates(c *fiber.Ctx) error {
	candidates, err := h.controller.List(c.Context(), CandidateStatus(c.Query("status")))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "candidates": candidates})
}

func (h *CandidateHandler) createCandidate(c *fiber.Ctx) error {
	log := h.log.Function("createCandidate")

	var request CreateCandidateRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse candidate request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse candidate request"})
	}

	candidate, err := h.controller.Intake(c.Context(), &request)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "candidate": candidate})
}

func (h *CandidateHandler) getCandidate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid candidate id"})
	}

	candidate, err := h.controller.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "candidate": candidate})
}

func (h *CandidateHandler) updateCandidate(c *fiber.Ctx) error {
	log := h.log.Function("updateCandidate")

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid candidate id"})
	}

	var request UpdateCandidateRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse candidate update", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse candidate update"})
	}

	candidate, err := h.controller.UpdateContact(c.Context(), id, &request)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "candidate": candidate})
}

func (h *CandidateHandler) deleteCandidate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid candidate id"})
	}

	user := c.Locals("user").(User)
	if err := h.lifecycle.DeleteCandidate(c.Context(), id, user); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *CandidateHandler) updateStatus(c *fiber.Ctx) error {
	log := h.log.Function("updateStatus")

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid candidate id"})
	}

	var request UpdateStatusRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse status request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse status request"})
	}

	user := c.Locals("user").(User)
	final, err := h.lifecycle.SetStatus(c.Context(), id, request.Status, user)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"status": final})
}

func (h *CandidateHandler) rejectCandidate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid candidate id"})
	}

	user := c.Locals("user").(User)
	if err := h.lifecycle.Reject(c.Context(), id, user); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *CandidateHandler) getAuditTrail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid candidate id"})
	}

	entries, err := h.lifecycle.GetAuditTrail(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "auditLogs": entries})
}
