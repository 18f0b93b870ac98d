package handlers

import (
	"hrm/internal/app"
	lifecycleController "hrm/internal/controllers/lifecycle"
	"hrm/internal/logger"
	. "hrm/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuditLogHandler is the manual admin correction path. Normal audit writes
// only ever happen inside lifecycle transactions.
type AuditLogHandler struct {
	Handler
	lifecycle lifecycleController.LifecycleController
}

func NewAuditLogHandler(app app.App, router fiber.Router) *AuditLogHandler {
	log := logger.New("handlers").File("auditLog_handler")
	return &AuditLogHandler{
		lifecycle: *app.LifecycleController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuditLogHandler) Register() {
	auditLogs := h.router.Group("/audit-logs",
		h.middleware.RequireAuth, h.middleware.RequireAdmin)

	auditLogs.Put("/:id", h.updateEntry)
	auditLogs.Delete("/:id", h.deleteEntry)
}

func (h *AuditLogHandler) updateEntry(c *fiber.Ctx) error {
	log := h.log.Function("updateEntry")

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid audit log id"})
	}

	var request UpdateAuditLogRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse audit log update", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "failed to parse audit log update"})
	}

	entry, err := h.lifecycle.UpdateAuditEntry(c.Context(), id, request.Notes)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "auditLog": entry})
}

func (h *AuditLogHandler) deleteEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid audit log id"})
	}

	if err := h.lifecycle.DeleteAuditEntry(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
