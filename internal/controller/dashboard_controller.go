// FILE: internal/controller/dashboard_controller.go
// Read endpoints for the coaching dashboard.
package controller

import (
	"coaching-dashboard-be/internal/pkg/serverutils"
	"coaching-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDashboardController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{
		dashboardService: dashboardService,
	}
}

func (c *dashboardController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	employees := api.Group("/employees", jwtMiddleware)
	employees.Get("/:id/coaching-state", c.GetCoachingState)
	employees.Get("/:id/checkpoint-status", c.GetCheckpointStatus)
	employees.Get("/:id/sessions", c.GetSessions)
}

// GetCoachingState returns the classified lifecycle state with every derived fact
// @Summary Get coaching state
// @Description Returns the classified lifecycle state plus derived session facts for an employee
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CoachingStateResponse
// @Router /api/employees/{id}/coaching-state [get]
func (c *dashboardController) GetCoachingState(ctx *fiber.Ctx) error {
	employeeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid employee ID"))
	}

	state, err := c.dashboardService.GetCoachingState(ctx.Context(), employeeId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Coaching state retrieved", state))
}

// GetCheckpointStatus returns the periodic check-in schedule position
// @Summary Get checkpoint status
// @Description Returns the current checkpoint number and whether a new check-in is due
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CheckpointStatusResponse
// @Router /api/employees/{id}/checkpoint-status [get]
func (c *dashboardController) GetCheckpointStatus(ctx *fiber.Ctx) error {
	employeeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid employee ID"))
	}

	status, err := c.dashboardService.GetCheckpointStatus(ctx.Context(), employeeId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkpoint status retrieved", status))
}

// GetSessions returns the full session history
// @Summary Get session history
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} []dto.SessionResponse
// @Router /api/employees/{id}/sessions [get]
func (c *dashboardController) GetSessions(ctx *fiber.Ctx) error {
	employeeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid employee ID"))
	}

	sessions, err := c.dashboardService.GetSessions(ctx.Context(), employeeId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Sessions retrieved", sessions))
}
