// FILE: internal/controller/checkin_controller.go
package controller

import (
	"errors"

	"coaching-dashboard-be/internal/dto"
	"coaching-dashboard-be/internal/pkg/serverutils"
	"coaching-dashboard-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICheckinController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type checkinController struct {
	checkinService service.ICheckinService
}

func NewCheckinController(checkinService service.ICheckinService) ICheckinController {
	return &checkinController{
		checkinService: checkinService,
	}
}

func (c *checkinController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	employees := api.Group("/employees", jwtMiddleware)
	employees.Post("/:id/checkpoints", c.RecordCheckpoint)
	employees.Get("/:id/checkpoints", c.ListCheckpoints)
}

// RecordCheckpoint persists a periodic check-in
// @Summary Record a check-in
// @Description Persists a checkpoint; the number and session count are derived server-side
// @Tags Checkin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} dto.CheckpointResponse
// @Router /api/employees/{id}/checkpoints [post]
func (c *checkinController) RecordCheckpoint(ctx *fiber.Ctx) error {
	employeeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid employee ID"))
	}

	var req dto.RecordCheckpointRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	checkpoint, err := c.checkinService.RecordCheckpoint(ctx.Context(), employeeId, &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.As(err, &validationErrs):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkpoint recorded", checkpoint))
}

// ListCheckpoints returns all recorded check-ins for an employee
// @Summary List checkpoints
// @Tags Checkin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} []dto.CheckpointResponse
// @Router /api/employees/{id}/checkpoints [get]
func (c *checkinController) ListCheckpoints(ctx *fiber.Ctx) error {
	employeeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid employee ID"))
	}

	checkpoints, err := c.checkinService.ListCheckpoints(ctx.Context(), employeeId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkpoints retrieved", checkpoints))
}
