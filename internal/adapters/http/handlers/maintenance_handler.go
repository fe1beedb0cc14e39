package handlers

import (
	"errors"
	"strconv"

	"chamaflow/internal/core/domain"
	"chamaflow/internal/core/services"
	"chamaflow/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MaintenanceHandler handles maintenance request endpoints
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// Report files a maintenance request
// @Summary Report a maintenance issue
// @Tags Maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ReportIssueInput true "Issue"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /maintenance [post]
func (h *MaintenanceHandler) Report(c *fiber.Ctx) error {
	var input services.ReportIssueInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.maintenanceService.Report(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrPropertyNotFound):
			return response.NotFound(c, "Property not found")
		default:
			return response.InternalServerError(c, "Failed to report issue")
		}
	}

	return response.Created(c, "Issue reported successfully", request)
}

// List lists all maintenance requests
// @Summary List maintenance requests
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	requests, err := h.maintenanceService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list requests")
	}

	return response.Success(c, "Requests retrieved successfully", requests)
}

// Resolve closes a maintenance request
// @Summary Resolve a maintenance request
// @Tags Maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body services.ResolveIssueInput true "Resolution"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /maintenance/{id}/resolve [put]
func (h *MaintenanceHandler) Resolve(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var input services.ResolveIssueInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.maintenanceService.Resolve(c.Context(), uint(requestID), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrMaintenanceNotFound):
			return response.NotFound(c, "Maintenance request not found")
		default:
			return response.InternalServerError(c, "Failed to resolve request")
		}
	}

	return response.Success(c, "Request resolved successfully", request)
}
