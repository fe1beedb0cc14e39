package handlers

import (
	"errors"
	"strconv"

	"chamaflow/internal/core/domain"
	"chamaflow/internal/core/services"
	"chamaflow/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles financial report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns group-wide totals
// @Summary Group financial summary
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.reportService.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build summary")
	}

	return response.Success(c, "Summary retrieved successfully", summary)
}

// Member returns one member's financial statement
// @Summary Member statement
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param person_id path int true "Person ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/members/{person_id} [get]
func (h *ReportHandler) Member(c *fiber.Ctx) error {
	personID, err := strconv.ParseUint(c.Params("person_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid person ID")
	}

	statement, err := h.reportService.MemberReport(c.Context(), uint(personID))
	if err != nil {
		if errors.Is(err, domain.ErrPersonNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to build statement")
	}

	return response.Success(c, "Statement retrieved successfully", statement)
}

// Income returns income by source
// @Summary Income report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/income [get]
func (h *ReportHandler) Income(c *fiber.Ctx) error {
	income, err := h.reportService.Income(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build income report")
	}

	return response.Success(c, "Income retrieved successfully", income)
}
