package handlers

import (
	"errors"
	"strconv"

	"chamaflow/internal/core/domain"
	"chamaflow/internal/core/services"
	"chamaflow/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MeetingHandler handles meeting and minutes endpoints
type MeetingHandler struct {
	meetingService *services.MeetingService
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

// Create schedules a meeting
// @Summary Schedule a meeting
// @Description Schedule a meeting and announce it to all members
// @Tags Meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateMeetingInput true "Meeting"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /meetings [post]
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	who, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateMeetingInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	meeting, err := h.meetingService.Create(c.Context(), who, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrInvalidDate):
			return response.BadRequest(c, "Date must be YYYY-MM-DD HH:MM")
		default:
			return response.InternalServerError(c, "Failed to schedule meeting")
		}
	}

	return response.Created(c, "Meeting scheduled successfully", meeting)
}

// ListUpcoming lists upcoming meetings
// @Summary List upcoming meetings
// @Tags Meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /meetings [get]
func (h *MeetingHandler) ListUpcoming(c *fiber.Ctx) error {
	meetings, err := h.meetingService.ListUpcoming(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list meetings")
	}

	return response.Success(c, "Meetings retrieved successfully", meetings)
}

// AddMinutes records minutes for a meeting
// @Summary Record meeting minutes
// @Description Attach minutes to a meeting and announce their availability
// @Tags Meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting ID"
// @Param body body services.AddMinutesInput true "Minutes"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /meetings/{id}/minutes [post]
func (h *MeetingHandler) AddMinutes(c *fiber.Ctx) error {
	who, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	meetingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid meeting ID")
	}

	var input services.AddMinutesInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	minute, err := h.meetingService.AddMinutes(c.Context(), who, uint(meetingID), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrMeetingNotFound):
			return response.NotFound(c, "Meeting not found")
		default:
			return response.InternalServerError(c, "Failed to record minutes")
		}
	}

	return response.Created(c, "Minutes recorded successfully", minute)
}

// ListMinutes lists the minutes for a meeting
// @Summary List meeting minutes
// @Tags Meetings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /meetings/{id}/minutes [get]
func (h *MeetingHandler) ListMinutes(c *fiber.Ctx) error {
	meetingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid meeting ID")
	}

	minutes, err := h.meetingService.ListMinutes(c.Context(), uint(meetingID))
	if err != nil {
		if errors.Is(err, domain.ErrMeetingNotFound) {
			return response.NotFound(c, "Meeting not found")
		}
		return response.InternalServerError(c, "Failed to list minutes")
	}

	return response.Success(c, "Minutes retrieved successfully", minutes)
}
