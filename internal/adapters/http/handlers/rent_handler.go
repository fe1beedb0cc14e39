package handlers

import (
	"errors"
	"strconv"

	"chamaflow/internal/core/domain"
	"chamaflow/internal/core/services"
	"chamaflow/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RentHandler handles property and rent endpoints
type RentHandler struct {
	rentService *services.RentService
}

// NewRentHandler creates a new rent handler
func NewRentHandler(rentService *services.RentService) *RentHandler {
	return &RentHandler{rentService: rentService}
}

// AddProperty registers a rental property
// @Summary Add a property
// @Tags Rent
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AddPropertyInput true "Property"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /properties [post]
func (h *RentHandler) AddProperty(c *fiber.Ctx) error {
	var input services.AddPropertyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	property, err := h.rentService.AddProperty(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Monthly rent must be a positive number")
		default:
			return response.InternalServerError(c, "Failed to add property")
		}
	}

	return response.Created(c, "Property added successfully", property)
}

// ListProperties lists all properties
// @Summary List properties
// @Tags Rent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /properties [get]
func (h *RentHandler) ListProperties(c *fiber.Ctx) error {
	properties, err := h.rentService.ListProperties(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list properties")
	}

	return response.Success(c, "Properties retrieved successfully", properties)
}

// RecordPayment records rent received for a property
// @Summary Record a rent payment
// @Tags Rent
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param body body services.RecordRentPaymentInput true "Payment"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id}/payments [post]
func (h *RentHandler) RecordPayment(c *fiber.Ctx) error {
	propertyID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid property ID")
	}

	var input services.RecordRentPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	payment, err := h.rentService.RecordPayment(c.Context(), uint(propertyID), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, domain.ErrInvalidDate):
			return response.BadRequest(c, "Payment date must be YYYY-MM-DD")
		case errors.Is(err, domain.ErrPropertyNotFound):
			return response.NotFound(c, "Property not found")
		default:
			return response.InternalServerError(c, "Failed to record payment")
		}
	}

	return response.Created(c, "Payment recorded successfully", payment)
}

// ListPayments lists a property's rent payments
// @Summary List rent payments
// @Tags Rent
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id}/payments [get]
func (h *RentHandler) ListPayments(c *fiber.Ctx) error {
	propertyID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid property ID")
	}

	payments, err := h.rentService.ListPayments(c.Context(), uint(propertyID))
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return response.NotFound(c, "Property not found")
		}
		return response.InternalServerError(c, "Failed to list payments")
	}

	return response.Success(c, "Payments retrieved successfully", payments)
}
