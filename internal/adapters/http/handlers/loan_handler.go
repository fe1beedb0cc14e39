package handlers

import (
	"context"
	"errors"
	"strconv"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/core/services"
	"chamaflow/internal/pkg/pagination"
	"chamaflow/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Request files a new loan request
// @Summary Request a loan
// @Description File a loan request for the calling member; it starts pending
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RequestLoanInput true "Loan request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Request(c *fiber.Ctx) error {
	who, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.RequestLoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loan, err := h.loanService.Request(c.Context(), who, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, domain.ErrInvalidDate):
			return response.BadRequest(c, "Due date must be YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to request loan")
		}
	}

	return response.Created(c, "Loan requested successfully", loan.ToResponse())
}

// Approve approves a pending loan
// @Summary Approve a loan
// @Description Move a pending loan to approved; own loans are refused
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{id}/approve [put]
func (h *LoanHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, h.loanService.Approve, "Loan approved")
}

// Reject rejects a pending loan
// @Summary Reject a loan
// @Description Move a pending loan to rejected; own loans are refused
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{id}/reject [put]
func (h *LoanHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, h.loanService.Reject, "Loan rejected")
}

func (h *LoanHandler) review(
	c *fiber.Ctx,
	decide func(ctx context.Context, reviewer services.Caller, loanID uint) (*models.Loan, error),
	message string,
) error {
	who, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	loanID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := decide(c.Context(), who, uint(loanID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.Is(err, domain.ErrSelfDealing):
			return response.Forbidden(c, "You cannot review your own loan")
		case errors.Is(err, domain.ErrInvalidTransition):
			return response.Conflict(c, "Loan has already been reviewed")
		default:
			return response.InternalServerError(c, "Failed to review loan")
		}
	}

	return response.Success(c, message, loan.ToResponse())
}

// ListMine lists the caller's loans
// @Summary List my loans
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /loans/my [get]
func (h *LoanHandler) ListMine(c *fiber.Ctx) error {
	who, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	loans, err := h.loanService.ListMine(c.Context(), who)
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.Success(c, "Loans retrieved successfully", toLoanResponses(loans))
}

// List lists all loans
// @Summary List all loans
// @Description Paginated list of every loan, for reviewing officials
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	loans, total, err := h.loanService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.Success(c, "Loans retrieved successfully", fiber.Map{
		"loans": toLoanResponses(loans),
		"meta":  pagination.GetMeta(params, total),
	})
}

// Get returns a single loan
// @Summary Get a loan
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /loans/{id} [get]
func (h *LoanHandler) Get(c *fiber.Ctx) error {
	loanID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.Get(c.Context(), uint(loanID))
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			return response.NotFound(c, "Loan not found")
		}
		return response.InternalServerError(c, "Failed to get loan")
	}

	return response.Success(c, "Loan retrieved successfully", loan.ToResponse())
}

func toLoanResponses(loans []*models.Loan) []*models.LoanResponse {
	out := make([]*models.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, loan.ToResponse())
	}
	return out
}
