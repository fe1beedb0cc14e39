package handlers

import (
	"errors"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/core/services"
	"chamaflow/internal/pkg/pagination"
	"chamaflow/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContributionHandler handles contribution endpoints
type ContributionHandler struct {
	contributionService *services.ContributionService
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(contributionService *services.ContributionService) *ContributionHandler {
	return &ContributionHandler{contributionService: contributionService}
}

// Submit records a contribution
// @Summary Submit a contribution
// @Description Record a savings contribution for the calling member
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SubmitContributionInput true "Contribution"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contributions [post]
func (h *ContributionHandler) Submit(c *fiber.Ctx) error {
	who, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.SubmitContributionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contribution, err := h.contributionService.Submit(c.Context(), who, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, domain.ErrInvalidDate):
			return response.BadRequest(c, "Date must be YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to record contribution")
		}
	}

	return response.Created(c, "Contribution recorded successfully", contribution.ToResponse())
}

// ListMine lists the caller's contributions
// @Summary List my contributions
// @Tags Contributions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /contributions/my [get]
func (h *ContributionHandler) ListMine(c *fiber.Ctx) error {
	who, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	contributions, err := h.contributionService.ListMine(c.Context(), who)
	if err != nil {
		return response.InternalServerError(c, "Failed to list contributions")
	}

	return response.Success(c, "Contributions retrieved successfully", toContributionResponses(contributions))
}

// List lists all contributions
// @Summary List all contributions
// @Description Paginated list of every contribution, for officials
// @Tags Contributions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /contributions [get]
func (h *ContributionHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	contributions, total, err := h.contributionService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list contributions")
	}

	return response.Success(c, "Contributions retrieved successfully", fiber.Map{
		"contributions": toContributionResponses(contributions),
		"meta":          pagination.GetMeta(params, total),
	})
}

func toContributionResponses(contributions []*models.Contribution) []*models.ContributionResponse {
	out := make([]*models.ContributionResponse, 0, len(contributions))
	for _, contribution := range contributions {
		out = append(out, contribution.ToResponse())
	}
	return out
}
