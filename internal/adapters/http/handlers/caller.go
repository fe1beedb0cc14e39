package handlers

import (
	"github.com/gofiber/fiber/v2"

	"chamaflow/internal/core/domain"
	"chamaflow/internal/core/services"
)

// caller rebuilds the authenticated identity stored in locals by the
// auth middleware.
func caller(c *fiber.Ctx) (services.Caller, bool) {
	userID, uok := c.Locals("userID").(uint)
	personID, pok := c.Locals("personID").(uint)
	roleName, rok := c.Locals("role").(string)
	if !uok || !pok || !rok {
		return services.Caller{}, false
	}
	role, ok := domain.RoleFromName(roleName)
	if !ok {
		return services.Caller{}, false
	}
	return services.Caller{UserID: userID, PersonID: personID, Role: role}, true
}
