package auth

import (
	"github.com/gofiber/fiber/v2"

	"desaku_backend/internals/constants"
)

// OnlyRoles menolak request yang role-nya tidak ada di daftar.
// Pasang SETELAH AuthMiddleware, karena membaca Locals("role").
func OnlyRoles(message string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}

// OnlyAdmin: jalur khusus administrator desa.
func OnlyAdmin(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorAdmin(feature), constants.RoleAdmin)
}
