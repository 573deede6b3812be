package helper

import (
	"github.com/gofiber/fiber/v2"

	"desaku_backend/internals/features/authz"
)

// ActorFromContext membaca identitas yang disimpan AuthMiddleware di Locals.
// Mengembalikan Actor kosong (anonim) kalau request lolos tanpa middleware auth.
func ActorFromContext(c *fiber.Ctx) authz.Actor {
	actor := authz.Actor{}

	if v, ok := c.Locals("user_id").(uint); ok {
		actor.ID = v
	}
	if v, ok := c.Locals("user_name").(string); ok {
		actor.Username = v
	}
	if v, ok := c.Locals("role").(string); ok {
		actor.Role = v
	}
	return actor
}
