package details

import (
	"github.com/gofiber/fiber/v2"

	userController "desaku_backend/internals/features/users/user/controller"
	authMiddleware "desaku_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, ctl *userController.UserController) {
	admin := app.Group("/api/users",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyAdmin("manajemen user"),
	)

	admin.Get("/", ctl.List)
	admin.Post("/", ctl.Create)
	admin.Patch("/:id/role", ctl.UpdateRole)
}
