package details

import (
	"github.com/gofiber/fiber/v2"

	templateController "desaku_backend/internals/features/templates/controller"
	authMiddleware "desaku_backend/internals/middlewares/auth"
)

func TemplateRoutes(app *fiber.App, ctl *templateController.TemplateController) {
	api := app.Group("/api/templates", authMiddleware.AuthMiddleware())

	adminOnly := authMiddleware.OnlyAdmin("pengelolaan template")

	api.Get("/", ctl.List)
	api.Post("/", adminOnly, ctl.Create)
	api.Put("/:id", adminOnly, ctl.Update)
	api.Delete("/:id", adminOnly, ctl.Delete)
}
