package details

import (
	"github.com/gofiber/fiber/v2"

	settingsController "desaku_backend/internals/features/settings/controller"
	authMiddleware "desaku_backend/internals/middlewares/auth"
)

func SettingsRoutes(app *fiber.App, ctl *settingsController.SettingsController) {
	api := app.Group("/api/settings", authMiddleware.AuthMiddleware())

	api.Get("/organization", ctl.Get)
	api.Post("/organization", authMiddleware.OnlyAdmin("pengaturan organisasi"), ctl.Update)
}
