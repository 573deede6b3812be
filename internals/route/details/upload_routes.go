package details

import (
	"github.com/gofiber/fiber/v2"

	uploadController "desaku_backend/internals/features/uploads/controller"
	authMiddleware "desaku_backend/internals/middlewares/auth"
)

func UploadRoutes(app *fiber.App, ctl *uploadController.UploadController) {
	app.Post("/api/upload", authMiddleware.AuthMiddleware(), ctl.Upload)

	// berkas hanya bisa diunduh setelah login
	app.Get("/uploads/:filename", authMiddleware.AuthMiddleware(), ctl.Serve)
}
