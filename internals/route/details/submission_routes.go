package details

import (
	"github.com/gofiber/fiber/v2"

	submissionController "desaku_backend/internals/features/submissions/controller"
	authMiddleware "desaku_backend/internals/middlewares/auth"
)

func SubmissionRoutes(app *fiber.App, ctl *submissionController.SubmissionController) {
	api := app.Group("/api/submissions", authMiddleware.AuthMiddleware())

	adminOnly := authMiddleware.OnlyAdmin("pengelolaan pengajuan")

	api.Post("/", ctl.Create)
	api.Get("/", adminOnly, ctl.ListAll)
	// urutan penting: /user harus terdaftar sebelum /:id
	api.Get("/user", ctl.ListOwn)
	api.Get("/:id", ctl.Get)
	// service juga memeriksa role; middleware di sini memangkas request lebih awal
	api.Patch("/:id", adminOnly, ctl.Update)
}
