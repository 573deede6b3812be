// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	settingsController "desaku_backend/internals/features/settings/controller"
	settingsStore "desaku_backend/internals/features/settings/store"
	submissionController "desaku_backend/internals/features/submissions/controller"
	submissionService "desaku_backend/internals/features/submissions/service"
	templateController "desaku_backend/internals/features/templates/controller"
	templateStore "desaku_backend/internals/features/templates/store"
	uploadController "desaku_backend/internals/features/uploads/controller"
	uploadService "desaku_backend/internals/features/uploads/service"
	authController "desaku_backend/internals/features/users/auth/controller"
	userController "desaku_backend/internals/features/users/user/controller"
	userStore "desaku_backend/internals/features/users/user/store"

	routeDetails "desaku_backend/internals/route/details"
)

// Deps mengemas semua dependensi yang dibutuhkan router.
// Store diisi implementasi memori atau Postgres oleh main.go.
type Deps struct {
	Users       userStore.Store
	Submissions *submissionService.SubmissionService
	Templates   templateStore.Store
	Settings    settingsStore.Store
	Uploads     *uploadService.UploadService
}

func SetupRoutes(app *fiber.App, deps Deps) {
	authCtl := authController.NewAuthController(deps.Users)
	userCtl := userController.NewUserController(deps.Users)
	subCtl := submissionController.NewSubmissionController(deps.Submissions)
	tplCtl := templateController.NewTemplateController(deps.Templates)
	setCtl := settingsController.NewSettingsController(deps.Settings)
	upCtl := uploadController.NewUploadController(deps.Uploads)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, authCtl)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, userCtl)

	log.Println("[INFO] Setting up SubmissionRoutes...")
	routeDetails.SubmissionRoutes(app, subCtl)

	log.Println("[INFO] Setting up TemplateRoutes...")
	routeDetails.TemplateRoutes(app, tplCtl)

	log.Println("[INFO] Setting up SettingsRoutes...")
	routeDetails.SettingsRoutes(app, setCtl)

	log.Println("[INFO] Setting up UploadRoutes...")
	routeDetails.UploadRoutes(app, upCtl)
}
