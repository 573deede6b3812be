package details

import (
	"github.com/gofiber/fiber/v2"

	authController "desaku_backend/internals/features/users/auth/controller"
	"desaku_backend/internals/middlewares"
	authMiddleware "desaku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, ctl *authController.AuthController) {
	api := app.Group("/api")

	api.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/logout", ctl.Logout)

	// profil sendiri: wajib login
	me := api.Group("/user", authMiddleware.AuthMiddleware())
	me.Get("/", ctl.Me)
	me.Patch("/profile", ctl.UpdateProfile)
	me.Post("/change-password", ctl.ChangePassword)
}
