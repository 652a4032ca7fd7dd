package authRoutes

import (
	authController "ojt/controllers/auth"
	"ojt/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup, login and identity routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authController.Signup)
	authGroup.Post("/login", authController.Login)
	authGroup.Post("/accept-invite", authController.AcceptInvite)

	authGroup.Post("/select-role", middleware.JWTMiddleware, authController.SelectRole)
	authGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
}
