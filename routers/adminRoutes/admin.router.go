package adminRoutes

import (
	adminController "ojt/controllers/admin"
	"ojt/middleware"
	"ojt/models"
	adminValidator "ojt/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up admin-only user management routes
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	group.Get("/users", adminController.GetUsers)
	group.Put("/users/:id/role", adminValidator.UserID(), adminValidator.UpdateRole(), adminController.UpdateUserRole)
	group.Post("/invite", adminValidator.InviteUser(), adminController.InviteUser)
}
