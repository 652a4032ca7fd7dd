package reportRoutes

import (
	reportController "ojt/controllers/report"
	"ojt/middleware"
	"ojt/models"
	reportValidator "ojt/validators/report"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes sets up report templates, submission and review routes
func SetupReportRoutes(app *fiber.App) {
	group := app.Group("/report")

	group.Post("/template", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), reportValidator.CreateTemplate(), reportController.CreateTemplate)
	group.Post("/submit", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), reportValidator.SubmitReport(), reportController.SubmitReport)
	group.Put("/:id/review", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), reportValidator.ReportID(), reportValidator.ReviewReport(), reportController.ReviewReport)
	group.Get("/list", middleware.JWTMiddleware, reportController.GetReports)
}
