package timeEntryRoutes

import (
	timeEntryController "ojt/controllers/timeentry"
	"ojt/middleware"
	"ojt/models"
	timeEntryValidator "ojt/validators/timeentry"

	"github.com/gofiber/fiber/v2"
)

// SetupTimeEntryRoutes sets up the work-hours ledger and progress routes
func SetupTimeEntryRoutes(app *fiber.App) {
	group := app.Group("/time-entry")

	group.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), timeEntryValidator.CreateTimeEntry(), timeEntryController.CreateTimeEntry)
	group.Get("/list", middleware.JWTMiddleware, timeEntryValidator.ClassroomQuery(), timeEntryController.GetTimeEntries)
	group.Get("/progress", middleware.JWTMiddleware, timeEntryValidator.ClassroomQuery(), timeEntryController.GetProgress)

	group.Put("/:id/approve", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), timeEntryValidator.TimeEntryID(), timeEntryController.ApproveTimeEntry)
	group.Delete("/:id/reject", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), timeEntryValidator.TimeEntryID(), timeEntryController.RejectTimeEntry)
}
