package taskRoutes

import (
	taskController "ojt/controllers/task"
	"ojt/middleware"
	"ojt/models"
	taskValidator "ojt/validators/task"

	"github.com/gofiber/fiber/v2"
)

// SetupTaskRoutes sets up task assignment and status routes
func SetupTaskRoutes(app *fiber.App) {
	group := app.Group("/task")

	group.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), taskValidator.AssignTask(), taskController.AssignTask)
	group.Get("/list", middleware.JWTMiddleware, taskController.GetTasks)
	group.Put("/:id/status", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), taskValidator.TaskID(), taskValidator.UpdateTaskStatus(), taskController.UpdateTaskStatus)
}
