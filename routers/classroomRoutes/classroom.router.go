package classroomRoutes

import (
	classroomController "ojt/controllers/classroom"
	"ojt/middleware"
	"ojt/models"
	classroomValidator "ojt/validators/classroom"

	"github.com/gofiber/fiber/v2"
)

// SetupClassroomRoutes sets up classroom CRUD, invite codes and enrollment
func SetupClassroomRoutes(app *fiber.App) {
	group := app.Group("/classroom")

	group.Get("/list", middleware.JWTMiddleware, classroomController.GetClassrooms)

	// Invite-code self-enrollment
	group.Put("/join", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), classroomValidator.JoinClassroom(), classroomController.JoinClassroom)

	// Professor-owned management
	group.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), classroomValidator.CreateClassroom(), classroomController.CreateClassroom)
	group.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), classroomValidator.ClassroomID(), classroomValidator.UpdateClassroom(), classroomController.UpdateClassroom)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), classroomValidator.ClassroomID(), classroomController.DeleteClassroom)
	group.Post("/:id/invite-code", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), classroomValidator.ClassroomID(), classroomController.GenerateInviteCode)
	group.Get("/:id/students", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), classroomValidator.ClassroomID(), classroomController.GetClassroomStudents)
}
