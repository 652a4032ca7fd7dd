package meetingRoutes

import (
	meetingController "ojt/controllers/meeting"
	"ojt/middleware"
	"ojt/models"
	meetingValidator "ojt/validators/meeting"

	"github.com/gofiber/fiber/v2"
)

// SetupMeetingRoutes sets up meeting scheduling routes
func SetupMeetingRoutes(app *fiber.App) {
	group := app.Group("/meeting")

	group.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), meetingValidator.CreateMeeting(), meetingController.CreateMeeting)
	group.Get("/list", middleware.JWTMiddleware, meetingController.GetMeetings)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProfessor), meetingValidator.MeetingID(), meetingController.DeleteMeeting)
}
