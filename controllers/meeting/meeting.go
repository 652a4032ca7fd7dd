package meetingController

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"ojt/database"
	"ojt/middleware"
	"ojt/models"
	"ojt/utils"
	meetingValidator "ojt/validators/meeting"

	"github.com/gofiber/fiber/v2"
)

func CreateMeeting(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedMeeting").(*meetingValidator.CreateMeetingRequest)

	if !utils.OwnsClassroom(professorID, reqData.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	date, _ := time.Parse("2006-01-02", reqData.Date)

	meeting := models.Meeting{
		ClassroomID: reqData.ClassroomID,
		Title:       reqData.Title,
		Date:        date,
		Time:        reqData.Time,
		MeetingURL:  reqData.MeetingURL,
	}

	if err := database.Database.Db.Create(&meeting).Error; err != nil {
		log.Printf("Error creating meeting: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule meeting!", nil)
	}

	utils.LogActivity(professorID, meeting.ClassroomID, fmt.Sprintf("Scheduled meeting %q for %s", meeting.Title, reqData.Date))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Meeting scheduled successfully!", meeting)
}

func GetMeetings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	classroomID, err := strconv.Atoi(c.Query("classroom_id"))
	if err != nil || classroomID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid classroom_id query parameter is required!", nil)
	}

	switch role {
	case models.RoleProfessor, models.RoleAdmin:
		if !utils.OwnsClassroom(userID, uint(classroomID)) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
		}
	default:
		if !utils.IsEnrolled(userID, uint(classroomID)) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this classroom!", nil)
		}
	}

	var meetings []models.Meeting
	if err := database.Database.Db.
		Where("classroom_id = ?", classroomID).
		Order("date asc").
		Find(&meetings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch meetings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Meetings fetched successfully!", meetings)
}

func DeleteMeeting(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	meetingID := uint(c.Locals("meetingID").(int))

	var meeting models.Meeting
	if err := database.Database.Db.Where("id = ?", meetingID).First(&meeting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Meeting not found!", nil)
	}

	if !utils.OwnsClassroom(professorID, meeting.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	if err := database.Database.Db.Delete(&meeting).Error; err != nil {
		log.Printf("Error deleting meeting: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete meeting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Meeting deleted successfully!", nil)
}
