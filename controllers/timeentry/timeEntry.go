package timeEntryController

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"ojt/database"
	"ojt/middleware"
	"ojt/models"
	"ojt/utils"
	timeEntryValidator "ojt/validators/timeentry"

	"github.com/gofiber/fiber/v2"
)

// CreateTimeEntry logs a work session for an enrolled student. Entries are
// always created unapproved; only a professor approval makes them count.
func CreateTimeEntry(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedTimeEntry").(*timeEntryValidator.CreateTimeEntryRequest)

	if !utils.IsEnrolled(studentID, reqData.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this classroom!", nil)
	}

	date, _ := time.Parse("2006-01-02", reqData.Date)

	var hours float64
	if reqData.Hours != nil {
		hours = *reqData.Hours
	} else {
		derived, err := utils.DeriveHours(reqData.TimeIn, reqData.TimeOut, reqData.BreakMinutes)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		hours = derived
	}

	entry := models.TimeEntry{
		StudentID:    studentID,
		ClassroomID:  reqData.ClassroomID,
		Date:         date,
		Hours:        hours,
		TimeIn:       reqData.TimeIn,
		TimeOut:      reqData.TimeOut,
		BreakMinutes: reqData.BreakMinutes,
		Description:  reqData.Description,
		IsApproved:   false,
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error creating time entry: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log time entry!", nil)
	}

	utils.LogActivity(studentID, entry.ClassroomID, fmt.Sprintf("Logged %.1f hours for %s", hours, reqData.Date))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Time entry logged successfully!", entry)
}

// ApproveTimeEntry marks an entry approved. Re-approving an already-approved
// entry is a no-op.
func ApproveTimeEntry(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	entryID := uint(c.Locals("timeEntryID").(int))

	var entry models.TimeEntry
	if err := database.Database.Db.Where("id = ?", entryID).First(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Time entry not found!", nil)
	}

	if !utils.OwnsClassroom(professorID, entry.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	if !entry.IsApproved {
		entry.IsApproved = true
		if err := database.Database.Db.Save(&entry).Error; err != nil {
			log.Printf("Error approving time entry: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve time entry!", nil)
		}
		utils.LogActivity(professorID, entry.ClassroomID, fmt.Sprintf("Approved %.1f hours for student %d", entry.Hours, entry.StudentID))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Time entry approved!", entry)
}

// RejectTimeEntry permanently deletes the entry. Rejection is destructive and
// irreversible; there is no rejected flag to flip back.
func RejectTimeEntry(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	entryID := uint(c.Locals("timeEntryID").(int))

	var entry models.TimeEntry
	if err := database.Database.Db.Where("id = ?", entryID).First(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Time entry not found!", nil)
	}

	if !utils.OwnsClassroom(professorID, entry.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&entry).Error; err != nil {
		log.Printf("Error rejecting time entry: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject time entry!", nil)
	}

	utils.LogActivity(professorID, entry.ClassroomID, fmt.Sprintf("Rejected %.1f hours for student %d", entry.Hours, entry.StudentID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Time entry rejected and removed!", nil)
}

// GetTimeEntries lists entries for a classroom. Students see their own;
// professors see the whole classroom, optionally only pending ones.
func GetTimeEntries(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	classroomID := uint(c.Locals("classroomID").(int))

	db := database.Database.Db.Model(&models.TimeEntry{}).Where("classroom_id = ?", classroomID)

	switch role {
	case models.RoleProfessor, models.RoleAdmin:
		if !utils.OwnsClassroom(userID, classroomID) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
		}
		if c.Query("pending") == "true" {
			db = db.Where("is_approved = ?", false)
		}
	default:
		if !utils.IsEnrolled(userID, classroomID) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this classroom!", nil)
		}
		db = db.Where("student_id = ?", userID)
	}

	var entries []models.TimeEntry
	if err := db.Order("date desc, created_at desc").Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch time entries!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Time entries fetched successfully!", entries)
}

// GetProgress returns completed hours, the requirement and the clamped
// percentage for a (student, classroom) pair. Students may only query
// themselves; professors must own the classroom.
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	classroomID := uint(c.Locals("classroomID").(int))

	studentID := userID
	if s := c.Query("student_id"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student_id!", nil)
		}
		studentID = uint(parsed)
	}

	switch role {
	case models.RoleProfessor, models.RoleAdmin:
		if !utils.OwnsClassroom(userID, classroomID) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
		}
	default:
		if studentID != userID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own progress!", nil)
		}
		if !utils.IsEnrolled(userID, classroomID) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this classroom!", nil)
		}
	}

	completed, required, pct, err := utils.ComputeProgress(studentID, classroomID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Classroom not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"completed_hours":     completed,
		"required_hours":      required,
		"progress_percentage": pct,
	})
}
