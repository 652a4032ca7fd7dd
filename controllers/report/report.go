package reportController

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"ojt/database"
	"ojt/middleware"
	"ojt/models"
	"ojt/utils"
	reportValidator "ojt/validators/report"

	"github.com/gofiber/fiber/v2"
)

// CreateTemplate creates a professor-authored report definition, distinct
// from the student submissions filed against it.
func CreateTemplate(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedTemplate").(*reportValidator.CreateTemplateRequest)

	if !utils.OwnsClassroom(professorID, reqData.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	report := models.Report{
		ClassroomID: reqData.ClassroomID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      models.ReportPending,
		IsTemplate:  true,
	}
	if reqData.DueDate != "" {
		dueDate, _ := time.Parse("2006-01-02", reqData.DueDate)
		report.DueDate = &dueDate
	}

	if err := database.Database.Db.Create(&report).Error; err != nil {
		log.Printf("Error creating report template: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create report template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Report template created successfully!", report)
}

// SubmitReport files a submission against a task. One submission row per
// (student, task): resubmitting updates the row in place and resets it to
// SUBMITTED, unless the previous submission was already approved.
func SubmitReport(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedSubmission").(*reportValidator.SubmitReportRequest)

	if !utils.IsEnrolled(studentID, reqData.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this classroom!", nil)
	}

	var task models.Task
	if err := database.Database.Db.
		Where("id = ? AND classroom_id = ? AND student_id = ?", reqData.TaskID, reqData.ClassroomID, studentID).
		First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	var report models.Report
	err := database.Database.Db.
		Where("student_id = ? AND task_id = ? AND is_template = ?", studentID, reqData.TaskID, false).
		First(&report).Error

	if err == nil {
		if report.Status == models.ReportApproved {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Report has already been approved!", nil)
		}
		report.Description = reqData.Description
		report.SubmissionURL = reqData.SubmissionURL
		report.Status = models.ReportSubmitted
		report.Feedback = ""
		if err := database.Database.Db.Save(&report).Error; err != nil {
			log.Printf("Error resubmitting report: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit report!", nil)
		}
	} else {
		taskID := task.ID
		dueDate := task.DueDate
		report = models.Report{
			ClassroomID:   reqData.ClassroomID,
			StudentID:     studentID,
			TaskID:        &taskID,
			Title:         task.Title,
			Description:   reqData.Description,
			DueDate:       &dueDate,
			Status:        models.ReportSubmitted,
			SubmissionURL: reqData.SubmissionURL,
		}
		if err := database.Database.Db.Create(&report).Error; err != nil {
			log.Printf("Error creating report: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit report!", nil)
		}
	}

	utils.LogActivity(studentID, reqData.ClassroomID, fmt.Sprintf("Submitted report for task %q", task.Title))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Report submitted successfully!", report)
}

// ReviewReport sets the terminal decision on a submission. Feedback is
// required for rejection (enforced by the validator) and optional otherwise.
func ReviewReport(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reportID := uint(c.Locals("reportID").(int))
	reqData := c.Locals("validatedReview").(*reportValidator.ReviewReportRequest)

	var report models.Report
	if err := database.Database.Db.Where("id = ? AND is_template = ?", reportID, false).First(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	if !utils.OwnsClassroom(professorID, report.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	if report.Status == models.ReportApproved || report.Status == models.ReportRejected {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Report has already been reviewed!", nil)
	}

	report.Status = reqData.Decision
	report.Feedback = reqData.Feedback
	if err := database.Database.Db.Save(&report).Error; err != nil {
		log.Printf("Error reviewing report: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review report!", nil)
	}

	utils.LogActivity(professorID, report.ClassroomID, fmt.Sprintf("Reviewed report %q: %s", report.Title, report.Status))

	// Best-effort notification; never fails the review
	var student models.User
	if err := database.Database.Db.Where("id = ?", report.StudentID).First(&student).Error; err == nil {
		utils.SendReportReviewedEmail(student.Email, student.Name, report.Title, report.Status)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report reviewed successfully!", report)
}

// GetReports lists reports. Students see their own submissions plus the
// classroom's templates; professors see everything in a classroom they own.
func GetReports(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	classroomID, err := strconv.Atoi(c.Query("classroom_id"))
	if err != nil || classroomID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid classroom_id query parameter is required!", nil)
	}

	db := database.Database.Db.Model(&models.Report{}).Where("classroom_id = ?", classroomID)

	switch role {
	case models.RoleProfessor, models.RoleAdmin:
		if !utils.OwnsClassroom(userID, uint(classroomID)) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
		}
	default:
		if !utils.IsEnrolled(userID, uint(classroomID)) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this classroom!", nil)
		}
		db = db.Where("student_id = ? OR is_template = ?", userID, true)
	}

	var reports []models.Report
	if err := db.Order("created_at desc").Find(&reports).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reports!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reports fetched successfully!", reports)
}
