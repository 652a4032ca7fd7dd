package classroomController

import (
	"fmt"
	"log"
	"strings"

	"ojt/database"
	"ojt/middleware"
	"ojt/models"
	"ojt/utils"
	classroomValidator "ojt/validators/classroom"

	"github.com/gofiber/fiber/v2"
)

func CreateClassroom(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedClassroom").(*classroomValidator.CreateClassroomRequest)

	ojtHours := float64(models.DefaultOjtHours)
	if reqData.OjtHours != nil && *reqData.OjtHours > 0 {
		ojtHours = *reqData.OjtHours
	}

	classroom := models.Classroom{
		Name:        reqData.Name,
		Description: reqData.Description,
		ProfessorID: professorID,
		OjtHours:    ojtHours,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&classroom).Error; err != nil {
		log.Printf("Error creating classroom: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create classroom!", nil)
	}

	utils.LogActivity(professorID, classroom.ID, fmt.Sprintf("Created classroom %q", classroom.Name))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Classroom created successfully!", classroom)
}

func UpdateClassroom(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classroomID := uint(c.Locals("classroomID").(int))
	reqData := c.Locals("validatedClassroomUpdate").(*classroomValidator.UpdateClassroomRequest)

	var classroom models.Classroom
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", classroomID, false).First(&classroom).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Classroom not found!", nil)
	}

	if classroom.ProfessorID != professorID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	if reqData.Name != nil {
		classroom.Name = strings.TrimSpace(*reqData.Name)
	}
	if reqData.Description != nil {
		classroom.Description = *reqData.Description
	}
	if reqData.OjtHours != nil && *reqData.OjtHours > 0 {
		classroom.OjtHours = *reqData.OjtHours
	}
	if reqData.IsActive != nil {
		classroom.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&classroom).Error; err != nil {
		log.Printf("Error updating classroom: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update classroom!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classroom updated successfully!", classroom)
}

// DeleteClassroom removes the classroom and its enrollments in one transaction
// so no orphaned enrollment rows survive.
func DeleteClassroom(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classroomID := uint(c.Locals("classroomID").(int))

	var classroom models.Classroom
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", classroomID, false).First(&classroom).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Classroom not found!", nil)
	}

	if classroom.ProfessorID != professorID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	tx := database.Database.Db.Begin()
	if err := tx.Unscoped().Where("classroom_id = ?", classroomID).Delete(&models.Enrollment{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete classroom!", nil)
	}
	if err := tx.Model(&classroom).Updates(map[string]interface{}{"is_deleted": true, "is_active": false, "invite_code": ""}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete classroom!", nil)
	}
	tx.Commit()

	utils.LogActivity(professorID, classroomID, fmt.Sprintf("Deleted classroom %q", classroom.Name))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classroom deleted successfully!", nil)
}

// GetClassrooms lists classrooms scoped by role: professors see the ones they
// own, students the ones they are enrolled in.
func GetClassrooms(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	var classrooms []models.Classroom

	switch role {
	case models.RoleProfessor, models.RoleAdmin:
		if err := database.Database.Db.
			Where("professor_id = ? AND is_deleted = ?", userID, false).
			Order("created_at desc").
			Find(&classrooms).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classrooms!", nil)
		}
	default:
		if err := database.Database.Db.
			Joins("JOIN enrollments ON enrollments.classroom_id = classrooms.id").
			Where("enrollments.student_id = ? AND enrollments.status = ? AND classrooms.is_deleted = ?", userID, models.EnrollmentActive, false).
			Order("classrooms.created_at desc").
			Find(&classrooms).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classrooms!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classrooms fetched successfully!", classrooms)
}

// GenerateInviteCode overwrites the classroom's invite code. The previous
// code stops working immediately.
func GenerateInviteCode(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classroomID := uint(c.Locals("classroomID").(int))

	var classroom models.Classroom
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", classroomID, false).First(&classroom).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Classroom not found!", nil)
	}

	if classroom.ProfessorID != professorID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	code, err := utils.GenerateInviteCode()
	if err != nil {
		log.Printf("Error generating invite code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate invite code!", nil)
	}

	classroom.InviteCode = code
	if err := database.Database.Db.Save(&classroom).Error; err != nil {
		log.Printf("Error saving invite code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate invite code!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite code generated successfully!", fiber.Map{
		"invite_code": code,
	})
}

// JoinClassroom redeems an invite code and enrolls the student. The composite
// unique index on (student_id, classroom_id) closes the double-enrollment
// race; the conflict maps to the same 409 the pre-check produces.
func JoinClassroom(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedJoin").(*classroomValidator.JoinClassroomRequest)

	var classroom models.Classroom
	if err := database.Database.Db.
		Where("invite_code = ? AND is_active = ? AND is_deleted = ?", reqData.Code, true, false).
		First(&classroom).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid invite code!", nil)
	}

	var existing models.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND classroom_id = ?", studentID, classroom.ID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this classroom!", nil)
	}

	enrollment := models.Enrollment{
		StudentID:   studentID,
		ClassroomID: classroom.ID,
		Status:      models.EnrollmentActive,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		// Unique index violation means a concurrent enroll won
		if strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this classroom!", nil)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to join classroom!", nil)
	}
	tx.Commit()

	utils.LogActivity(studentID, classroom.ID, fmt.Sprintf("Joined classroom %q", classroom.Name))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Joined classroom successfully!", fiber.Map{
		"enrollment": enrollment,
		"classroom":  classroom,
	})
}

// GetClassroomStudents returns the roster with per-student progress derived
// from the time-entry ledger.
func GetClassroomStudents(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classroomID := uint(c.Locals("classroomID").(int))

	if !utils.OwnsClassroom(professorID, classroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("classroom_id = ? AND status = ?", classroomID, models.EnrollmentActive).
		Preload("Student").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	students := make([]fiber.Map, 0, len(enrollments))
	for _, enrollment := range enrollments {
		completed, required, pct, err := utils.ComputeProgress(enrollment.StudentID, classroomID)
		if err != nil {
			log.Printf("Error computing progress for student %d: %v", enrollment.StudentID, err)
			continue
		}
		students = append(students, fiber.Map{
			"student_id":          enrollment.StudentID,
			"name":                enrollment.Student.Name,
			"email":               enrollment.Student.Email,
			"enrolled_at":         enrollment.CreatedAt,
			"completed_hours":     completed,
			"required_hours":      required,
			"progress_percentage": pct,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}
