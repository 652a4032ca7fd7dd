package taskController

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"ojt/database"
	"ojt/middleware"
	"ojt/models"
	"ojt/utils"
	taskValidator "ojt/validators/task"

	"github.com/gofiber/fiber/v2"
)

// AssignTask creates tasks for one student or fans out over every currently
// enrolled student. Students who enroll later do not receive the task.
func AssignTask(c *fiber.Ctx) error {
	professorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedTask").(*taskValidator.AssignTaskRequest)

	if !utils.OwnsClassroom(professorID, reqData.ClassroomID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
	}

	dueDate, _ := time.Parse("2006-01-02", reqData.DueDate)

	var targetIDs []uint
	if reqData.StudentID != nil {
		if !utils.IsEnrolled(*reqData.StudentID, reqData.ClassroomID) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Student is not enrolled in this classroom!", nil)
		}
		targetIDs = []uint{*reqData.StudentID}
	} else {
		if err := database.Database.Db.Model(&models.Enrollment{}).
			Where("classroom_id = ? AND status = ?", reqData.ClassroomID, models.EnrollmentActive).
			Pluck("student_id", &targetIDs).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled students!", nil)
		}
		if len(targetIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "No students are enrolled in this classroom!", nil)
		}
	}

	tasks := make([]models.Task, 0, len(targetIDs))
	for _, studentID := range targetIDs {
		tasks = append(tasks, models.Task{
			ClassroomID: reqData.ClassroomID,
			StudentID:   studentID,
			Title:       reqData.Title,
			Description: reqData.Description,
			DueDate:     dueDate,
			Status:      models.TaskPending,
			Priority:    reqData.Priority,
		})
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&tasks).Error; err != nil {
		tx.Rollback()
		log.Printf("Error assigning tasks: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign task!", nil)
	}
	tx.Commit()

	utils.LogActivity(professorID, reqData.ClassroomID, fmt.Sprintf("Assigned task %q to %d student(s)", reqData.Title, len(tasks)))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task assigned successfully!", fiber.Map{
		"assigned_count": len(tasks),
		"tasks":          tasks,
	})
}

// GetTasks lists tasks. Students see their own across classrooms (or one
// classroom via classroom_id); professors see a classroom they own.
func GetTasks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	db := database.Database.Db.Model(&models.Task{})

	switch role {
	case models.RoleProfessor, models.RoleAdmin:
		classroomID, err := strconv.Atoi(c.Query("classroom_id"))
		if err != nil || classroomID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid classroom_id query parameter is required!", nil)
		}
		if !utils.OwnsClassroom(userID, uint(classroomID)) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this classroom!", nil)
		}
		db = db.Where("classroom_id = ?", classroomID)
	default:
		db = db.Where("student_id = ?", userID)
		if s := c.Query("classroom_id"); s != "" {
			classroomID, err := strconv.Atoi(s)
			if err != nil || classroomID <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid classroom_id!", nil)
			}
			db = db.Where("classroom_id = ?", classroomID)
		}
	}

	var tasks []models.Task
	if err := db.Order("due_date asc").Find(&tasks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tasks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tasks fetched successfully!", tasks)
}

// UpdateTaskStatus lets the assigned student move a task forward. OVERDUE is
// only ever set by the daily sweep; COMPLETED is terminal.
func UpdateTaskStatus(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	taskID := uint(c.Locals("taskID").(int))
	reqData := c.Locals("validatedTaskStatus").(*taskValidator.UpdateTaskStatusRequest)

	var task models.Task
	if err := database.Database.Db.Where("id = ? AND student_id = ?", taskID, studentID).First(&task).Error; err != nil {
		// Not found and not-yours collapse into the same message
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	if task.Status == models.TaskCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Task is already completed!", nil)
	}

	task.Status = reqData.Status
	if err := database.Database.Db.Save(&task).Error; err != nil {
		log.Printf("Error updating task status: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update task!", nil)
	}

	if task.Status == models.TaskCompleted {
		utils.LogActivity(studentID, task.ClassroomID, fmt.Sprintf("Completed task %q", task.Title))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task updated successfully!", task)
}
