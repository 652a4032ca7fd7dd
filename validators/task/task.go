package taskValidator

import (
	"strconv"
	"strings"
	"time"

	"ojt/middleware"
	"ojt/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AssignTaskRequest struct {
	ClassroomID uint   `json:"classroom_id" validate:"required"`
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"max=5000"`
	DueDate     string `json:"due_date" validate:"required"`
	Priority    string `json:"priority"`
	StudentID   *uint  `json:"student_id"` // nil means assign to all enrolled students
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

func AssignTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignTaskRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		if _, err := time.Parse("2006-01-02", reqData.DueDate); err != nil {
			errors["due_date"] = "Due date must be in YYYY-MM-DD format!"
		}

		if reqData.Priority == "" {
			reqData.Priority = models.PriorityMedium
		}
		switch reqData.Priority {
		case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		default:
			errors["priority"] = "Priority must be LOW, MEDIUM or HIGH!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTask", reqData)
		return c.Next()
	}
}

func UpdateTaskStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateTaskStatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Status {
		case models.TaskInProgress, models.TaskCompleted:
		default:
			errors["status"] = "Status must be IN_PROGRESS or COMPLETED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTaskStatus", reqData)
		return c.Next()
	}
}

// TaskID validates the :id path param and stashes it in Locals.
func TaskID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Task ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Task ID!", nil)
		}

		c.Locals("taskID", id)
		return c.Next()
	}
}
