package reportValidator

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

type CreateTemplateRequest struct {
	ClassroomID uint   `json:"classroom_id" validate:"required"`
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"max=5000"`
	DueDate     string `json:"due_date"`
}

type SubmitReportRequest struct {
	ClassroomID   uint   `json:"classroom_id" validate:"required"`
	TaskID        uint   `json:"task_id" validate:"required"`
	Description   string `json:"description" validate:"max=5000"`
	SubmissionURL string `json:"submission_url" validate:"omitempty,url"`
}

type ReviewReportRequest struct {
	Decision string `json:"decision"`
	Feedback string `json:"feedback"`
}

func CreateTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTemplateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		if reqData.DueDate != "" {
			if _, err := time.Parse("2006-01-02", reqData.DueDate); err != nil {
				errors["due_date"] = "Due date must be in YYYY-MM-DD format!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTemplate", reqData)
		return c.Next()
	}
}

func SubmitReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitReportRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// ReviewReport enforces the decision set and requires feedback on rejection.
func ReviewReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewReportRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Decision {
		case models.ReportApproved, models.ReportRejected:
		default:
			errors["decision"] = "Decision must be APPROVED or REJECTED!"
		}

		if reqData.Decision == models.ReportRejected && strings.TrimSpace(reqData.Feedback) == "" {
			errors["feedback"] = "Feedback is required when rejecting a report!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// ReportID validates the :id path param and stashes it in Locals.
func ReportID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Report ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Report ID!", nil)
		}

		c.Locals("reportID", id)
		return c.Next()
	}
}
