package meetingValidator

import (
	"strconv"
	"strings"
	"time"

	"ojt/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateMeetingRequest struct {
	ClassroomID uint   `json:"classroom_id" validate:"required"`
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	MeetingURL  string `json:"meeting_url" validate:"omitempty,url"`
}

func CreateMeeting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateMeetingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		if _, err := time.Parse("2006-01-02", reqData.Date); err != nil {
			errors["date"] = "Date must be in YYYY-MM-DD format!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMeeting", reqData)
		return c.Next()
	}
}

// MeetingID validates the :id path param and stashes it in Locals.
func MeetingID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Meeting ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Meeting ID!", nil)
		}

		c.Locals("meetingID", id)
		return c.Next()
	}
}
