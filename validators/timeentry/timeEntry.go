package timeEntryValidator

import (
	"strconv"
	"strings"
	"time"

	"ojt/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateTimeEntryRequest struct {
	ClassroomID  uint     `json:"classroom_id"`
	Date         string   `json:"date"`
	Hours        *float64 `json:"hours"`
	TimeIn       string   `json:"time_in"`
	TimeOut      string   `json:"time_out"`
	BreakMinutes int      `json:"break_minutes"`
	Description  string   `json:"description"`
}

// CreateTimeEntry accepts either a direct hours value or a
// time-in/time-out/break triple to derive hours from.
func CreateTimeEntry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTimeEntryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassroomID == 0 {
			errors["classroom_id"] = "Classroom ID is required!"
		}

		if _, err := time.Parse("2006-01-02", reqData.Date); err != nil {
			errors["date"] = "Date must be in YYYY-MM-DD format!"
		}

		hasDirect := reqData.Hours != nil
		hasDerived := reqData.TimeIn != "" || reqData.TimeOut != ""

		switch {
		case hasDirect && hasDerived:
			errors["hours"] = "Provide either hours or a time-in/time-out pair, not both!"
		case hasDirect:
			if *reqData.Hours <= 0 {
				errors["hours"] = "Hours must be greater than 0!"
			}
		case hasDerived:
			if reqData.TimeIn == "" || reqData.TimeOut == "" {
				errors["time_in"] = "Both time-in and time-out are required!"
			}
			if reqData.BreakMinutes < 0 {
				errors["break_minutes"] = "Break minutes cannot be negative!"
			}
		default:
			errors["hours"] = "Either hours or a time-in/time-out pair is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTimeEntry", reqData)
		return c.Next()
	}
}

// TimeEntryID validates the :id path param and stashes it in Locals.
func TimeEntryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Time entry ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid time entry ID!", nil)
		}

		c.Locals("timeEntryID", id)
		return c.Next()
	}
}

// ClassroomQuery validates the classroom_id query param.
func ClassroomQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classroomID, err := strconv.Atoi(c.Query("classroom_id"))
		if err != nil || classroomID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid classroom_id query parameter is required!", nil)
		}

		c.Locals("classroomID", classroomID)
		return c.Next()
	}
}
