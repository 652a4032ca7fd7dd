package classroomValidator

import (
	"strconv"
	"strings"

	"ojt/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateClassroomRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	OjtHours    *float64 `json:"ojt_hours"`
}

type UpdateClassroomRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	OjtHours    *float64 `json:"ojt_hours"`
	IsActive    *bool    `json:"is_active"`
}

type JoinClassroomRequest struct {
	Code string `json:"code" validate:"required,len=8,hexadecimal"`
}

// ClassroomID validates the :id path param and stashes it in Locals.
func ClassroomID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Classroom ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Classroom ID!", nil)
		}

		c.Locals("classroomID", id)
		return c.Next()
	}
}

func CreateClassroom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateClassroomRequest)

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

		c.Locals("validatedClassroom", reqData)
		return c.Next()
	}
}

func UpdateClassroom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateClassroomRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClassroomUpdate", reqData)
		return c.Next()
	}
}

func JoinClassroom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(JoinClassroomRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Code = strings.ToLower(strings.TrimSpace(reqData.Code))

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			errors["code"] = "A valid 8-character invite code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJoin", reqData)
		return c.Next()
	}
}
