package adminValidator

import (
	"strconv"
	"strings"

	"ojt/middleware"
	"ojt/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type InviteUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	ClassroomID *uint  `json:"classroom_id"` // optional direct enrollment for students
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func InviteUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(InviteUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			errors["email"] = "A valid email is required!"
		}

		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		}
		switch reqData.Role {
		case models.RoleStudent, models.RoleProfessor, models.RoleAdmin:
		default:
			errors["role"] = "Role must be STUDENT, PROFESSOR or ADMIN!"
		}

		if reqData.ClassroomID != nil && reqData.Role != models.RoleStudent {
			errors["classroom_id"] = "Only students can be enrolled into a classroom!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInvite", reqData)
		return c.Next()
	}
}

func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRoleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Role {
		case models.RoleStudent, models.RoleProfessor, models.RoleAdmin:
		default:
			errors["role"] = "Role must be STUDENT, PROFESSOR or ADMIN!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}

// UserID validates the :id path param and stashes it in Locals.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}
