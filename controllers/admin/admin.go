package adminController

import (
	"log"

	"ojt/config"
	"ojt/database"
	"ojt/middleware"
	"ojt/models"
	"ojt/utils"
	adminValidator "ojt/validators/admin"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GetUsers lists all users with pagination.
func GetUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if role := c.Query("role"); role != "" {
		db = db.Where("role = ?", role)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", response)
}

// UpdateUserRole sets a user's role by admin action, bypassing the one-time
// role-selection rule.
func UpdateUserRole(c *fiber.Ctx) error {
	targetID := uint(c.Locals("targetUserID").(int))
	reqData := c.Locals("validatedRole").(*adminValidator.UpdateRoleRequest)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = reqData.Role
	user.RoleSelected = true
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating user role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", user)
}

// InviteUser pre-creates a user bound to an invite token; the placeholder
// identity is reconciled when the invite is accepted. A student invite may
// directly enroll them into a classroom.
func InviteUser(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedInvite").(*adminValidator.InviteUserRequest)

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	var classroom models.Classroom
	if reqData.ClassroomID != nil {
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.ClassroomID, false).First(&classroom).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Classroom not found!", nil)
		}
	}

	inviteToken := uuid.NewString()

	// Placeholder credential; unusable until the invite is accepted
	placeholder, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing placeholder password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to invite user!", nil)
	}

	newUser := models.User{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Role:        reqData.Role,
		Password:    string(placeholder),
		InviteToken: inviteToken,
	}

	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating invited user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to invite user!", nil)
	}

	if reqData.ClassroomID != nil {
		enrollment := models.Enrollment{
			StudentID:   newUser.ID,
			ClassroomID: classroom.ID,
			Status:      models.EnrollmentActive,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			log.Printf("Error enrolling invited user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to invite user!", nil)
		}
	}
	tx.Commit()

	utils.SendInviteEmail(newUser.Email, inviteToken)
	utils.LogActivity(adminID, 0, "Invited "+newUser.Email)

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User invited successfully!", newUser)
}
