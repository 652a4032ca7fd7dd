package adminController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"ojt/config"
	"ojt/database"
	"ojt/middleware"
	"ojt/models"
	adminRoutes "ojt/routers/adminRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var userSeq int

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	return app
}

func seedUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	userSeq++
	user := models.User{
		Name:         fmt.Sprintf("User %d", userSeq),
		Email:        fmt.Sprintf("user%d@test.test", userSeq),
		Role:         role,
		RoleSelected: true,
		Password:     "x",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp.StatusCode, payload
}

func TestAdminRoutesAreAdminOnly(t *testing.T) {
	app := setupApp(t)
	_, profToken := seedUser(t, models.RoleProfessor)
	_, studentToken := seedUser(t, models.RoleStudent)

	status, _ := doRequest(t, app, "GET", "/admin/users", profToken, nil)
	require.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, "GET", "/admin/users", studentToken, nil)
	require.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, "GET", "/admin/users", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAdminCanUpdateRole(t *testing.T) {
	app := setupApp(t)
	_, adminToken := seedUser(t, models.RoleAdmin)
	target, _ := seedUser(t, models.RoleStudent)

	status, _ := doRequest(t, app, "PUT", fmt.Sprintf("/admin/users/%d/role", target.ID), adminToken, fiber.Map{
		"role": "PROFESSOR",
	})
	require.Equal(t, fiber.StatusOK, status)

	var updated models.User
	require.NoError(t, database.Database.Db.First(&updated, target.ID).Error)
	require.Equal(t, models.RoleProfessor, updated.Role)

	status, _ = doRequest(t, app, "PUT", fmt.Sprintf("/admin/users/%d/role", target.ID), adminToken, fiber.Map{
		"role": "WIZARD",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestInviteUserPreCreatesAndEnrolls(t *testing.T) {
	app := setupApp(t)
	_, adminToken := seedUser(t, models.RoleAdmin)
	prof, _ := seedUser(t, models.RoleProfessor)

	classroom := models.Classroom{Name: "OJT", ProfessorID: prof.ID, OjtHours: 600, IsActive: true}
	require.NoError(t, database.Database.Db.Create(&classroom).Error)

	status, _ := doRequest(t, app, "POST", "/admin/invite", adminToken, fiber.Map{
		"email":        "newbie@test.test",
		"role":         "STUDENT",
		"classroom_id": classroom.ID,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var invited models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "newbie@test.test").First(&invited).Error)
	require.NotEmpty(t, invited.InviteToken)
	require.Equal(t, models.RoleStudent, invited.Role)

	var enrollmentCount int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("student_id = ? AND classroom_id = ?", invited.ID, classroom.ID).
		Count(&enrollmentCount)
	require.Equal(t, int64(1), enrollmentCount)

	// Inviting the same email twice conflicts
	status, _ = doRequest(t, app, "POST", "/admin/invite", adminToken, fiber.Map{
		"email": "newbie@test.test",
	})
	require.Equal(t, fiber.StatusConflict, status)

	// Professors cannot be dropped into a classroom roster
	status, _ = doRequest(t, app, "POST", "/admin/invite", adminToken, fiber.Map{
		"email":        "prof2@test.test",
		"role":         "PROFESSOR",
		"classroom_id": classroom.ID,
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, status)
}
