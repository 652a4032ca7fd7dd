package meetingController_test

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
	meetingRoutes "ojt/routers/meetingRoutes"

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
	meetingRoutes.SetupMeetingRoutes(app)
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

func TestMeetingLifecycle(t *testing.T) {
	app := setupApp(t)
	prof, profToken := seedUser(t, models.RoleProfessor)
	_, otherProfToken := seedUser(t, models.RoleProfessor)
	student, studentToken := seedUser(t, models.RoleStudent)
	_, outsiderToken := seedUser(t, models.RoleStudent)

	classroom := models.Classroom{Name: "OJT", ProfessorID: prof.ID, OjtHours: 600, IsActive: true}
	require.NoError(t, database.Database.Db.Create(&classroom).Error)
	enrollment := models.Enrollment{StudentID: student.ID, ClassroomID: classroom.ID, Status: models.EnrollmentActive}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)

	// Only the owner schedules meetings
	status, _ := doRequest(t, app, "POST", "/meeting/", otherProfToken, fiber.Map{
		"classroom_id": classroom.ID,
		"title":        "Kickoff",
		"date":         "2026-09-01",
	})
	require.Equal(t, fiber.StatusForbidden, status)

	status, payload := doRequest(t, app, "POST", "/meeting/", profToken, fiber.Map{
		"classroom_id": classroom.ID,
		"title":        "Kickoff",
		"date":         "2026-09-01",
		"time":         "10:00",
		"meeting_url":  "https://meet.test/kickoff",
	})
	require.Equal(t, fiber.StatusCreated, status)
	meetingID := uint(payload["data"].(map[string]interface{})["ID"].(float64))

	// Enrolled students see the schedule; outsiders do not
	status, payload = doRequest(t, app, "GET", fmt.Sprintf("/meeting/list?classroom_id=%d", classroom.ID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, payload["data"].([]interface{}), 1)

	status, _ = doRequest(t, app, "GET", fmt.Sprintf("/meeting/list?classroom_id=%d", classroom.ID), outsiderToken, nil)
	require.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/meeting/%d", meetingID), otherProfToken, nil)
	require.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/meeting/%d", meetingID), profToken, nil)
	require.Equal(t, fiber.StatusOK, status)
}
