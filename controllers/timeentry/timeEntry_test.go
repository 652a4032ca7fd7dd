package timeEntryController_test

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
	timeEntryRoutes "ojt/routers/timeEntryRoutes"

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
	timeEntryRoutes.SetupTimeEntryRoutes(app)
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

func seedClassroom(t *testing.T, professorID uint, ojtHours float64) models.Classroom {
	t.Helper()

	classroom := models.Classroom{Name: "OJT", ProfessorID: professorID, OjtHours: ojtHours, IsActive: true}
	require.NoError(t, database.Database.Db.Create(&classroom).Error)
	return classroom
}

func enroll(t *testing.T, studentID, classroomID uint) {
	t.Helper()

	enrollment := models.Enrollment{StudentID: studentID, ClassroomID: classroomID, Status: models.EnrollmentActive}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)
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

func dataMap(t *testing.T, payload map[string]interface{}) map[string]interface{} {
	t.Helper()

	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok, "expected data object, got %v", payload)
	return data
}

func TestApprovalGatesProgress(t *testing.T) {
	app := setupApp(t)
	prof, profToken := seedUser(t, models.RoleProfessor)
	student, studentToken := seedUser(t, models.RoleStudent)
	classroom := seedClassroom(t, prof.ID, 10)
	enroll(t, student.ID, classroom.ID)

	status, payload := doRequest(t, app, "POST", "/time-entry/", studentToken, fiber.Map{
		"classroom_id": classroom.ID,
		"date":         "2026-05-01",
		"hours":        8,
	})
	require.Equal(t, fiber.StatusCreated, status)
	entry := dataMap(t, payload)
	require.Equal(t, false, entry["is_approved"])
	entryID := uint(entry["ID"].(float64))

	// Unapproved entries never contribute to progress
	status, payload = doRequest(t, app, "GET", fmt.Sprintf("/time-entry/progress?classroom_id=%d", classroom.ID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	progress := dataMap(t, payload)
	require.Equal(t, 0.0, progress["completed_hours"])
	require.Equal(t, 0.0, progress["progress_percentage"])

	status, _ = doRequest(t, app, "PUT", fmt.Sprintf("/time-entry/%d/approve", entryID), profToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, payload = doRequest(t, app, "GET", fmt.Sprintf("/time-entry/progress?classroom_id=%d", classroom.ID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	progress = dataMap(t, payload)
	require.Equal(t, 8.0, progress["completed_hours"])
	require.Equal(t, 10.0, progress["required_hours"])
	require.Equal(t, 80.0, progress["progress_percentage"])

	// Re-approving is a no-op
	status, _ = doRequest(t, app, "PUT", fmt.Sprintf("/time-entry/%d/approve", entryID), profToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, payload = doRequest(t, app, "GET", fmt.Sprintf("/time-entry/progress?classroom_id=%d", classroom.ID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, 8.0, dataMap(t, payload)["completed_hours"])
}

func TestProgressClampsAtHundred(t *testing.T) {
	app := setupApp(t)
	prof, profToken := seedUser(t, models.RoleProfessor)
	student, studentToken := seedUser(t, models.RoleStudent)
	classroom := seedClassroom(t, prof.ID, 10)
	enroll(t, student.ID, classroom.ID)

	for _, hours := range []float64{8, 4} {
		status, payload := doRequest(t, app, "POST", "/time-entry/", studentToken, fiber.Map{
			"classroom_id": classroom.ID,
			"date":         "2026-05-01",
			"hours":        hours,
		})
		require.Equal(t, fiber.StatusCreated, status)
		entryID := uint(dataMap(t, payload)["ID"].(float64))

		status, _ = doRequest(t, app, "PUT", fmt.Sprintf("/time-entry/%d/approve", entryID), profToken, nil)
		require.Equal(t, fiber.StatusOK, status)
	}

	status, payload := doRequest(t, app, "GET", fmt.Sprintf("/time-entry/progress?classroom_id=%d", classroom.ID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	progress := dataMap(t, payload)
	require.Equal(t, 12.0, progress["completed_hours"])
	require.Equal(t, 100.0, progress["progress_percentage"])
}

func TestRejectionIsDestructive(t *testing.T) {
	app := setupApp(t)
	prof, profToken := seedUser(t, models.RoleProfessor)
	student, studentToken := seedUser(t, models.RoleStudent)
	classroom := seedClassroom(t, prof.ID, 600)
	enroll(t, student.ID, classroom.ID)

	status, payload := doRequest(t, app, "POST", "/time-entry/", studentToken, fiber.Map{
		"classroom_id": classroom.ID,
		"date":         "2026-05-01",
		"hours":        6,
	})
	require.Equal(t, fiber.StatusCreated, status)
	entryID := uint(dataMap(t, payload)["ID"].(float64))

	status, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/time-entry/%d/reject", entryID), profToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	// The row is gone for good, not flagged
	var count int64
	database.Database.Db.Unscoped().Model(&models.TimeEntry{}).Where("id = ?", entryID).Count(&count)
	require.Equal(t, int64(0), count)

	status, _ = doRequest(t, app, "PUT", fmt.Sprintf("/time-entry/%d/approve", entryID), profToken, nil)
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestOwnershipEnforcement(t *testing.T) {
	app := setupApp(t)
	prof, _ := seedUser(t, models.RoleProfessor)
	_, otherProfToken := seedUser(t, models.RoleProfessor)
	student, studentToken := seedUser(t, models.RoleStudent)
	classroom := seedClassroom(t, prof.ID, 600)
	enroll(t, student.ID, classroom.ID)

	status, payload := doRequest(t, app, "POST", "/time-entry/", studentToken, fiber.Map{
		"classroom_id": classroom.ID,
		"date":         "2026-05-01",
		"hours":        3,
	})
	require.Equal(t, fiber.StatusCreated, status)
	entryID := uint(dataMap(t, payload)["ID"].(float64))

	status, _ = doRequest(t, app, "PUT", fmt.Sprintf("/time-entry/%d/approve", entryID), otherProfToken, nil)
	require.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/time-entry/%d/reject", entryID), otherProfToken, nil)
	require.Equal(t, fiber.StatusForbidden, status)

	// Entry survived the foreign professor
	var count int64
	database.Database.Db.Model(&models.TimeEntry{}).Where("id = ?", entryID).Count(&count)
	require.Equal(t, int64(1), count)
}

func TestCreateRequiresEnrollment(t *testing.T) {
	app := setupApp(t)
	prof, _ := seedUser(t, models.RoleProfessor)
	_, outsiderToken := seedUser(t, models.RoleStudent)
	classroom := seedClassroom(t, prof.ID, 600)

	status, _ := doRequest(t, app, "POST", "/time-entry/", outsiderToken, fiber.Map{
		"classroom_id": classroom.ID,
		"date":         "2026-05-01",
		"hours":        5,
	})
	require.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, "GET", fmt.Sprintf("/time-entry/progress?classroom_id=%d", classroom.ID), outsiderToken, nil)
	require.Equal(t, fiber.StatusForbidden, status)
}

func TestDerivedHoursOvernightShift(t *testing.T) {
	app := setupApp(t)
	prof, _ := seedUser(t, models.RoleProfessor)
	student, studentToken := seedUser(t, models.RoleStudent)
	classroom := seedClassroom(t, prof.ID, 600)
	enroll(t, student.ID, classroom.ID)

	status, payload := doRequest(t, app, "POST", "/time-entry/", studentToken, fiber.Map{
		"classroom_id":  classroom.ID,
		"date":          "2026-05-01",
		"time_in":       "22:00",
		"time_out":      "06:00",
		"break_minutes": 30,
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.Equal(t, 7.5, dataMap(t, payload)["hours"])
}

func TestCreateRejectsAmbiguousInput(t *testing.T) {
	app := setupApp(t)
	prof, _ := seedUser(t, models.RoleProfessor)
	student, studentToken := seedUser(t, models.RoleStudent)
	classroom := seedClassroom(t, prof.ID, 600)
	enroll(t, student.ID, classroom.ID)

	// Both direct hours and a derivable pair is ambiguous
	status, _ := doRequest(t, app, "POST", "/time-entry/", studentToken, fiber.Map{
		"classroom_id": classroom.ID,
		"date":         "2026-05-01",
		"hours":        4,
		"time_in":      "09:00",
		"time_out":     "13:00",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, _ = doRequest(t, app, "POST", "/time-entry/", studentToken, fiber.Map{
		"classroom_id": classroom.ID,
		"date":         "05/01/2026",
		"hours":        4,
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, status)
}
