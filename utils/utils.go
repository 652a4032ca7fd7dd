package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ojt/database"
	"ojt/models"
)

// GenerateInviteCode generates an 8-hex-character classroom invite code
// (4 random bytes). Regenerates until no other live classroom holds the
// code, so lookup by code stays unambiguous.
func GenerateInviteCode() (string, error) {
	for i := 0; i < 10; i++ {
		buf := make([]byte, 4)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		code := hex.EncodeToString(buf)

		var count int64
		database.Database.Db.Model(&models.Classroom{}).
			Where("invite_code = ? AND is_deleted = ?", code, false).
			Count(&count)
		if count == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique invite code")
}

// ParseClockTime parses "HH:MM" into minutes since midnight.
func ParseClockTime(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hh*60 + mm, nil
}

// DeriveHours computes worked hours from clock-in/clock-out strings and a
// break. A negative elapsed span wraps by 24h to handle overnight shifts.
// The result is rounded to the nearest half hour.
func DeriveHours(timeIn, timeOut string, breakMinutes int) (float64, error) {
	in, err := ParseClockTime(timeIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseClockTime(timeOut)
	if err != nil {
		return 0, err
	}
	if breakMinutes < 0 {
		return 0, fmt.Errorf("break minutes cannot be negative")
	}

	elapsed := out - in
	if elapsed < 0 {
		elapsed += 24 * 60 // overnight shift
	}
	totalMinutes := elapsed - breakMinutes
	if totalMinutes <= 0 {
		return 0, fmt.Errorf("break exceeds the worked span")
	}

	hours := math.Round(float64(totalMinutes)/30.0) / 2.0
	if hours <= 0 {
		return 0, fmt.Errorf("worked time rounds down to zero hours")
	}
	return hours, nil
}

// ProgressPercentage clamps approved hours against the requirement to 0..100.
func ProgressPercentage(completedHours, requiredHours float64) int {
	if requiredHours <= 0 {
		requiredHours = models.DefaultOjtHours
	}
	pct := int(math.Round(completedHours / requiredHours * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// ComputeProgress sums approved hours for the (student, classroom) pair and
// derives the percentage of the classroom's required-hours target. Recomputed
// from the ledger on every call; never cached.
func ComputeProgress(studentID, classroomID uint) (completedHours, requiredHours float64, percentage int, err error) {
	var classroom models.Classroom
	if err = database.Database.Db.
		Where("id = ? AND is_deleted = ?", classroomID, false).
		First(&classroom).Error; err != nil {
		return 0, 0, 0, err
	}

	requiredHours = classroom.OjtHours
	if requiredHours <= 0 {
		requiredHours = models.DefaultOjtHours
	}

	// Only approved entries count
	if err = database.Database.Db.Model(&models.TimeEntry{}).
		Where("student_id = ? AND classroom_id = ? AND is_approved = ?", studentID, classroomID, true).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&completedHours).Error; err != nil {
		return 0, 0, 0, err
	}

	return completedHours, requiredHours, ProgressPercentage(completedHours, requiredHours), nil
}

// IsEnrolled reports whether the student has an active enrollment in the classroom.
func IsEnrolled(studentID, classroomID uint) bool {
	var count int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("student_id = ? AND classroom_id = ? AND status = ?", studentID, classroomID, models.EnrollmentActive).
		Count(&count)
	return count > 0
}

// OwnsClassroom reports whether the professor owns the (live) classroom.
func OwnsClassroom(professorID, classroomID uint) bool {
	var count int64
	database.Database.Db.Model(&models.Classroom{}).
		Where("id = ? AND professor_id = ? AND is_deleted = ?", classroomID, professorID, false).
		Count(&count)
	return count > 0
}
