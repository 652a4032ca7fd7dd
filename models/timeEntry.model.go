package models

import (
	"time"

	"gorm.io/gorm"
)

// TimeEntry is one logged work session. Entries are created unapproved;
// only approved entries count toward progress. Rejection deletes the row.
type TimeEntry struct {
	gorm.Model
	StudentID    uint      `json:"student_id" gorm:"index;not null"`
	ClassroomID  uint      `json:"classroom_id" gorm:"index;not null"`
	Date         time.Time `json:"date" gorm:"not null"`
	Hours        float64   `json:"hours" gorm:"not null"` // half-hour grain
	TimeIn       string    `json:"time_in" gorm:"default:''"`
	TimeOut      string    `json:"time_out" gorm:"default:''"`
	BreakMinutes int       `json:"break_minutes" gorm:"default:0"`
	Description  string    `json:"description"`
	IsApproved   bool      `json:"is_approved" gorm:"default:false"`
	Student      User      `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Classroom    Classroom `json:"-" gorm:"foreignKey:ClassroomID;constraint:OnDelete:CASCADE"`
}
