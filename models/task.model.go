package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TaskPending    = "PENDING"
	TaskInProgress = "IN_PROGRESS"
	TaskCompleted  = "COMPLETED"
	TaskOverdue    = "OVERDUE"

	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Task is one assigned unit of work. Assigning to all enrolled students
// fans out into one row per student at assignment time.
type Task struct {
	gorm.Model
	ClassroomID uint      `json:"classroom_id" gorm:"index;not null"`
	StudentID   uint      `json:"student_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status" gorm:"default:'PENDING'"` // PENDING, IN_PROGRESS, COMPLETED, OVERDUE
	Priority    string    `json:"priority" gorm:"default:'MEDIUM'"`
	Classroom   Classroom `json:"-" gorm:"foreignKey:ClassroomID;constraint:OnDelete:CASCADE"`
	Student     User      `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}
