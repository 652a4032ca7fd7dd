package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReportPending   = "PENDING"
	ReportSubmitted = "SUBMITTED"
	ReportReviewed  = "REVIEWED"
	ReportApproved  = "APPROVED"
	ReportRejected  = "REJECTED"
)

// Report is either a professor-authored template (IsTemplate) or a student
// submission against a task. One submission row per (student, task);
// resubmission updates in place.
type Report struct {
	gorm.Model
	ClassroomID   uint       `json:"classroom_id" gorm:"index;not null"`
	StudentID     uint       `json:"student_id" gorm:"index"`
	TaskID        *uint      `json:"task_id" gorm:"index"`
	Title         string     `json:"title" gorm:"not null"`
	Description   string     `json:"description"`
	DueDate       *time.Time `json:"due_date"`
	Status        string     `json:"status" gorm:"default:'PENDING'"` // PENDING, SUBMITTED, REVIEWED, APPROVED, REJECTED
	SubmissionURL string     `json:"submission_url" gorm:"default:''"`
	Feedback      string     `json:"feedback" gorm:"default:''"`
	IsTemplate    bool       `json:"is_template" gorm:"default:false"`
	Classroom     Classroom  `json:"-" gorm:"foreignKey:ClassroomID;constraint:OnDelete:CASCADE"`
}
