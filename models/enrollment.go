package models

import (
	"gorm.io/gorm"
)

const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentWithdrawn = "WITHDRAWN"
)

type Enrollment struct {
	gorm.Model
	StudentID   uint      `json:"student_id" gorm:"uniqueIndex:idx_student_classroom;not null"`
	ClassroomID uint      `json:"classroom_id" gorm:"uniqueIndex:idx_student_classroom;not null"`
	Status      string    `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, WITHDRAWN
	Student     User      `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Classroom   Classroom `json:"-" gorm:"foreignKey:ClassroomID;constraint:OnDelete:CASCADE"`
}
