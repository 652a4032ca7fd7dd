package models

import (
	"time"

	"gorm.io/gorm"
)

type Meeting struct {
	gorm.Model
	ClassroomID uint      `json:"classroom_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time" gorm:"default:''"`
	MeetingURL  string    `json:"meeting_url" gorm:"default:''"`
	Classroom   Classroom `json:"-" gorm:"foreignKey:ClassroomID;constraint:OnDelete:CASCADE"`
}
