package models

import (
	"gorm.io/gorm"
)

// Activity is an append-only human-readable action log. Writes are
// best-effort and never fail the mutation that produced them.
type Activity struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	ClassroomID uint   `json:"classroom_id" gorm:"index"`
	Action      string `json:"action" gorm:"not null"`
}
