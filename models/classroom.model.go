package models

import (
	"gorm.io/gorm"
)

const DefaultOjtHours = 600

type Classroom struct {
	gorm.Model
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	ProfessorID uint    `json:"professor_id" gorm:"index;not null"`
	OjtHours    float64 `json:"ojt_hours" gorm:"default:600"` // required-hours target
	InviteCode  string  `json:"invite_code" gorm:"index;default:''"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	IsDeleted   bool    `gorm:"default:false"`
	Professor   User    `json:"-" gorm:"foreignKey:ProfessorID"`
}
