package models

import (
	"gorm.io/gorm"
)

const (
	RoleStudent   = "STUDENT"
	RoleProfessor = "PROFESSOR"
	RoleAdmin     = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage string `gorm:"default:''"`
	Name         string `gorm:"default:''"`
	Email        string `gorm:"unique;not null"`
	Role         string `gorm:"default:'STUDENT'"` // STUDENT, PROFESSOR, ADMIN
	RoleSelected bool   `gorm:"default:false"`     // one-time role selection done
	Password     string `gorm:"not null"`
	InviteToken  string `gorm:"default:''"` // set for admin-invited users until accepted
	IsDeleted    bool   `gorm:"default:false"`
}
