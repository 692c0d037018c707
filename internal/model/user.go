package model

import (
	"time"

	"gorm.io/gorm"
)

// Age brackets and gender categories accepted at signup.
var (
	AllowedAges    = []string{"10s", "20s", "30s", "40s", "50s", "60s+"}
	AllowedGenders = []string{"male", "female"}
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Age       string         `json:"age" gorm:"not null"` // one of AllowedAges
	Gender    string         `json:"gender" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
