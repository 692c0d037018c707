package model

import (
	"time"

	"gorm.io/gorm"
)

// Image type categories. "main" marks the survey's front image.
var AllowedImageTypes = []string{"main", "sub", "etc"}

type Image struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	URL       string         `json:"url" gorm:"not null"`
	Type      string         `json:"type" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
