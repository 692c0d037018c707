package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `json:"title" gorm:"not null"`
	Sqe       int            `json:"sqe" gorm:"not null;index"` // display order within the survey
	ImageID   *uint          `json:"image_id,omitempty" gorm:"index"`
	Image     *Image         `json:"image,omitempty" gorm:"foreignKey:ImageID"`
	IsActive  bool           `json:"is_active" gorm:"not null"`
	Choices   []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
