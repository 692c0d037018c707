package model

import (
	"time"

	"gorm.io/gorm"
)

type Choice struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Content    string         `json:"content" gorm:"not null"`
	Sqe        int            `json:"sqe" gorm:"not null"` // display order within the question
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	IsActive   bool           `json:"is_active" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
