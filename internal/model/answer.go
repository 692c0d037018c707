package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer links a user to a chosen choice. A user may answer the same
// choice more than once; no uniqueness is enforced here.
type Answer struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	User      User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ChoiceID  uint           `json:"choice_id" gorm:"not null;index"`
	Choice    Choice         `json:"choice,omitempty" gorm:"foreignKey:ChoiceID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
