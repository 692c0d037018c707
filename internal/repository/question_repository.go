package repository

import (
	"github.com/lshigami/Ocelots/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindActiveBySqe(sqe int) (*model.Question, error)
	CountActive() (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

// FindActiveBySqe resolves a question by its display-order value. Inactive
// questions are invisible here; the preloaded choices are the active ones
// in their display order.
func (r *questionRepository) FindActiveBySqe(sqe int) (*model.Question, error) {
	var question model.Question
	err := r.db.
		Preload("Image").
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("choices.sqe ASC")
		}).
		Where("sqe = ? AND is_active = ?", sqe, true).
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) CountActive() (int64, error) {
	var total int64
	err := r.db.Model(&model.Question{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}
