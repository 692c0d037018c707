package repository

import (
	"github.com/lshigami/Ocelots/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	Create(choice *model.Choice) error
	FindActiveByQuestionID(questionID uint) ([]model.Choice, error)
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) Create(choice *model.Choice) error {
	return r.db.Create(choice).Error
}

func (r *choiceRepository) FindActiveByQuestionID(questionID uint) ([]model.Choice, error) {
	var choices []model.Choice
	err := r.db.
		Where("question_id = ? AND is_active = ?", questionID, true).
		Order("sqe ASC").
		Find(&choices).Error
	if err != nil {
		return nil, err
	}
	return choices, nil
}
