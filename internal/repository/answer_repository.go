package repository

import (
	"github.com/lshigami/Ocelots/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindAll() ([]model.Answer, error)
	FindByUserID(userID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindAll() ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindByUserID(userID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
