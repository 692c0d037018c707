package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Ocelots/internal/apperr"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/model"
	"github.com/lshigami/Ocelots/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	GetBySqe(sqe int) (*dto.QuestionDetailDTO, error)
	Count() (*dto.QuestionCountResponse, error)
	Create(req dto.QuestionCreateDTO) (*dto.QuestionCreateResponseDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

// GetBySqe resolves the question holding the given display-order value.
// Only active questions are visible, and the returned choices are the
// active ones in ascending sqe order.
func (s *questionService) GetBySqe(sqe int) (*dto.QuestionDetailDTO, error) {
	question, err := s.questionRepo.FindActiveBySqe(sqe)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Question not found")
		}
		log.Error().Err(err).Int("sqe", sqe).Msg("GetBySqe: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve question", err)
	}

	resp := dto.QuestionDetailDTO{
		ID:    question.ID,
		Title: question.Title,
		Sqe:   question.Sqe,
	}
	if question.Image != nil {
		var imageDTO dto.ImageDTO
		if err := copier.Copy(&imageDTO, question.Image); err != nil {
			log.Error().Err(err).Msg("GetBySqe: failed to copy image to DTO")
			return nil, apperr.Wrap(apperr.Internal, "Failed to prepare question response", err)
		}
		resp.Image = &imageDTO
	}
	resp.Choices = make([]dto.ChoiceDTO, 0, len(question.Choices))
	for _, choice := range question.Choices {
		var choiceDTO dto.ChoiceDTO
		if err := copier.Copy(&choiceDTO, &choice); err != nil {
			log.Error().Err(err).Msg("GetBySqe: failed to copy choice to DTO")
			return nil, apperr.Wrap(apperr.Internal, "Failed to prepare question response", err)
		}
		resp.Choices = append(resp.Choices, choiceDTO)
	}
	return &resp, nil
}

func (s *questionService) Count() (*dto.QuestionCountResponse, error) {
	total, err := s.questionRepo.CountActive()
	if err != nil {
		log.Error().Err(err).Msg("Count: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to count questions", err)
	}
	return &dto.QuestionCountResponse{Total: total}, nil
}

func (s *questionService) Create(req dto.QuestionCreateDTO) (*dto.QuestionCreateResponseDTO, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	question := model.Question{
		Title:    req.Title,
		Sqe:      req.Sqe,
		ImageID:  req.ImageID,
		IsActive: isActive,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Create: failed to create question")
		return nil, apperr.Wrap(apperr.Internal, "Failed to create question", err)
	}

	return &dto.QuestionCreateResponseDTO{
		Message:    fmt.Sprintf("Question ID: %d Success Create", question.ID),
		QuestionID: question.ID,
	}, nil
}
