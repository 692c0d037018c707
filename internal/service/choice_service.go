package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Ocelots/internal/apperr"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/model"
	"github.com/lshigami/Ocelots/internal/repository"
	"github.com/rs/zerolog/log"
)

type ChoiceService interface {
	ListByQuestion(questionID uint) (*dto.ChoiceListResponse, error)
	Create(req dto.ChoiceCreateDTO) (*dto.ChoiceCreateResponseDTO, error)
}

type choiceService struct {
	choiceRepo repository.ChoiceRepository
}

func NewChoiceService(choiceRepo repository.ChoiceRepository) ChoiceService {
	return &choiceService{choiceRepo: choiceRepo}
}

// ListByQuestion returns the question's active choices in display order.
// A question with no active choices yields an empty list, not an error.
func (s *choiceService) ListByQuestion(questionID uint) (*dto.ChoiceListResponse, error) {
	choices, err := s.choiceRepo.FindActiveByQuestionID(questionID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("ListByQuestion: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve choices", err)
	}

	resp := dto.ChoiceListResponse{Choices: make([]dto.ChoiceDTO, 0, len(choices))}
	for _, choice := range choices {
		var choiceDTO dto.ChoiceDTO
		if err := copier.Copy(&choiceDTO, &choice); err != nil {
			log.Error().Err(err).Msg("ListByQuestion: failed to copy choice to DTO")
			return nil, apperr.Wrap(apperr.Internal, "Failed to prepare choices response", err)
		}
		resp.Choices = append(resp.Choices, choiceDTO)
	}
	return &resp, nil
}

func (s *choiceService) Create(req dto.ChoiceCreateDTO) (*dto.ChoiceCreateResponseDTO, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	choice := model.Choice{
		Content:    req.Content,
		Sqe:        req.Sqe,
		QuestionID: req.QuestionID,
		IsActive:   isActive,
	}
	if err := s.choiceRepo.Create(&choice); err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("Create: failed to create choice")
		return nil, apperr.Wrap(apperr.Internal, "Failed to create choice", err)
	}

	return &dto.ChoiceCreateResponseDTO{
		Message:  fmt.Sprintf("Choice ID: %d Success Create", choice.ID),
		ChoiceID: choice.ID,
	}, nil
}
