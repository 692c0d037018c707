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

type AnswerService interface {
	Create(req dto.AnswerCreateDTO) (*dto.AnswerCreateResponseDTO, error)
	SubmitBatch(items []dto.AnswerSubmitItemDTO) (*dto.MessageResponse, error)
	ListAll() ([]dto.AnswerDTO, error)
	ListByUser(userID uint) ([]dto.AnswerDTO, error)
}

type answerService struct {
	answerRepo repository.AnswerRepository
	db         *gorm.DB // batch submit runs in its own transaction
}

func NewAnswerService(answerRepo repository.AnswerRepository, db *gorm.DB) AnswerService {
	return &answerService{answerRepo: answerRepo, db: db}
}

func (s *answerService) Create(req dto.AnswerCreateDTO) (*dto.AnswerCreateResponseDTO, error) {
	answer := model.Answer{
		UserID:   *req.UserID,
		ChoiceID: *req.ChoiceID,
	}
	if err := s.answerRepo.Create(&answer); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn().Err(err).Uint("userID", answer.UserID).Msg("Create: integrity error creating answer")
			return nil, apperr.Conflictf("Database integrity error")
		}
		log.Error().Err(err).Msg("Create: failed to create answer")
		return nil, apperr.Wrap(apperr.Internal, "Failed to create answer", err)
	}
	return &dto.AnswerCreateResponseDTO{
		Message:  fmt.Sprintf("Answer ID: %d Success Create", answer.ID),
		AnswerID: answer.ID,
	}, nil
}

// SubmitBatch persists a list of answers for one user as a single unit.
// Every item must carry integer user_id and choice_id, and all items must
// share the same user_id; any violation rejects the whole batch before a
// row is written, and a persistence failure rolls every row back.
func (s *answerService) SubmitBatch(items []dto.AnswerSubmitItemDTO) (*dto.MessageResponse, error) {
	if len(items) == 0 {
		return nil, apperr.Validationf("Request body must be a non-empty list")
	}

	var userID uint
	answers := make([]model.Answer, 0, len(items))
	for idx, item := range items {
		if item.UserID == nil {
			return nil, apperr.Validationf("Item #%d: missing required field: user_id", idx+1)
		}
		if item.ChoiceID == nil {
			return nil, apperr.Validationf("Item #%d: missing required field: choice_id", idx+1)
		}
		if idx == 0 {
			userID = *item.UserID
		} else if *item.UserID != userID {
			return nil, apperr.Validationf("Item #%d: all items must have the same user_id", idx+1)
		}
		answers = append(answers, model.Answer{
			UserID:   *item.UserID,
			ChoiceID: *item.ChoiceID,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&answers).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn().Err(err).Uint("userID", userID).Msg("SubmitBatch: integrity error, batch rolled back")
			return nil, apperr.Conflictf("Database integrity error")
		}
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitBatch: transaction failed, batch rolled back")
		return nil, apperr.Wrap(apperr.Internal, "Failed to save answers", err)
	}

	log.Info().Uint("userID", userID).Int("count", len(answers)).Msg("SubmitBatch: batch committed")
	return &dto.MessageResponse{
		Message: fmt.Sprintf("User: %d's answers Success Create", userID),
	}, nil
}

func (s *answerService) ListAll() ([]dto.AnswerDTO, error) {
	answers, err := s.answerRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListAll: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve answers", err)
	}
	return toAnswerDTOs(answers)
}

// ListByUser returns the user's answers ordered by id. A user with no
// answers is a 404, matching the strictest revision of this endpoint.
func (s *answerService) ListByUser(userID uint) ([]dto.AnswerDTO, error) {
	answers, err := s.answerRepo.FindByUserID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListByUser: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve answers", err)
	}
	if len(answers) == 0 {
		return nil, apperr.NotFoundf("No answers found for user %d", userID)
	}
	return toAnswerDTOs(answers)
}

func toAnswerDTOs(answers []model.Answer) ([]dto.AnswerDTO, error) {
	dtos := make([]dto.AnswerDTO, 0, len(answers))
	for _, answer := range answers {
		var answerDTO dto.AnswerDTO
		if err := copier.Copy(&answerDTO, &answer); err != nil {
			log.Error().Err(err).Uint("answerID", answer.ID).Msg("Failed to copy answer to DTO")
			return nil, apperr.Wrap(apperr.Internal, "Failed to prepare answers response", err)
		}
		dtos = append(dtos, answerDTO)
	}
	return dtos, nil
}
