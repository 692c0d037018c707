package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Ocelots/internal/apperr"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/model"
	"github.com/lshigami/Ocelots/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	Signup(req dto.SignupDTO) (*dto.SignupResponseDTO, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Signup(req dto.SignupDTO) (*dto.SignupResponseDTO, error) {
	user := model.User{
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Email:  req.Email,
	}

	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn().Str("email", req.Email).Msg("Signup: email already registered")
			return nil, apperr.Conflictf("Email already exists")
		}
		log.Error().Err(err).Msg("Signup: failed to create user")
		return nil, apperr.Wrap(apperr.Internal, "Failed to create user", err)
	}

	return &dto.SignupResponseDTO{
		Message: fmt.Sprintf("Welcome %s, signup complete", user.Name),
		UserID:  user.ID,
	}, nil
}
