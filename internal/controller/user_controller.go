package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Connect godoc
// @Summary Health check
// @Description Fixed success message confirming the API is reachable.
// @Tags Users
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (c *UserController) Connect(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Success Connect"})
}

// Signup godoc
// @Summary Create a user account
// @Description Registers a user. Age and gender must belong to their fixed category sets; email must be unique.
// @Tags Users
// @Accept json
// @Produce json
// @Param signup_data body dto.SignupDTO true "Signup fields"
// @Success 201 {object} dto.SignupResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing/invalid field or duplicate email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /signup [post]
func (c *UserController) Signup(ctx *gin.Context) {
	var req dto.SignupDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Signup: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.userService.Signup(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
