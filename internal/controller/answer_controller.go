package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/service"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// CreateAnswer godoc
// @Summary Record a single answer
// @Tags Answers
// @Accept json
// @Produce json
// @Param answer_data body dto.AnswerCreateDTO true "user_id and choice_id"
// @Success 201 {object} dto.AnswerCreateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or non-integer fields"
// @Failure 500 {object} dto.ErrorResponse
// @Router /answers [post]
func (c *AnswerController) CreateAnswer(ctx *gin.Context) {
	var req dto.AnswerCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.answerService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// SubmitAnswers godoc
// @Summary Submit a batch of answers for one user
// @Description All items must be objects carrying integer user_id and choice_id, and every item must share the same user_id. The batch commits atomically.
// @Tags Answers
// @Accept json
// @Produce json
// @Param answers body []dto.AnswerSubmitItemDTO true "Answer items"
// @Success 201 {object} dto.MessageResponse "Message names the shared user_id"
// @Failure 400 {object} dto.ErrorResponse "Malformed item or mismatched user_id; no rows persisted"
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit [post]
func (c *AnswerController) SubmitAnswers(ctx *gin.Context) {
	var items []dto.AnswerSubmitItemDTO
	if err := ctx.ShouldBindJSON(&items); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswers: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Request body must be a list of answer objects", Details: []string{err.Error()}})
		return
	}

	resp, err := c.answerService.SubmitBatch(items)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListAnswers godoc
// @Summary List all answers
// @Tags Answers
// @Produce json
// @Success 200 {array} dto.AnswerDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /answers [get]
func (c *AnswerController) ListAnswers(ctx *gin.Context) {
	resp, err := c.answerService.ListAll()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListAnswersByUser godoc
// @Summary List a user's answers
// @Tags Answers
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.AnswerDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} dto.ErrorResponse "User has no answers"
// @Router /answers/user/{user_id} [get]
func (c *AnswerController) ListAnswersByUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}

	resp, err := c.answerService.ListByUser(uint(userID))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
