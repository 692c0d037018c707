package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// GetQuestion godoc
// @Summary Get a question by display order
// @Description Returns the active question with the given sqe value, its image, and its active choices ordered by sqe.
// @Tags Questions
// @Produce json
// @Param sqe path int true "Question display-order value"
// @Success 200 {object} dto.QuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid sqe format"
// @Failure 404 {object} dto.ErrorResponse "No active question with that sqe"
// @Router /questions/{sqe} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	sqe, err := strconv.Atoi(ctx.Param("sqe"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question sqe format"})
		return
	}

	resp, err := c.questionService.GetBySqe(sqe)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CountQuestions godoc
// @Summary Count active questions
// @Tags Questions
// @Produce json
// @Success 200 {object} dto.QuestionCountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/count [get]
func (c *QuestionController) CountQuestions(ctx *gin.Context) {
	resp, err := c.questionService.Count()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Admin creates a question. is_active defaults to true when omitted.
// @Tags Questions
// @Accept json
// @Produce json
// @Param question_data body dto.QuestionCreateDTO true "Question fields"
// @Success 201 {object} dto.QuestionCreateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
