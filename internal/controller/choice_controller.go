package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/service"
	"github.com/rs/zerolog/log"
)

type ChoiceController struct {
	choiceService service.ChoiceService
}

func NewChoiceController(choiceService service.ChoiceService) *ChoiceController {
	return &ChoiceController{choiceService: choiceService}
}

// ListByQuestion godoc
// @Summary List a question's choices
// @Description Active choices of the question, ordered ascending by sqe. A question without choices yields an empty list.
// @Tags Choices
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.ChoiceListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 500 {object} dto.ErrorResponse
// @Router /choices/question/{question_id} [get]
func (c *ChoiceController) ListByQuestion(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	resp, err := c.choiceService.ListByQuestion(uint(questionID))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateChoice godoc
// @Summary Create a choice
// @Description Admin creates a choice under a question. is_active defaults to true when omitted.
// @Tags Choices
// @Accept json
// @Produce json
// @Param choice_data body dto.ChoiceCreateDTO true "Choice fields"
// @Success 201 {object} dto.ChoiceCreateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse
// @Router /choices [post]
func (c *ChoiceController) CreateChoice(ctx *gin.Context) {
	var req dto.ChoiceCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateChoice: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.choiceService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
