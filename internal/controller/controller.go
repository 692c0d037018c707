// Package controller holds the gin handlers for the survey API. Each
// controller binds a request, delegates to one service call, and writes a
// JSON projection; service errors are mapped to HTTP statuses via apperr.
package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Ocelots/internal/apperr"
	"github.com/lshigami/Ocelots/internal/dto"
)

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(apperr.Status(err), dto.ErrorResponse{Message: apperr.Message(err)})
}
