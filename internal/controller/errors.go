package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/dto"
)

// WriteError maps domain error kinds to HTTP responses. Services stay free of
// transport concerns; this is the single translation point.
func WriteError(ctx *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrGameNotOpen),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrNoChanceAvailable),
		errors.Is(err, apperrors.ErrClaimConflict):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error", Details: []string{err.Error()}})
	}
}
