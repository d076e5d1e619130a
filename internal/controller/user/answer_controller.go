package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmcall/quizden/internal/controller"
	"github.com/hmcall/quizden/internal/dto"
	"github.com/hmcall/quizden/internal/service"
	"github.com/rs/zerolog/log"
)

// userIDHeader carries the authenticated user identity set by the gateway.
const userIDHeader = "X-User-ID"

type AnswerController struct {
	submissionService service.SubmissionService
	answerService     service.AnswerService
}

func NewAnswerController(submissionService service.SubmissionService, answerService service.AnswerService) *AnswerController {
	return &AnswerController{submissionService: submissionService, answerService: answerService}
}

// SubmitAnswer godoc
// @Summary Submit an answer for an open game
// @Description Consumes one of the caller's unused chances and resolves it against the game's secret answer.
// @Tags Answers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Authenticated user ID"
// @Param submission body dto.SubmitAnswerRequest true "Game and answer text"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or missing identity"
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Failure 409 {object} dto.ErrorResponse "Game closed, or no chance available"
// @Router /answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	userID := ctx.GetHeader(userIDHeader)
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing " + userIDHeader + " header"})
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.submissionService.Submit(req.GameID, userID, req.Answer)
	if err != nil {
		log.Warn().Err(err).Str("gameID", req.GameID).Str("userID", userID).Msg("SubmitAnswer: submission rejected")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// GetAnswer godoc
// @Summary Get a single answer
// @Tags Answers
// @Produce json
// @Param answer_id path string true "Answer ID"
// @Success 200 {object} dto.AnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /answers/{answer_id} [get]
func (c *AnswerController) GetAnswer(ctx *gin.Context) {
	answer, err := c.answerService.GetAnswer(ctx.Param("answer_id"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// GetAnswersByGame godoc
// @Summary List all answers of a game
// @Tags Answers
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {array} dto.AnswerResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answers/game/{game_id} [get]
func (c *AnswerController) GetAnswersByGame(ctx *gin.Context) {
	answers, err := c.answerService.GetAnswersByGame(ctx.Param("game_id"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetAnswersByUser godoc
// @Summary List a user's answers
// @Description Users may only list their own answers.
// @Tags Answers
// @Produce json
// @Param X-User-ID header string true "Authenticated user ID"
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.AnswerResponse
// @Failure 403 {object} dto.ErrorResponse "Answers belong to another user"
// @Router /answers/user/{user_id} [get]
func (c *AnswerController) GetAnswersByUser(ctx *gin.Context) {
	targetID := ctx.Param("user_id")
	if ctx.GetHeader(userIDHeader) != targetID {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You can only view your own answers"})
		return
	}

	answers, err := c.answerService.GetAnswersByUser(targetID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}
