package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmcall/quizden/internal/controller"
	"github.com/hmcall/quizden/internal/dto"
	"github.com/hmcall/quizden/internal/service"
	"github.com/rs/zerolog/log"
)

type GameController struct {
	gameService   service.GameService
	chanceService service.ChanceService
}

func NewGameController(gameService service.GameService, chanceService service.ChanceService) *GameController {
	return &GameController{gameService: gameService, chanceService: chanceService}
}

// CreateGame godoc
// @Summary (Admin) Create a new game
// @Description Creates a quiz round in DRAFT status with its secret answer.
// @Tags Admin - Games
// @Accept json
// @Produce json
// @Param game_data body dto.CreateGameRequest true "Game creation data"
// @Success 201 {object} dto.GameResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/games [post]
func (c *GameController) CreateGame(ctx *gin.Context) {
	var req dto.CreateGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateGame: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	game, err := c.gameService.CreateGame(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateGame: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary (Admin) Update game metadata
// @Description Updates title, description, question, secret answer or links of a game. Omitted fields keep their value.
// @Tags Admin - Games
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param game_data body dto.UpdateGameRequest true "Fields to update"
// @Success 200 {object} dto.GameResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Router /admin/games/{game_id} [put]
func (c *GameController) UpdateGame(ctx *gin.Context) {
	var req dto.UpdateGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	game, err := c.gameService.UpdateGame(ctx.Param("game_id"), req)
	if err != nil {
		log.Error().Err(err).Str("gameID", ctx.Param("game_id")).Msg("Admin UpdateGame: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, game)
}

// OpenGame godoc
// @Summary (Admin) Open a game for submissions
// @Description Transitions a DRAFT game to OPEN.
// @Tags Admin - Games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} dto.GameResponse
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Failure 409 {object} dto.ErrorResponse "Game is not in DRAFT status"
// @Router /admin/games/{game_id}/open [post]
func (c *GameController) OpenGame(ctx *gin.Context) {
	game, err := c.gameService.OpenGame(ctx.Request.Context(), ctx.Param("game_id"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, game)
}

// CloseGame godoc
// @Summary (Admin) Close a game
// @Description Transitions an OPEN game to CLOSED and enqueues the asynchronous score job.
// @Tags Admin - Games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} dto.GameResponse
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Failure 409 {object} dto.ErrorResponse "Game is not OPEN"
// @Router /admin/games/{game_id}/close [post]
func (c *GameController) CloseGame(ctx *gin.Context) {
	game, err := c.gameService.CloseGame(ctx.Request.Context(), ctx.Param("game_id"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, game)
}

// RescoreGame godoc
// @Summary (Admin) Re-enqueue the score job of a closed game
// @Description Manual replay for score jobs lost to worker failures. Scoring overwrites points, so replaying is safe.
// @Tags Admin - Games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 202 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Failure 409 {object} dto.ErrorResponse "Game is not CLOSED"
// @Router /admin/games/{game_id}/rescore [post]
func (c *GameController) RescoreGame(ctx *gin.Context) {
	gameID := ctx.Param("game_id")
	if err := c.gameService.RequeueScore(ctx.Request.Context(), gameID); err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, gin.H{"game_id": gameID, "status": "rescore enqueued"})
}

// AllocateChances godoc
// @Summary (Admin) Allocate answer chances
// @Description Creates the given number of NOT_USED answer slots per user for a game. Repeated calls add more chances.
// @Tags Admin - Games
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param allocation body dto.AllocateChancesRequest true "Users and chance count"
// @Success 201 {object} map[string]int
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/games/{game_id}/chances [post]
func (c *GameController) AllocateChances(ctx *gin.Context) {
	var req dto.AllocateChancesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin AllocateChances: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answers, err := c.chanceService.Allocate(ctx.Param("game_id"), req.UserIDs, req.Count)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"allocated": len(answers)})
}
