package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmcall/quizden/internal/controller"
	"github.com/hmcall/quizden/internal/dto"
	"github.com/hmcall/quizden/internal/model"
	"github.com/hmcall/quizden/internal/service"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type GameController struct {
	gameService    service.GameService
	rankingService service.RankingService
}

func NewGameController(gameService service.GameService, rankingService service.RankingService) *GameController {
	return &GameController{gameService: gameService, rankingService: rankingService}
}

// GetGames godoc
// @Summary List games
// @Description Lists games, optionally filtered by status (draft, open, closed). Secret answers are not included.
// @Tags Games
// @Produce json
// @Param status query string false "Status filter" Enums(draft, open, closed)
// @Success 200 {array} dto.GamePublicResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Router /games [get]
func (c *GameController) GetGames(ctx *gin.Context) {
	var status *model.GameStatus
	if raw := ctx.Query("status"); raw != "" {
		parsed, ok := parseGameStatus(raw)
		if !ok {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unknown game status: " + raw})
			return
		}
		status = &parsed
	}

	games, err := c.gameService.GetGames(status)
	if err != nil {
		log.Error().Err(err).Msg("GetGames: service error")
		controller.WriteError(ctx, err)
		return
	}

	public := make([]dto.GamePublicResponse, 0, len(games))
	for i := range games {
		var p dto.GamePublicResponse
		copier.Copy(&p, &games[i])
		public = append(public, p)
	}
	ctx.JSON(http.StatusOK, public)
}

// GetGame godoc
// @Summary Get a game
// @Tags Games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} dto.GamePublicResponse
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Router /games/{game_id} [get]
func (c *GameController) GetGame(ctx *gin.Context) {
	game, err := c.gameService.GetGame(ctx.Param("game_id"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}

	var public dto.GamePublicResponse
	copier.Copy(&public, game)
	ctx.JSON(http.StatusOK, public)
}

// GetCurrentGame godoc
// @Summary Get the most recent game
// @Tags Games
// @Produce json
// @Success 200 {object} dto.GamePublicResponse
// @Failure 404 {object} dto.ErrorResponse "No games exist"
// @Router /games/current [get]
func (c *GameController) GetCurrentGame(ctx *gin.Context) {
	game, err := c.gameService.GetCurrentGame()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}

	var public dto.GamePublicResponse
	copier.Copy(&public, game)
	ctx.JSON(http.StatusOK, public)
}

// GetGameRanking godoc
// @Summary Get a game's solver leaderboard
// @Description Correct solvers ordered by solve time, limited to the top ten. Exposes nickname and awarded points only.
// @Tags Games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {array} dto.RankingEntryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /games/{game_id}/ranking [get]
func (c *GameController) GetGameRanking(ctx *gin.Context) {
	entries, err := c.rankingService.TopForGame(ctx.Param("game_id"))
	if err != nil {
		log.Error().Err(err).Str("gameID", ctx.Param("game_id")).Msg("GetGameRanking: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

func parseGameStatus(raw string) (model.GameStatus, bool) {
	switch raw {
	case "draft", "DRAFT":
		return model.GameStatusDraft, true
	case "open", "OPEN":
		return model.GameStatusOpen, true
	case "closed", "CLOSED":
		return model.GameStatusClosed, true
	}
	return "", false
}
