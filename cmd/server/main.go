package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hmcall/quizden/config"
	"github.com/hmcall/quizden/database"
	_ "github.com/hmcall/quizden/docs" // Swagger docs - auto-generated
	adminctrl "github.com/hmcall/quizden/internal/controller/admin"
	userctrl "github.com/hmcall/quizden/internal/controller/user"
	"github.com/hmcall/quizden/internal/logger"
	"github.com/hmcall/quizden/internal/model"
	"github.com/hmcall/quizden/internal/queue"
	"github.com/hmcall/quizden/internal/repository"
	"github.com/hmcall/quizden/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quizden API
// @version 1.0
// @description Daily quiz platform: games with secret answers, per-user answer chances and rank-decayed scoring.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			queue.NewRedisClient,
			queue.NewScoreJobQueue,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewGameRepository,
			repository.NewUserRepository,
			repository.NewAnswerRepository,
		),

		// Services layer
		fx.Provide(
			service.NewGameService,
			service.NewChanceService,
			service.NewSubmissionService,
			service.NewAnswerService,
			service.NewRankingService,
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewGameController,
			userctrl.NewAnswerController,
			userctrl.NewGameController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires API routes and manages the HTTP server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminGameCtrl *adminctrl.GameController,
	answerCtrl *userctrl.AnswerController,
	gameCtrl *userctrl.GameController,
) {
	adminGroup := router.Group("/api/v1/admin")
	{
		games := adminGroup.Group("/games")
		games.POST("", adminGameCtrl.CreateGame)
		games.PUT("/:game_id", adminGameCtrl.UpdateGame)
		games.POST("/:game_id/open", adminGameCtrl.OpenGame)
		games.POST("/:game_id/close", adminGameCtrl.CloseGame)
		games.POST("/:game_id/rescore", adminGameCtrl.RescoreGame)
		games.POST("/:game_id/chances", adminGameCtrl.AllocateChances)
	}

	userGroup := router.Group("/api/v1")
	{
		userGroup.GET("/games", gameCtrl.GetGames)
		userGroup.GET("/games/current", gameCtrl.GetCurrentGame)
		userGroup.GET("/games/:game_id", gameCtrl.GetGame)
		userGroup.GET("/games/:game_id/ranking", gameCtrl.GetGameRanking)

		userGroup.POST("/answers", answerCtrl.SubmitAnswer)
		userGroup.GET("/answers/:answer_id", answerCtrl.GetAnswer)
		userGroup.GET("/answers/game/:game_id", answerCtrl.GetAnswersByGame)
		userGroup.GET("/answers/user/:user_id", answerCtrl.GetAnswersByUser)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quizden API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Game{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
