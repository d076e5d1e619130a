package main

import (
	"context"

	"github.com/hmcall/quizden/config"
	"github.com/hmcall/quizden/database"
	"github.com/hmcall/quizden/internal/logger"
	"github.com/hmcall/quizden/internal/queue"
	"github.com/hmcall/quizden/internal/repository"
	"github.com/hmcall/quizden/internal/service"
	"github.com/hmcall/quizden/internal/worker"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// The score worker runs as its own process so scoring latency never competes
// with request handling, and so it can be restarted independently.
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			queue.NewRedisClient,
			queue.NewScoreJobQueue,
		),

		fx.Provide(
			repository.NewGameRepository,
			repository.NewUserRepository,
			repository.NewAnswerRepository,
		),

		fx.Provide(
			service.NewScoringService,
			service.NewAggregationService,
			worker.NewScoreWorker,
		),

		fx.Invoke(RunWorker),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start score worker")
	}

	<-app.Done()
	log.Info().Msg("Score worker shutting down gracefully...")
}

// RunWorker ties the worker loop to the fx lifecycle. On shutdown the loop's
// context is canceled and we wait for the in-flight job to finish.
func RunWorker(lc fx.Lifecycle, w *worker.ScoreWorker) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				w.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
