package worker

import (
	"context"
	"time"

	"github.com/hmcall/quizden/internal/queue"
	"github.com/hmcall/quizden/internal/service"
	"github.com/rs/zerolog/log"
)

// errorBackoff paces the loop after a queue failure so a dead Redis does not
// spin the worker.
const errorBackoff = 5 * time.Second

// ScoreWorker drains the score job queue: for every closed game it computes
// rank-decayed answer points and folds them into user totals. Jobs that fail
// mid-processing are logged with their game id and dropped; scoring is an
// idempotent overwrite, so the admin rescore endpoint replays them safely.
type ScoreWorker struct {
	jobQueue    queue.ScoreJobQueue
	scoring     service.ScoringService
	aggregation service.AggregationService
}

func NewScoreWorker(jobQueue queue.ScoreJobQueue, scoring service.ScoringService, aggregation service.AggregationService) *ScoreWorker {
	return &ScoreWorker{
		jobQueue:    jobQueue,
		scoring:     scoring,
		aggregation: aggregation,
	}
}

// Run blocks until ctx is canceled. The blocking pop is bounded by the queue
// timeout, so cancellation is observed between jobs; a job already being
// processed is finished before Run returns.
func (w *ScoreWorker) Run(ctx context.Context) {
	log.Info().Msg("Score worker started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Score worker stopped")
			return
		default:
		}

		job, err := w.jobQueue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("Score worker stopped")
				return
			}
			log.Error().Err(err).Msg("Score worker failed to dequeue, backing off")
			select {
			case <-ctx.Done():
			case <-time.After(errorBackoff):
			}
			continue
		}
		if job == nil {
			// Queue stayed empty for the whole timeout.
			continue
		}

		w.process(job.GameID)
	}
}

func (w *ScoreWorker) process(gameID string) {
	log.Info().Str("gameID", gameID).Msg("Processing score job")

	if err := w.scoring.ComputeGameScores(gameID); err != nil {
		log.Error().Err(err).Str("gameID", gameID).Msg("Score computation failed, job dropped")
		return
	}
	if err := w.aggregation.RecomputeUserTotals(gameID); err != nil {
		log.Error().Err(err).Str("gameID", gameID).Msg("User total aggregation failed, job dropped")
		return
	}

	log.Info().Str("gameID", gameID).Msg("Score job completed")
}
