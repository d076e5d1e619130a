package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hmcall/quizden/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ScoreJob identifies a closed game whose correct answers need scoring and
// whose solvers' totals need recomputing.
type ScoreJob struct {
	GameID string `json:"game_id"`
}

// ScoreJobQueue is a durable FIFO channel between the game-closing path and
// the score worker.
type ScoreJobQueue interface {
	Enqueue(ctx context.Context, job ScoreJob) error
	// Dequeue blocks up to the configured timeout and returns nil (no error)
	// when the queue stayed empty.
	Dequeue(ctx context.Context) (*ScoreJob, error)
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	log.Info().Str("addr", cfg.Redis.Host+":"+cfg.Redis.Port).Msg("Redis client created")
	return client
}

type redisScoreJobQueue struct {
	client  *redis.Client
	name    string
	timeout time.Duration
}

func NewScoreJobQueue(client *redis.Client, cfg *config.Config) ScoreJobQueue {
	return &redisScoreJobQueue{
		client:  client,
		name:    cfg.Redis.QueueName,
		timeout: cfg.Redis.QueueTimeout,
	}
}

func (q *redisScoreJobQueue) Enqueue(ctx context.Context, job ScoreJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshaling score job: %w", err)
	}
	if err := q.client.LPush(ctx, q.name, payload).Err(); err != nil {
		return fmt.Errorf("pushing score job to %s: %w", q.name, err)
	}
	log.Info().Str("gameID", job.GameID).Str("queue", q.name).Msg("Score job enqueued")
	return nil
}

func (q *redisScoreJobQueue) Dequeue(ctx context.Context) (*ScoreJob, error) {
	res, err := q.client.BRPop(ctx, q.timeout, q.name).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("popping score job from %s: %w", q.name, err)
	}
	// BRPop returns [key, value].
	var job ScoreJob
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, fmt.Errorf("decoding score job: %w", err)
	}
	return &job, nil
}
