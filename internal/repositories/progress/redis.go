package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/pantryrun/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	progressKeyPrefix = "progress:"
	runNameKeyPrefix  = "run_name:"
	highScoresKey     = "high_scores"

	defaultHighScoreLimit = 10
)

// ErrProgressNotFound is returned when a run has no checkpoint
var ErrProgressNotFound = errors.New("progress not found")

// Config holds configuration for the Redis progress repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed progress repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveProgress persists a checkpoint to Redis
func (r *redisRepository) SaveProgress(ctx context.Context, input *SaveProgressInput) error {
	if input == nil || input.Progress == nil {
		return errors.New("input and progress cannot be nil")
	}

	p := input.Progress
	if p.RunID == "" {
		return errors.New("run ID cannot be empty")
	}

	progressJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := r.client.Set(ctx, progressKeyPrefix+p.RunID, progressJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	return nil
}

// GetProgress retrieves a checkpoint from Redis
func (r *redisRepository) GetProgress(ctx context.Context, input *GetProgressInput) (*models.Progress, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.New("input and run ID cannot be empty")
	}

	progressJSON, err := r.client.Get(ctx, progressKeyPrefix+input.RunID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	var p models.Progress
	if err := json.Unmarshal([]byte(progressJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	return &p, nil
}

// DeleteProgress removes a checkpoint from Redis
func (r *redisRepository) DeleteProgress(ctx context.Context, input *DeleteProgressInput) error {
	if input == nil || input.RunID == "" {
		return errors.New("input and run ID cannot be empty")
	}

	if err := r.client.Del(ctx, progressKeyPrefix+input.RunID).Err(); err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}

	return nil
}

// RecordHighScore adds a run to the high-score sorted set. A run keeps its
// best total only.
func (r *redisRepository) RecordHighScore(ctx context.Context, input *RecordHighScoreInput) error {
	if input == nil || input.Score == nil {
		return errors.New("input and score cannot be nil")
	}

	score := input.Score
	if score.RunID == "" {
		return errors.New("run ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.ZAddGT(ctx, highScoresKey, redis.Z{
		Score:  float64(score.Total),
		Member: score.RunID,
	})
	pipe.Set(ctx, runNameKeyPrefix+score.RunID, score.PlayerName, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record high score: %w", err)
	}

	return nil
}

// GetHighScores reads the top of the high-score sorted set
func (r *redisRepository) GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error) {
	limit := defaultHighScoreLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, highScoresKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get high scores: %w", err)
	}

	if len(entries) == 0 {
		return &GetHighScoresOutput{
			Scores: []*models.HighScore{},
		}, nil
	}

	// Look up display names in one round trip
	pipe := r.client.Pipeline()
	nameCommands := make([]*redis.StringCmd, len(entries))
	for i, entry := range entries {
		runID, _ := entry.Member.(string)
		nameCommands[i] = pipe.Get(ctx, runNameKeyPrefix+runID)
	}

	// redis.Nil from a missing name is expected and handled per command
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get run names: %w", err)
	}

	scores := make([]*models.HighScore, 0, len(entries))
	for i, entry := range entries {
		runID, _ := entry.Member.(string)
		name, err := nameCommands[i].Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("failed to get name for run %s: %w", runID, err)
		}

		scores = append(scores, &models.HighScore{
			RunID:      runID,
			PlayerName: name,
			Total:      int(entry.Score),
		})
	}

	return &GetHighScoresOutput{
		Scores: scores,
	}, nil
}
