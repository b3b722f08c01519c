package progress

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pantryrun/internal/repositories/progress Repository

import (
	"context"

	"github.com/KirkDiggler/pantryrun/internal/models"
)

// Repository defines the interface for run checkpoint and high-score persistence
type Repository interface {
	// SaveProgress writes a checkpoint for a run, replacing any earlier one
	SaveProgress(ctx context.Context, input *SaveProgressInput) error

	// GetProgress retrieves the checkpoint for a run
	GetProgress(ctx context.Context, input *GetProgressInput) (*models.Progress, error)

	// DeleteProgress removes the checkpoint for a run
	DeleteProgress(ctx context.Context, input *DeleteProgressInput) error

	// RecordHighScore adds a finished run to the high-score table
	RecordHighScore(ctx context.Context, input *RecordHighScoreInput) error

	// GetHighScores returns the best runs, highest total first
	GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error)
}
