package progress

import "github.com/KirkDiggler/pantryrun/internal/models"

// SaveProgressInput contains parameters for saving a checkpoint
type SaveProgressInput struct {
	Progress *models.Progress
}

// GetProgressInput contains parameters for retrieving a checkpoint
type GetProgressInput struct {
	RunID string
}

// DeleteProgressInput contains parameters for deleting a checkpoint
type DeleteProgressInput struct {
	RunID string
}

// RecordHighScoreInput contains parameters for recording a high score
type RecordHighScoreInput struct {
	Score *models.HighScore
}

// GetHighScoresInput contains parameters for reading the high-score table
type GetHighScoresInput struct {
	// Limit caps the number of entries, zero means the default of 10
	Limit int
}

// GetHighScoresOutput contains the high-score table
type GetHighScoresOutput struct {
	Scores []*models.HighScore
}
