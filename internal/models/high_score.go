package models

// HighScore is one entry on the high-score table
type HighScore struct {
	// RunID is the run that set the score
	RunID string

	// PlayerName is the display name of the player
	PlayerName string

	// Total is the final score total
	Total int
}
