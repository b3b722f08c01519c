package player

import "context"

// Service drives one player's run. It is not safe for concurrent use; call
// it from the frame loop only.
type Service interface {
	// Collect awards a pickup to the player
	Collect(ctx context.Context, input *CollectInput) (*CollectOutput, error)

	// Die spends a life, restarting the run when the last one is lost
	Die(ctx context.Context, input *DieInput) (*DieOutput, error)

	// ArriveAtDoor tries to open a keycard door
	ArriveAtDoor(ctx context.Context, input *ArriveAtDoorInput) (*ArriveAtDoorOutput, error)

	// ReachGoal shows the congratulations panel and records the score
	ReachGoal(ctx context.Context, input *ReachGoalInput) (*ReachGoalOutput, error)

	// CloseGoal hides the congratulations panel
	CloseGoal(ctx context.Context, input *CloseGoalInput) (*CloseGoalOutput, error)

	// Boost raises a movement stat
	Boost(ctx context.Context, input *BoostInput) (*BoostOutput, error)

	// Tick advances the countdown and message timers by one frame
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// GetStatus returns the values a HUD needs
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// SaveProgress writes a checkpoint of the run
	SaveProgress(ctx context.Context, input *SaveProgressInput) (*SaveProgressOutput, error)

	// LoadProgress restores a checkpoint
	LoadProgress(ctx context.Context, input *LoadProgressInput) (*LoadProgressOutput, error)

	// GetHighScores returns the best finished runs
	GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error)
}
