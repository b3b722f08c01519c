package player

import (
	"log"
	"time"

	"github.com/KirkDiggler/pantryrun/internal/common/clock"
	"github.com/KirkDiggler/pantryrun/internal/common/uuid"
	"github.com/KirkDiggler/pantryrun/internal/countdown"
	"github.com/KirkDiggler/pantryrun/internal/door"
	"github.com/KirkDiggler/pantryrun/internal/models"
	"github.com/KirkDiggler/pantryrun/internal/presenter"
	progressRepo "github.com/KirkDiggler/pantryrun/internal/repositories/progress"
	"github.com/KirkDiggler/pantryrun/internal/services/messaging"
)

const (
	// DefaultPlayerName is used when no name is configured
	DefaultPlayerName = "Player"

	// DefaultMoveSpeed is the starting move speed
	DefaultMoveSpeed = 5.0

	// DefaultJumpHeight is the starting jump height
	DefaultJumpHeight = 2.0
)

// Config holds configuration for the player service
type Config struct {
	// PlayerName is the display name used on the high-score table
	PlayerName string

	// ScoreRules sets the points per category, nil means the defaults
	ScoreRules models.ScoreRules

	// RequiredKeycards is the keycard count that stops the countdown
	RequiredKeycards int

	// StartingLives is the number of lives per run
	StartingLives int

	// Doors lists the keycard doors in the level
	Doors []door.Config

	// Spawn is where the player starts and restarts
	Spawn models.Vector3

	// RespawnPoint is where the player respawns after losing a life, nil
	// means Spawn
	RespawnPoint *models.Vector3

	// MoveSpeed and JumpHeight are the starting movement stats
	MoveSpeed  float64
	JumpHeight float64

	// Timer is the shared countdown. The service starts, stops, resets and
	// ticks it but does not own it.
	Timer *countdown.Timer

	// TimerDuration sizes a private countdown when Timer is nil
	TimerDuration float64

	// Collaborators
	ProgressRepo  progressRepo.Repository
	Messaging     messaging.Service
	Presenter     presenter.Presenter
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *log.Logger
}

// CollectInput contains parameters for collecting an item
type CollectInput struct {
	// Category is what was picked up
	Category models.Category

	// Points overrides the configured rule, used for golf balls that carry
	// their own value
	Points *int
}

// CollectOutput contains the result of collecting an item
type CollectOutput struct {
	// Total is the score total after the award
	Total int

	// Keycards is the keycard count after the award
	Keycards int

	// Unlocked reports whether the required keycards are in hand
	Unlocked bool

	// Ignored is set when the category is not recognised
	Ignored bool

	// Message is the pickup message
	Message string
}

// DieInput contains parameters for a death
type DieInput struct{}

// DieOutput contains the result of a death
type DieOutput struct {
	// Outcome says whether the player respawned or the run restarted
	Outcome models.DeathOutcome

	// Lives is the lives left after the death
	Lives int

	// Position is where the engine should move the player
	Position models.Vector3
}

// ArriveAtDoorInput contains parameters for reaching a door
type ArriveAtDoorInput struct {
	DoorID string
}

// ArriveAtDoorOutput contains the result of reaching a door
type ArriveAtDoorOutput struct {
	// Opened is set when the door opened on this arrival
	Opened bool

	// Denied is set when the player lacked keycards
	Denied bool

	// Message is the text shown on a denied arrival
	Message string
}

// ReachGoalInput contains parameters for reaching the goal platform
type ReachGoalInput struct{}

// ReachGoalOutput contains the result of reaching the goal platform
type ReachGoalOutput struct {
	Total int
}

// CloseGoalInput contains parameters for closing the congratulations panel
type CloseGoalInput struct{}

// CloseGoalOutput contains the result of closing the congratulations panel
type CloseGoalOutput struct{}

// BoostInput contains parameters for raising a movement stat
type BoostInput struct {
	Stat   models.Stat
	Amount float64
}

// BoostOutput contains the movement stats after a boost
type BoostOutput struct {
	MoveSpeed  float64
	JumpHeight float64
}

// TickInput contains parameters for advancing one frame
type TickInput struct {
	// Delta is the elapsed time since the previous frame, in seconds
	Delta float64
}

// TickOutput contains the timer state after a frame
type TickOutput struct {
	Remaining  float64
	TimerState models.TimerState

	// Expired is set on the frame the countdown ran out
	Expired bool
}

// GetStatusInput contains parameters for reading the HUD values
type GetStatusInput struct{}

// GetStatusOutput contains the HUD values
type GetStatusOutput struct {
	RunID            string
	PlayerName       string
	Scoreboard       *models.Scoreboard
	Keycards         int
	RequiredKeycards int
	Lives            int
	Remaining        float64
	TimerState       models.TimerState
	OpenedDoors      []string
	CongratsVisible  bool
	MoveSpeed        float64
	JumpHeight       float64
}

// SaveProgressInput contains parameters for writing a checkpoint
type SaveProgressInput struct{}

// SaveProgressOutput contains the result of writing a checkpoint
type SaveProgressOutput struct {
	RunID   string
	SavedAt time.Time
}

// LoadProgressInput contains parameters for restoring a checkpoint
type LoadProgressInput struct {
	// RunID selects the checkpoint, empty means the current run
	RunID string
}

// LoadProgressOutput contains the restored HUD values
type LoadProgressOutput struct {
	Status *GetStatusOutput
}

// GetHighScoresInput contains parameters for reading the high-score table
type GetHighScoresInput struct {
	Limit int
}

// GetHighScoresOutput contains the high-score table
type GetHighScoresOutput struct {
	Scores []*models.HighScore
}
