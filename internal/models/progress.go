package models

import (
	"time"
)

// DeathOutcome is what happened when the player died
type DeathOutcome string

const (
	// DeathOutcomeRespawned means a life was spent and the player respawns
	DeathOutcomeRespawned DeathOutcome = "respawned"

	// DeathOutcomeReset means the last life was lost and the run restarted
	DeathOutcomeReset DeathOutcome = "reset"
)

// TimerState is the state of the countdown timer
type TimerState string

const (
	TimerStateIdle    TimerState = "idle"
	TimerStateRunning TimerState = "running"
	TimerStateExpired TimerState = "expired"
)

// Stat is a movement stat that pickups can raise
type Stat string

const (
	StatMoveSpeed  Stat = "move_speed"
	StatJumpHeight Stat = "jump_height"
)

// Progress is a saved checkpoint of a run
type Progress struct {
	// RunID is the unique identifier for the run
	RunID string `json:"run_id"`

	// PlayerName is the display name of the player
	PlayerName string `json:"player_name"`

	// Scoreboard is the score ledger at save time
	Scoreboard *Scoreboard `json:"scoreboard"`

	// Keycards is the number of keycards collected
	Keycards int `json:"keycards"`

	// Lives is the number of lives left
	Lives int `json:"lives"`

	// Remaining is the countdown time left in seconds
	Remaining float64 `json:"remaining"`

	// TimerState is the countdown state at save time
	TimerState TimerState `json:"timer_state"`

	// OpenedDoors lists the IDs of doors already opened
	OpenedDoors []string `json:"opened_doors"`

	// MoveSpeed and JumpHeight carry boosts picked up so far
	MoveSpeed  float64 `json:"move_speed"`
	JumpHeight float64 `json:"jump_height"`

	// SavedAt is when the checkpoint was written
	SavedAt time.Time `json:"saved_at"`
}
