package models

// EventKind names a run milestone worth announcing
type EventKind string

const (
	EventKeycardsComplete EventKind = "keycards_complete"
	EventDoorOpened       EventKind = "door_opened"
	EventTimerExpired     EventKind = "timer_expired"
	EventRespawned        EventKind = "respawned"
	EventGameReset        EventKind = "game_reset"
	EventGoalReached      EventKind = "goal_reached"
)

// Event is a milestone announcement
type Event struct {
	Kind EventKind

	// RunID is the run the event belongs to
	RunID string

	// Text is the human readable message
	Text string
}
