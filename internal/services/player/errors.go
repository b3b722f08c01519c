package player

// PlayerError is a custom error type for player service errors
type PlayerError string

// Error implements the error interface
func (e PlayerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      PlayerError = "config cannot be nil"
	ErrNilInput       PlayerError = "input cannot be nil"
	ErrEmptyDoorID    PlayerError = "door ID cannot be empty"
	ErrDuplicateDoor  PlayerError = "door ID configured more than once"
	ErrUnknownStat    PlayerError = "unknown stat"
	ErrNoProgressRepo PlayerError = "progress repository not configured"
)
