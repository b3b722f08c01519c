// Package door models keycard doors. A door opens once and stays open;
// arrivals without enough keycards show a message that hides itself.
package door

import (
	"github.com/KirkDiggler/pantryrun/internal/common/delay"
)

const (
	// DefaultMessage is shown when the player lacks keycards
	DefaultMessage = "You need a keycard to open this door."

	// DefaultMessageDuration is how long the message stays up, in seconds
	DefaultMessageDuration = 2.0

	// DefaultRequiredKeycards is the keycard count a door asks for
	DefaultRequiredKeycards = 1
)

// Result is the outcome of an arrival at a door
type Result int

const (
	// ResultIgnored means the door was already open
	ResultIgnored Result = iota

	// ResultOpened means the door just opened
	ResultOpened

	// ResultDenied means the player lacked keycards and the message was shown
	ResultDenied
)

// Checker reports whether enough keycards have been collected
type Checker interface {
	IsUnlocked(threshold int) bool
}

// Config describes one door
type Config struct {
	// ID identifies the door in arrival events
	ID string

	// RequiredKeycards is the keycard count this door needs. Zero opens the
	// door without keycards; a negative value takes DefaultRequiredKeycards.
	RequiredKeycards int

	// Message is shown on a denied arrival
	Message string

	// MessageDuration is how long the message stays visible, in seconds
	MessageDuration float64
}

// Door is a single keycard door
type Door struct {
	id       string
	required int
	message  string
	duration float64

	opened  bool
	visible bool
	hide    delay.Delay
}

// New creates a closed door. An empty message or non-positive duration takes
// the default, as does a negative keycard count.
func New(cfg Config) *Door {
	d := &Door{
		id:       cfg.ID,
		required: cfg.RequiredKeycards,
		message:  cfg.Message,
		duration: cfg.MessageDuration,
	}
	if d.required < 0 {
		d.required = DefaultRequiredKeycards
	}
	if d.message == "" {
		d.message = DefaultMessage
	}
	if d.duration <= 0 {
		d.duration = DefaultMessageDuration
	}
	return d
}

// Arrive handles the player reaching the door
func (d *Door) Arrive(keys Checker) Result {
	if d.opened {
		return ResultIgnored
	}

	if keys != nil && keys.IsUnlocked(d.required) {
		d.opened = true
		return ResultOpened
	}

	d.visible = true
	d.hide.Arm(d.duration)
	return ResultDenied
}

// Tick advances the message timer and reports whether the message was
// hidden on this tick
func (d *Door) Tick(dt float64) bool {
	if !d.hide.Tick(dt) {
		return false
	}
	d.visible = false
	return true
}

// ID returns the door identifier
func (d *Door) ID() string {
	return d.id
}

// Opened reports whether the door has been opened
func (d *Door) Opened() bool {
	return d.opened
}

// Required returns the keycards this door needs
func (d *Door) Required() int {
	return d.required
}

// Message returns the denial message
func (d *Door) Message() string {
	return d.message
}

// MessageVisible reports whether the denial message is on screen
func (d *Door) MessageVisible() bool {
	return d.visible
}

// Restore marks the door open from a checkpoint
func (d *Door) Restore(opened bool) {
	d.opened = opened
	d.visible = false
	d.hide.Cancel()
}
