package messaging

import (
	"github.com/KirkDiggler/pantryrun/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral always returns the plain message
	ToneNeutral MessageTone = "neutral"

	// ToneFunny picks a random flavor line
	ToneFunny MessageTone = "funny"
)

// GetCollectedMessageInput contains parameters for a pickup message
type GetCollectedMessageInput struct {
	// Category is what was picked up
	Category models.Category

	// Points is what the pickup was worth
	Points int
}

// GetCollectedMessageOutput contains the pickup message
type GetCollectedMessageOutput struct {
	Message string
}

// GetEventMessageInput contains parameters for a milestone message
type GetEventMessageInput struct {
	// Kind is the milestone
	Kind models.EventKind

	// PlayerName is the display name of the player
	PlayerName string

	// DoorID names the door for door events
	DoorID string

	// Lives is the lives left, used by respawn events
	Lives int

	// Total is the score total, used by goal events
	Total int

	// Tone overrides the service default when set
	Tone MessageTone
}

// GetEventMessageOutput contains the milestone message
type GetEventMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// DefaultTone is used when a request does not set one, neutral if empty
	DefaultTone MessageTone

	// Seed fixes the flavor line selection, zero seeds from the clock
	Seed int64
}
