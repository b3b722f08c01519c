package messaging

import (
	"context"
	"errors"

	"github.com/leonelquinteros/gotext"

	"github.com/KirkDiggler/pantryrun/internal/dice"
	"github.com/KirkDiggler/pantryrun/internal/models"
)

// service implements the Service interface
type service struct {
	tone MessageTone

	// Picks flavor lines
	roller *dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	tone := ToneNeutral
	var seed int64
	if config != nil {
		if config.DefaultTone != "" {
			tone = config.DefaultTone
		}
		seed = config.Seed
	}

	return &service{
		tone:   tone,
		roller: dice.New(&dice.Config{Seed: seed}),
	}, nil
}

// GetCollectedMessage returns the message logged when an item is picked up
func (s *service) GetCollectedMessage(ctx context.Context, input *GetCollectedMessageInput) (*GetCollectedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Category == models.CategoryKeyCard {
		return &GetCollectedMessageOutput{
			Message: gotext.Get("You have collected a Key Card."),
		}, nil
	}

	return &GetCollectedMessageOutput{
		Message: gotext.Get("Collected item worth: %d points!", input.Points),
	}, nil
}

// GetEventMessage returns the announcement text for a run milestone
func (s *service) GetEventMessage(ctx context.Context, input *GetEventMessageInput) (*GetEventMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = s.tone
	}

	// The first line of each set is the neutral one
	var messages []string
	switch input.Kind {
	case models.EventKeycardsComplete:
		messages = []string{
			gotext.Get("All keycards collected. Timer stopped."),
			gotext.Get("Every keycard in hand. The clock can wait."),
			gotext.Get("Keycards complete! Time stands still."),
		}
	case models.EventDoorOpened:
		messages = []string{
			gotext.Get("You have successfully entered %s.", input.DoorID),
			gotext.Get("%s swings open. Mind the draft.", input.DoorID),
			gotext.Get("Beep. Click. %s is open.", input.DoorID),
		}
	case models.EventTimerExpired:
		messages = []string{
			gotext.Get("Timer ended!"),
			gotext.Get("Out of time! The pantry closes."),
			gotext.Get("Time's up. The cheese has gone stale."),
		}
	case models.EventRespawned:
		messages = []string{
			gotext.Get("Respawning player. Lives left: %d", input.Lives),
			gotext.Get("Back from the lava with %d lives to spare.", input.Lives),
			gotext.Get("Slightly toasted. %d lives left.", input.Lives),
		}
	case models.EventGameReset:
		messages = []string{
			gotext.Get("Out of lives. Restarting game."),
			gotext.Get("That was the last life. From the top!"),
			gotext.Get("Game over, man. Game over. Starting again."),
		}
	case models.EventGoalReached:
		messages = []string{
			gotext.Get("%s reached the goal with %d points!", input.PlayerName, input.Total),
			gotext.Get("Congratulations %s! %d points banked.", input.PlayerName, input.Total),
			gotext.Get("%s made it out of the pantry with %d points.", input.PlayerName, input.Total),
		}
	default:
		return nil, errors.New("unknown event kind")
	}

	message := messages[0]
	if tone == ToneFunny {
		message = dice.Pick(s.roller, messages)
	}

	return &GetEventMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}
