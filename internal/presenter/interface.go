package presenter

import (
	"github.com/KirkDiggler/pantryrun/internal/models"
)

// Presenter receives plain values for a UI layer to draw
//
//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/pantryrun/internal/presenter Presenter
type Presenter interface {
	// ShowScore redraws the score panel
	ShowScore(board *models.Scoreboard)

	// ShowLives redraws the lives counter
	ShowLives(lives int)

	// ShowTimer redraws the countdown with the seconds left
	ShowTimer(remaining float64)

	// ShowMessage puts a message on the message panel
	ShowMessage(text string)

	// HideMessage clears the message panel
	HideMessage()

	// ShowCongrats opens the congratulations panel
	ShowCongrats(total int)

	// HideCongrats closes the congratulations panel
	HideCongrats()

	// Announce reports a run milestone
	Announce(event *models.Event)
}
