package presenter

import (
	"github.com/KirkDiggler/pantryrun/internal/models"
)

type multi []Presenter

// Multi fans every call out to each non-nil presenter in order
func Multi(presenters ...Presenter) Presenter {
	m := make(multi, 0, len(presenters))
	for _, p := range presenters {
		if p != nil {
			m = append(m, p)
		}
	}
	return m
}

func (m multi) ShowScore(board *models.Scoreboard) {
	for _, p := range m {
		p.ShowScore(board)
	}
}

func (m multi) ShowLives(lives int) {
	for _, p := range m {
		p.ShowLives(lives)
	}
}

func (m multi) ShowTimer(remaining float64) {
	for _, p := range m {
		p.ShowTimer(remaining)
	}
}

func (m multi) ShowMessage(text string) {
	for _, p := range m {
		p.ShowMessage(text)
	}
}

func (m multi) HideMessage() {
	for _, p := range m {
		p.HideMessage()
	}
}

func (m multi) ShowCongrats(total int) {
	for _, p := range m {
		p.ShowCongrats(total)
	}
}

func (m multi) HideCongrats() {
	for _, p := range m {
		p.HideCongrats()
	}
}

func (m multi) Announce(event *models.Event) {
	for _, p := range m {
		p.Announce(event)
	}
}

// Nop discards everything
type Nop struct{}

func (Nop) ShowScore(*models.Scoreboard) {}
func (Nop) ShowLives(int)                {}
func (Nop) ShowTimer(float64)            {}
func (Nop) ShowMessage(string)           {}
func (Nop) HideMessage()                 {}
func (Nop) ShowCongrats(int)             {}
func (Nop) HideCongrats()                {}
func (Nop) Announce(*models.Event)       {}
