// Package lifecycle counts the player's lives.
package lifecycle

import (
	"github.com/KirkDiggler/pantryrun/internal/models"
)

// DefaultLives is the number of lives a run starts with
const DefaultLives = 3

// Lives is the lives counter for one player
type Lives struct {
	starting int
	lives    int
}

// New creates a counter holding starting lives. Values below one fall back
// to DefaultLives.
func New(starting int) *Lives {
	if starting < 1 {
		starting = DefaultLives
	}
	return &Lives{
		starting: starting,
		lives:    starting,
	}
}

// Die spends a life. With more than one life left the player respawns;
// losing the last life refills the counter and reports a reset, leaving the
// caller to clear the rest of the run.
func (l *Lives) Die() models.DeathOutcome {
	if l.lives > 1 {
		l.lives--
		return models.DeathOutcomeRespawned
	}

	l.lives = l.starting
	return models.DeathOutcomeReset
}

// Lives returns the lives left
func (l *Lives) Lives() int {
	return l.lives
}

// Starting returns the configured starting lives
func (l *Lives) Starting() int {
	return l.starting
}

// Reset refills the counter
func (l *Lives) Reset() {
	l.lives = l.starting
}

// Restore sets the lives left, clamped to [1, starting]
func (l *Lives) Restore(lives int) {
	switch {
	case lives < 1:
		lives = 1
	case lives > l.starting:
		lives = l.starting
	}
	l.lives = lives
}
