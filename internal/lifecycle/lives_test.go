package lifecycle

import (
	"testing"

	"github.com/KirkDiggler/pantryrun/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDieRespawnsThenResets(t *testing.T) {
	l := New(3)

	assert.Equal(t, models.DeathOutcomeRespawned, l.Die())
	assert.Equal(t, 2, l.Lives())
	assert.Equal(t, models.DeathOutcomeRespawned, l.Die())
	assert.Equal(t, 1, l.Lives())

	assert.Equal(t, models.DeathOutcomeReset, l.Die())
	assert.Equal(t, 3, l.Lives())
}

func TestSingleLifeAlwaysResets(t *testing.T) {
	l := New(1)

	assert.Equal(t, models.DeathOutcomeReset, l.Die())
	assert.Equal(t, 1, l.Lives())
}

func TestDefaultLives(t *testing.T) {
	assert.Equal(t, DefaultLives, New(0).Lives())
	assert.Equal(t, DefaultLives, New(-4).Starting())
}

func TestRestoreClamps(t *testing.T) {
	l := New(3)

	l.Restore(2)
	assert.Equal(t, 2, l.Lives())
	l.Restore(9)
	assert.Equal(t, 3, l.Lives())
	l.Restore(0)
	assert.Equal(t, 1, l.Lives())

	l.Reset()
	assert.Equal(t, 3, l.Lives())
}
