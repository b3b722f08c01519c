package door

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type keys int

func (k keys) IsUnlocked(threshold int) bool {
	return int(k) >= threshold
}

func TestOpensWithEnoughKeycards(t *testing.T) {
	d := New(Config{ID: "vault", RequiredKeycards: 2})

	assert.Equal(t, ResultOpened, d.Arrive(keys(2)))
	assert.True(t, d.Opened())
	assert.False(t, d.MessageVisible())
}

func TestOpenDoorIgnoresArrivals(t *testing.T) {
	d := New(Config{ID: "vault", RequiredKeycards: 1})
	d.Arrive(keys(1))

	assert.Equal(t, ResultIgnored, d.Arrive(keys(0)))
	assert.True(t, d.Opened())
	assert.False(t, d.MessageVisible())
}

func TestDeniedShowsMessageThenHides(t *testing.T) {
	d := New(Config{ID: "vault", RequiredKeycards: 1})

	assert.Equal(t, ResultDenied, d.Arrive(keys(0)))
	assert.False(t, d.Opened())
	assert.True(t, d.MessageVisible())
	assert.Equal(t, DefaultMessage, d.Message())

	assert.False(t, d.Tick(1.5))
	assert.True(t, d.MessageVisible())
	assert.True(t, d.Tick(0.5))
	assert.False(t, d.MessageVisible())
	assert.False(t, d.Tick(1))
}

func TestDeniedAgainRestartsMessageTimer(t *testing.T) {
	d := New(Config{ID: "vault", RequiredKeycards: 1, MessageDuration: 2})

	d.Arrive(keys(0))
	d.Tick(1.5)
	d.Arrive(keys(0))

	assert.False(t, d.Tick(1.5))
	assert.True(t, d.MessageVisible())
	assert.True(t, d.Tick(0.5))
}

func TestNilCheckerDenies(t *testing.T) {
	d := New(Config{ID: "vault"})
	assert.Equal(t, ResultDenied, d.Arrive(nil))
}

func TestZeroRequirementOpensImmediately(t *testing.T) {
	d := New(Config{ID: "lobby", RequiredKeycards: 0})
	assert.Equal(t, ResultOpened, d.Arrive(keys(0)))
}

func TestZeroValueConfigNeedsNoKeycards(t *testing.T) {
	d := New(Config{ID: "x"})

	assert.Equal(t, 0, d.Required())
	assert.Equal(t, ResultOpened, d.Arrive(keys(0)))
}

func TestDefaults(t *testing.T) {
	d := New(Config{ID: "x", RequiredKeycards: -1, Message: "", MessageDuration: 0})

	assert.Equal(t, DefaultRequiredKeycards, d.Required())
	assert.Equal(t, DefaultMessage, d.Message())
	d.Arrive(keys(0))
	assert.True(t, d.Tick(DefaultMessageDuration))
}

func TestRestore(t *testing.T) {
	d := New(Config{ID: "vault", RequiredKeycards: 1})
	d.Arrive(keys(0))

	d.Restore(true)
	assert.True(t, d.Opened())
	assert.False(t, d.MessageVisible())
	assert.False(t, d.Tick(5))
}
