package delay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiresOnceAfterThreshold(t *testing.T) {
	var d Delay
	d.Arm(2)

	assert.False(t, d.Tick(0.5))
	assert.False(t, d.Tick(1))
	assert.True(t, d.Tick(0.5))
	assert.False(t, d.Armed())
	assert.False(t, d.Tick(10))
}

func TestRearmReplacesPending(t *testing.T) {
	var d Delay
	d.Arm(2)
	d.Tick(1.5)

	d.Arm(2)
	assert.False(t, d.Tick(1))
	assert.True(t, d.Tick(1))
}

func TestCancel(t *testing.T) {
	var d Delay
	d.Arm(1)
	d.Cancel()
	assert.False(t, d.Tick(5))
}

func TestUnarmedNeverFires(t *testing.T) {
	var d Delay
	assert.False(t, d.Tick(100))
}
