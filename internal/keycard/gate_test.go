package keycard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	signals []Signal
}

func (r *recorder) record(s Signal) {
	r.signals = append(r.signals, s)
}

func (r *recorder) count(s Signal) int {
	n := 0
	for _, got := range r.signals {
		if got == s {
			n++
		}
	}
	return n
}

func TestAwardKeycardUnlocksAtRequired(t *testing.T) {
	rec := &recorder{}
	gate := New(3, rec.record)

	assert.False(t, gate.AwardKeycard())
	assert.False(t, gate.AwardKeycard())
	assert.False(t, gate.Unlocked())
	assert.True(t, gate.AwardKeycard())
	assert.True(t, gate.Unlocked())
	assert.Equal(t, 3, gate.Collected())
}

func TestTimerSignalsFireOnce(t *testing.T) {
	rec := &recorder{}
	gate := New(3, rec.record)

	for i := 0; i < 5; i++ {
		gate.AwardKeycard()
	}

	require.Equal(t, []Signal{SignalTimerStart, SignalTimerStop}, rec.signals)
}

func TestSingleKeycardStartsThenStops(t *testing.T) {
	rec := &recorder{}
	gate := New(1, rec.record)

	assert.True(t, gate.AwardKeycard())
	assert.Equal(t, []Signal{SignalTimerStart, SignalTimerStop}, rec.signals)
}

func TestZeroRequiredNeverStops(t *testing.T) {
	rec := &recorder{}
	gate := New(0, rec.record)

	assert.True(t, gate.Unlocked())
	assert.Empty(t, rec.signals)

	gate.AwardKeycard()
	gate.AwardKeycard()
	assert.Equal(t, 1, rec.count(SignalTimerStart))
	assert.Equal(t, 0, rec.count(SignalTimerStop))
}

func TestNegativeRequiredClamped(t *testing.T) {
	gate := New(-2, nil)
	assert.Equal(t, 0, gate.Required())
	assert.True(t, gate.AwardKeycard())
}

func TestDoorThresholdIsIndependent(t *testing.T) {
	gate := New(3, nil)
	gate.AwardKeycard()

	assert.True(t, gate.IsUnlocked(1))
	assert.False(t, gate.IsUnlocked(2))
	assert.False(t, gate.Unlocked())
}

func TestResetRearmsSignals(t *testing.T) {
	rec := &recorder{}
	gate := New(2, rec.record)

	gate.AwardKeycard()
	gate.AwardKeycard()
	gate.Reset()
	assert.Equal(t, 0, gate.Collected())

	gate.AwardKeycard()
	gate.AwardKeycard()
	assert.Equal(t, 2, rec.count(SignalTimerStart))
	assert.Equal(t, 2, rec.count(SignalTimerStop))
}

func TestRestoreIsSilent(t *testing.T) {
	rec := &recorder{}
	gate := New(2, rec.record)

	gate.Restore(2)
	assert.True(t, gate.Unlocked())
	assert.Empty(t, rec.signals)

	gate.Restore(-1)
	assert.Equal(t, 0, gate.Collected())
}
