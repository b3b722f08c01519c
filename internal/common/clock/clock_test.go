package clock

import (
	"testing"
	"time"

	"github.com/KirkDiggler/pantryrun/internal/common/clock/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFrameDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := mocks.NewMockClock(ctrl)

	start := time.Date(2025, 5, 19, 9, 0, 0, 0, time.UTC)
	gomock.InOrder(
		mockClock.EXPECT().Now().Return(start),
		mockClock.EXPECT().Now().Return(start.Add(500*time.Millisecond)),
		mockClock.EXPECT().Now().Return(start.Add(750*time.Millisecond)),
		mockClock.EXPECT().Now().Return(start.Add(100*time.Millisecond)),
	)

	frame := NewFrame(mockClock)
	assert.InDelta(t, 0.5, frame.Delta(), 1e-9)
	assert.InDelta(t, 0.25, frame.Delta(), 1e-9)
	assert.Equal(t, 0.0, frame.Delta())
}
