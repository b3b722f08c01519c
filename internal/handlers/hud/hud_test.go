package hud

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pantryrun/internal/models"
)

func plain(b *bytes.Buffer) string {
	return color.ClearCode(b.String())
}

func TestFormatScore(t *testing.T) {
	board := &models.Scoreboard{
		Subtotals: map[models.Category]int{
			models.CategoryBread:   2,
			models.CategoryChicken: 5,
			models.CategoryCheese:  1,
			models.CategoryKeyCard: 1,
		},
		Total: 9,
	}

	assert.Equal(t, "Total: 9\n\nBread: 2\nChicken: 5\nCheese: 1\nKey Card: 1", FormatScore(board))
}

func TestFormatTimer(t *testing.T) {
	assert.Equal(t, "Time: 20:00:00", FormatTimer(1200))
	assert.Equal(t, "Time: 01:05:50", FormatTimer(65.5))
	assert.Equal(t, "Time: 00:00:00", FormatTimer(0))
	assert.Equal(t, "Time: 00:00:00", FormatTimer(-3))
}

func TestShowTimerOncePerSecond(t *testing.T) {
	var buf bytes.Buffer
	r := New(&Config{Out: &buf})

	r.ShowTimer(10.0)
	r.ShowTimer(9.5)
	r.ShowTimer(9.25)
	r.ShowTimer(8.75)

	assert.Equal(t, "Time: 00:10:00\nTime: 00:08:75\n", plain(&buf))
}

func TestShowTimerAlwaysDrawsZero(t *testing.T) {
	var buf bytes.Buffer
	r := New(&Config{Out: &buf})

	r.ShowTimer(0)
	r.ShowTimer(0)

	assert.Equal(t, "Time: 00:00:00\nTime: 00:00:00\n", plain(&buf))
}

func TestPanels(t *testing.T) {
	var buf bytes.Buffer
	r := New(&Config{Out: &buf})

	r.ShowLives(2)
	r.ShowMessage("You need a keycard to open this door.")
	r.HideMessage()
	r.ShowCongrats(12)
	r.Announce(&models.Event{Kind: models.EventTimerExpired, Text: "Timer ended!"})
	r.Announce(nil)
	r.ShowScore(nil)

	out := plain(&buf)
	assert.Contains(t, out, "Lives: 2\n")
	assert.Contains(t, out, "[ You need a keycard to open this door. ]\n")
	assert.Contains(t, out, "[ ]\n")
	assert.Contains(t, out, "Congratulations! You reached the goal with 12 points.\n")
	assert.Contains(t, out, "* Timer ended!\n")
}

func TestPrintHighScores(t *testing.T) {
	var buf bytes.Buffer
	r := New(&Config{Out: &buf})

	r.PrintHighScores(nil)
	r.PrintHighScores([]*models.HighScore{{PlayerName: "Ana", Total: 30}})

	out := plain(&buf)
	assert.Contains(t, out, "No high scores yet.")
	assert.Contains(t, out, " 1. Ana")
	assert.Contains(t, out, "30")
}
