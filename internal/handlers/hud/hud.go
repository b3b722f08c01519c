// Package hud draws the run's heads-up display as colored terminal lines.
package hud

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/KirkDiggler/pantryrun/internal/models"
)

// Config holds configuration for the HUD
type Config struct {
	// Out receives the HUD lines, stdout when nil
	Out io.Writer
}

// Renderer implements presenter.Presenter on a terminal
type Renderer struct {
	out io.Writer

	colorScore    color.Style
	colorLives    color.Style
	colorTimer    color.Style
	colorMessage  color.Style
	colorCongrats color.Style
	colorEvent    color.Style
	colorSubtle   color.Style

	// Timer redraws are limited to once per displayed second
	lastSecond int
}

// New creates a HUD renderer
func New(cfg *Config) *Renderer {
	out := io.Writer(os.Stdout)
	if cfg != nil && cfg.Out != nil {
		out = cfg.Out
	}

	return &Renderer{
		out:           out,
		colorScore:    color.Style{color.FgGreen, color.OpBold},
		colorLives:    color.Style{color.FgRed, color.OpBold},
		colorTimer:    color.Style{color.FgCyan},
		colorMessage:  color.Style{color.FgYellow, color.OpBold},
		colorCongrats: color.Style{color.FgMagenta, color.OpBold},
		colorEvent:    color.Style{color.FgBlue},
		colorSubtle:   color.Style{color.FgGray},
		lastSecond:    -1,
	}
}

// FormatScore renders the score panel text
func FormatScore(board *models.Scoreboard) string {
	var b strings.Builder
	b.WriteString(gotext.Get("Total: %d", board.Total))
	b.WriteString("\n\n")
	b.WriteString(gotext.Get("Bread: %d", board.Subtotal(models.CategoryBread)))
	b.WriteString("\n")
	b.WriteString(gotext.Get("Chicken: %d", board.Subtotal(models.CategoryChicken)))
	b.WriteString("\n")
	b.WriteString(gotext.Get("Cheese: %d", board.Subtotal(models.CategoryCheese)))
	b.WriteString("\n")
	b.WriteString(gotext.Get("Key Card: %d", board.Subtotal(models.CategoryKeyCard)))
	return b.String()
}

// FormatTimer renders seconds as Time: MM:SS:hh
func FormatTimer(remaining float64) string {
	if remaining < 0 {
		remaining = 0
	}
	minutes := int(math.Floor(remaining / 60))
	seconds := int(math.Floor(math.Mod(remaining, 60)))
	hundredths := int(math.Floor(math.Mod(remaining*100, 100)))
	return gotext.Get("Time: %02d:%02d:%02d", minutes, seconds, hundredths)
}

func (r *Renderer) ShowScore(board *models.Scoreboard) {
	if board == nil {
		return
	}
	fmt.Fprintln(r.out, r.colorScore.Sprint(FormatScore(board)))
}

func (r *Renderer) ShowLives(lives int) {
	fmt.Fprintln(r.out, r.colorLives.Sprint(gotext.Get("Lives: %d", lives)))
}

func (r *Renderer) ShowTimer(remaining float64) {
	second := int(math.Ceil(remaining))
	if second == r.lastSecond && remaining > 0 {
		return
	}
	r.lastSecond = second
	fmt.Fprintln(r.out, r.colorTimer.Sprint(FormatTimer(remaining)))
}

func (r *Renderer) ShowMessage(text string) {
	fmt.Fprintln(r.out, r.colorMessage.Sprintf("[ %s ]", text))
}

func (r *Renderer) HideMessage() {
	fmt.Fprintln(r.out, r.colorSubtle.Sprint("[ ]"))
}

func (r *Renderer) ShowCongrats(total int) {
	fmt.Fprintln(r.out, r.colorCongrats.Sprint(gotext.Get("Congratulations! You reached the goal with %d points.", total)))
}

func (r *Renderer) HideCongrats() {
	fmt.Fprintln(r.out, r.colorSubtle.Sprint(gotext.Get("Congrats panel closed.")))
}

func (r *Renderer) Announce(event *models.Event) {
	if event == nil {
		return
	}
	fmt.Fprintln(r.out, r.colorEvent.Sprintf("* %s", event.Text))
}

// PrintHighScores writes the high-score table
func (r *Renderer) PrintHighScores(scores []*models.HighScore) {
	if len(scores) == 0 {
		fmt.Fprintln(r.out, r.colorSubtle.Sprint(gotext.Get("No high scores yet.")))
		return
	}
	for i, s := range scores {
		fmt.Fprintf(r.out, "%2d. %-16s %s\n", i+1, s.PlayerName, r.colorScore.Sprintf("%d", s.Total))
	}
}
