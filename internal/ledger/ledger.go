// Package ledger keeps the per-category and total score for a run.
package ledger

import (
	"github.com/KirkDiggler/pantryrun/internal/models"
)

// Listener is notified with a fresh snapshot after every change
type Listener func(board *models.Scoreboard)

// Ledger accumulates awarded points
type Ledger struct {
	subtotals map[models.Category]int
	total     int
	listener  Listener
}

// New creates an empty ledger. listener may be nil.
func New(listener Listener) *Ledger {
	return &Ledger{
		subtotals: make(map[models.Category]int, len(models.Categories)),
		listener:  listener,
	}
}

// Award applies amount to category and returns the new total. Unknown
// categories leave the ledger untouched.
func (l *Ledger) Award(category models.Category, amount int) int {
	if !category.Valid() {
		return l.total
	}

	l.subtotals[category] += amount
	if category == models.CategoryPoisonCheese {
		l.subtotals[models.CategoryCheese] += amount
	}
	l.total += amount

	l.notify()
	return l.total
}

// Total returns the running total
func (l *Ledger) Total() int {
	return l.total
}

// Subtotal returns the running subtotal for category
func (l *Ledger) Subtotal(category models.Category) int {
	return l.subtotals[category]
}

// Reset zeroes every subtotal and the total
func (l *Ledger) Reset() {
	l.subtotals = make(map[models.Category]int, len(models.Categories))
	l.total = 0
	l.notify()
}

// Restore replaces the ledger contents with a saved scoreboard
func (l *Ledger) Restore(board *models.Scoreboard) {
	l.subtotals = make(map[models.Category]int, len(models.Categories))
	l.total = 0
	if board != nil {
		for c, v := range board.Subtotals {
			if c.Valid() {
				l.subtotals[c] = v
			}
		}
		l.total = board.Total
	}
	l.notify()
}

// Snapshot returns a copy of the current ledger
func (l *Ledger) Snapshot() *models.Scoreboard {
	subtotals := make(map[models.Category]int, len(models.Categories))
	for _, c := range models.Categories {
		subtotals[c] = l.subtotals[c]
	}
	return &models.Scoreboard{
		Subtotals: subtotals,
		Total:     l.total,
	}
}

func (l *Ledger) notify() {
	if l.listener != nil {
		l.listener(l.Snapshot())
	}
}
