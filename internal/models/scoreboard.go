package models

// Scoreboard is a point-in-time copy of the score ledger
type Scoreboard struct {
	// Subtotals holds the running subtotal per category
	Subtotals map[Category]int `json:"subtotals"`

	// Total is the sum of every delta ever awarded
	Total int `json:"total"`
}

// Subtotal returns the subtotal for c, zero when nothing was awarded
func (s *Scoreboard) Subtotal(c Category) int {
	if s == nil || s.Subtotals == nil {
		return 0
	}
	return s.Subtotals[c]
}
