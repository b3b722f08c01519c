package models

// Category classifies a collectible by its score effect
type Category string

const (
	// CategoryBread is a loaf of bread
	CategoryBread Category = "Bread"

	// CategoryChicken is a chicken leg
	CategoryChicken Category = "Chicken"

	// CategoryCheese is a wedge of cheese
	CategoryCheese Category = "Cheese"

	// CategoryKeyCard is a keycard, counted toward door and timer gates
	CategoryKeyCard Category = "KeyCard"

	// CategoryPoisonCheese is spoiled cheese; its points are negative and also
	// come off the cheese subtotal
	CategoryPoisonCheese Category = "PoisonCheese"

	// CategoryGolfBall is a golf ball sunk at a golf pole
	CategoryGolfBall Category = "GolfBall"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryBread,
	CategoryChicken,
	CategoryCheese,
	CategoryKeyCard,
	CategoryPoisonCheese,
	CategoryGolfBall,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryBread, CategoryChicken, CategoryCheese,
		CategoryKeyCard, CategoryPoisonCheese, CategoryGolfBall:
		return true
	}
	return false
}

// ScoreRules maps a category to the points a single pickup is worth
type ScoreRules map[Category]int

// DefaultScoreRules returns the stock point values. Golf balls carry their own
// value per ball, so the rule is zero.
func DefaultScoreRules() ScoreRules {
	return ScoreRules{
		CategoryBread:        2,
		CategoryChicken:      5,
		CategoryCheese:       3,
		CategoryKeyCard:      1,
		CategoryPoisonCheese: -2,
		CategoryGolfBall:     0,
	}
}

// Points returns the configured value for c and whether c has a rule
func (r ScoreRules) Points(c Category) (int, bool) {
	p, ok := r[c]
	return p, ok
}
