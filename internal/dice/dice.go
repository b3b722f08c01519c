// Package dice picks flavor lines at random.
package dice

import (
	"math/rand"
	"time"
)

// Roller draws random numbers from a seeded source
type Roller struct {
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for repeatable picks in tests
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *Roller {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a value in [1, sides]. Fewer than one side rolls a d6.
func (r *Roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6
	}
	return r.random.Intn(sides) + 1
}

// Pick returns one of options at random, the zero value when empty
func Pick[T any](r *Roller, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	return options[r.Roll(len(options))-1]
}
