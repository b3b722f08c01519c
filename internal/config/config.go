// Package config loads run settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/pantryrun/internal/door"
	"github.com/KirkDiggler/pantryrun/internal/models"
)

// Config is the full set of run settings
type Config struct {
	PlayerName string `env:"PLAYER_NAME" envDefault:"Player"`

	Score Score `envPrefix:"SCORE_"`

	RequiredKeycards int     `env:"REQUIRED_KEYCARDS" envDefault:"3"`
	StartingLives    int     `env:"STARTING_LIVES" envDefault:"3"`
	TimerDuration    float64 `env:"TIMER_DURATION" envDefault:"1200"`

	// Doors is a comma separated list of id:required pairs
	Doors               []DoorSpec `env:"DOORS" envSeparator:","`
	DoorMessage         string     `env:"DOOR_MESSAGE" envDefault:"You need a keycard to open this door."`
	DoorMessageDuration float64    `env:"DOOR_MESSAGE_DURATION" envDefault:"2.0"`

	Spawn        Point `env:"SPAWN" envDefault:"0,0,0"`
	RespawnPoint Point `env:"RESPAWN_POINT"`

	MoveSpeed  float64 `env:"MOVE_SPEED" envDefault:"5"`
	JumpHeight float64 `env:"JUMP_HEIGHT" envDefault:"2"`

	FrameRate int `env:"FRAME_RATE" envDefault:"60"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	DiscordToken     string `env:"DISCORD_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// Score holds the points per category
type Score struct {
	Bread        int `env:"BREAD" envDefault:"2"`
	Chicken      int `env:"CHICKEN" envDefault:"5"`
	Cheese       int `env:"CHEESE" envDefault:"3"`
	KeyCard      int `env:"KEYCARD" envDefault:"1"`
	PoisonCheese int `env:"POISON_CHEESE" envDefault:"-2"`
}

// DoorSpec is one door entry, written as id or id:required
type DoorSpec struct {
	ID       string
	Required int
}

// UnmarshalText parses id[:required]
func (d *DoorSpec) UnmarshalText(text []byte) error {
	id, req, found := strings.Cut(strings.TrimSpace(string(text)), ":")
	if id == "" {
		return errors.New("door id cannot be empty")
	}
	d.ID = id
	d.Required = door.DefaultRequiredKeycards
	if found {
		n, err := strconv.Atoi(req)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid keycard count for door %s: %q", id, req)
		}
		d.Required = n
	}
	return nil
}

// Point is a position written as x,y,z
type Point struct {
	models.Vector3
	set bool
}

// UnmarshalText parses x,y,z
func (p *Point) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ",")
	if len(parts) != 3 {
		return fmt.Errorf("point must be x,y,z: %q", text)
	}
	var xyz [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		xyz[i] = f
	}
	p.Vector3 = models.Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	p.set = true
	return nil
}

// Load reads the given .env files (or .env when none are named) and then the
// process environment. A missing file is not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
		log.Println("No .env file found, reading settings from the environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Parse builds a Config from the given variables only
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges that the tags cannot express
func (c *Config) Validate() error {
	if c.RequiredKeycards < 0 {
		return errors.New("required keycards cannot be negative")
	}
	if c.StartingLives < 1 {
		return errors.New("starting lives must be at least 1")
	}
	if c.TimerDuration <= 0 {
		return errors.New("timer duration must be positive")
	}
	if c.DoorMessageDuration <= 0 {
		return errors.New("door message duration must be positive")
	}
	if c.FrameRate <= 0 {
		return errors.New("frame rate must be positive")
	}
	seen := make(map[string]bool, len(c.Doors))
	for _, d := range c.Doors {
		if seen[d.ID] {
			return fmt.Errorf("duplicate door %s", d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

// ScoreRules converts the score settings into rules. Golf balls carry their
// own value.
func (c *Config) ScoreRules() models.ScoreRules {
	return models.ScoreRules{
		models.CategoryBread:        c.Score.Bread,
		models.CategoryChicken:      c.Score.Chicken,
		models.CategoryCheese:       c.Score.Cheese,
		models.CategoryKeyCard:      c.Score.KeyCard,
		models.CategoryPoisonCheese: c.Score.PoisonCheese,
		models.CategoryGolfBall:     0,
	}
}

// DoorConfigs expands the door list with the shared message settings
func (c *Config) DoorConfigs() []door.Config {
	doors := make([]door.Config, 0, len(c.Doors))
	for _, d := range c.Doors {
		doors = append(doors, door.Config{
			ID:               d.ID,
			RequiredKeycards: d.Required,
			Message:          c.DoorMessage,
			MessageDuration:  c.DoorMessageDuration,
		})
	}
	return doors
}

// Respawn returns the respawn point, nil when none is set
func (c *Config) Respawn() *models.Vector3 {
	if !c.RespawnPoint.set {
		return nil
	}
	v := c.RespawnPoint.Vector3
	return &v
}
