// Package trigger turns engine arrival notifications into player service
// calls. The engine reports that a subject (the object that moved) entered
// the trigger volume of another object; the router decides what that means.
package trigger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/pantryrun/internal/models"
	"github.com/KirkDiggler/pantryrun/internal/services/player"
)

// SpeedBoostAmount is how much a speed pickup raises move speed
const SpeedBoostAmount = 2.0

// ErrUnknownTag is returned when parsing an arrival with an unrecognised tag
var ErrUnknownTag = errors.New("unknown tag")

// Arrival is one engine trigger notification
type Arrival struct {
	// Subject is the object that entered the trigger
	Subject   models.Tag
	SubjectID string

	// Trigger is the object that owns the trigger volume
	Trigger   models.Tag
	TriggerID string

	// Points is the value carried by a golf ball
	Points int
}

// Action names what the router did with an arrival
type Action string

const (
	ActionIgnored   Action = "ignored"
	ActionCollected Action = "collected"
	ActionBoosted   Action = "boosted"
	ActionDied      Action = "died"
	ActionDoor      Action = "door"
	ActionGoal      Action = "goal"
)

// Result carries the service output for whichever action ran
type Result struct {
	Action  Action
	Collect *player.CollectOutput
	Boost   *player.BoostOutput
	Die     *player.DieOutput
	Door    *player.ArriveAtDoorOutput
	Goal    *player.ReachGoalOutput
}

// Config holds configuration for the router
type Config struct {
	PlayerService player.Service
	Logger        *log.Logger
}

// Router dispatches arrivals
type Router struct {
	player   player.Service
	consumed mapset.Set[string]
	logger   *log.Logger
}

// New creates a router
func New(cfg *Config) (*Router, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.PlayerService == nil {
		return nil, errors.New("player service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Router{
		player:   cfg.PlayerService,
		consumed: mapset.New[string](),
		logger:   logger,
	}, nil
}

// Handle dispatches one arrival. Pairs with no meaning are ignored.
func (r *Router) Handle(ctx context.Context, a *Arrival) (*Result, error) {
	if a == nil {
		return nil, errors.New("arrival cannot be nil")
	}

	switch a.Trigger {
	case models.TagBread, models.TagChicken, models.TagCheese,
		models.TagKeyCard, models.TagPoisonCheese:
		if a.Subject != models.TagPlayer || !r.consume(a.TriggerID) {
			return ignored(), nil
		}
		category, _ := a.Trigger.Category()
		out, err := r.player.Collect(ctx, &player.CollectInput{
			Category: category,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Action: ActionCollected, Collect: out}, nil

	case models.TagSpeedBoost:
		if a.Subject != models.TagPlayer || !r.consume(a.TriggerID) {
			return ignored(), nil
		}
		out, err := r.player.Boost(ctx, &player.BoostInput{
			Stat:   models.StatMoveSpeed,
			Amount: SpeedBoostAmount,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Action: ActionBoosted, Boost: out}, nil

	case models.TagGolfPole:
		if a.Subject != models.TagGolfBall || !r.consume(a.SubjectID) {
			return ignored(), nil
		}
		points := a.Points
		out, err := r.player.Collect(ctx, &player.CollectInput{
			Category: models.CategoryGolfBall,
			Points:   &points,
		})
		if err != nil {
			return nil, err
		}
		r.logger.Printf("Golf ball entered the pole's area and scored %d points", points)
		return &Result{Action: ActionCollected, Collect: out}, nil

	case models.TagLava:
		if a.Subject != models.TagPlayer {
			r.logger.Printf("Entered lava by non-player object: %s", a.Subject)
			return ignored(), nil
		}
		out, err := r.player.Die(ctx, &player.DieInput{})
		if err != nil {
			return nil, err
		}
		return &Result{Action: ActionDied, Die: out}, nil

	case models.TagDoor:
		if a.Subject != models.TagPlayer {
			return ignored(), nil
		}
		out, err := r.player.ArriveAtDoor(ctx, &player.ArriveAtDoorInput{
			DoorID: a.TriggerID,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Action: ActionDoor, Door: out}, nil

	case models.TagGoal:
		if a.Subject != models.TagPlayer {
			return ignored(), nil
		}
		out, err := r.player.ReachGoal(ctx, &player.ReachGoalInput{})
		if err != nil {
			return nil, err
		}
		return &Result{Action: ActionGoal, Goal: out}, nil
	}

	return ignored(), nil
}

// consume marks an object as used up. Objects without an ID can't be
// tracked and are always accepted.
func (r *Router) consume(id string) bool {
	if id == "" {
		return true
	}
	if r.consumed.Has(id) {
		return false
	}
	r.consumed.Put(id)
	return true
}

func ignored() *Result {
	return &Result{Action: ActionIgnored}
}

// ParseArrival reads "<subject> <trigger> [id] [points]". The id belongs to
// the subject for golf balls and to the trigger owner otherwise.
func ParseArrival(fields []string) (*Arrival, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("arrival needs a subject and a trigger, got %d fields", len(fields))
	}

	subject, ok := models.ParseTag(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, fields[0])
	}
	trig, ok := models.ParseTag(fields[1])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, fields[1])
	}

	a := &Arrival{
		Subject: subject,
		Trigger: trig,
	}

	if len(fields) > 2 {
		if subject == models.TagGolfBall {
			a.SubjectID = fields[2]
		} else {
			a.TriggerID = fields[2]
		}
	}

	if len(fields) > 3 {
		points, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid points %q: %w", fields[3], err)
		}
		a.Points = points
	}

	return a, nil
}
