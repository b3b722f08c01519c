package player

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/pantryrun/internal/common/clock"
	"github.com/KirkDiggler/pantryrun/internal/common/uuid"
	"github.com/KirkDiggler/pantryrun/internal/countdown"
	"github.com/KirkDiggler/pantryrun/internal/door"
	"github.com/KirkDiggler/pantryrun/internal/keycard"
	"github.com/KirkDiggler/pantryrun/internal/ledger"
	"github.com/KirkDiggler/pantryrun/internal/lifecycle"
	"github.com/KirkDiggler/pantryrun/internal/models"
	"github.com/KirkDiggler/pantryrun/internal/presenter"
	progressRepo "github.com/KirkDiggler/pantryrun/internal/repositories/progress"
	"github.com/KirkDiggler/pantryrun/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	runID      string
	playerName string
	rules      models.ScoreRules

	ledger *ledger.Ledger
	gate   *keycard.Gate
	lives  *lifecycle.Lives
	timer  *countdown.Timer
	doors  []*door.Door
	byID   map[string]*door.Door

	spawn        models.Vector3
	respawnPoint *models.Vector3
	moveSpeed    float64
	jumpHeight   float64

	congratsVisible  bool
	keycardsComplete bool

	// messageDoor owns the shared message panel until its delay runs out
	messageDoor *door.Door

	progressRepo progressRepo.Repository
	messaging    messaging.Service
	presenter    presenter.Presenter
	clock        clock.Clock
	logger       *log.Logger
}

// New creates a new player service. Missing collaborators are logged and
// replaced with defaults; only a nil config or bad door list is an error.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &service{
		playerName:   cfg.PlayerName,
		rules:        cfg.ScoreRules,
		spawn:        cfg.Spawn,
		respawnPoint: cfg.RespawnPoint,
		moveSpeed:    cfg.MoveSpeed,
		jumpHeight:   cfg.JumpHeight,
		progressRepo: cfg.ProgressRepo,
		messaging:    cfg.Messaging,
		presenter:    cfg.Presenter,
		clock:        cfg.Clock,
		timer:        cfg.Timer,
		logger:       logger,
		byID:         make(map[string]*door.Door, len(cfg.Doors)),
	}

	if s.playerName == "" {
		s.playerName = DefaultPlayerName
	}
	if s.rules == nil {
		s.rules = models.DefaultScoreRules()
	}
	if s.moveSpeed <= 0 {
		s.moveSpeed = DefaultMoveSpeed
	}
	if s.jumpHeight <= 0 {
		s.jumpHeight = DefaultJumpHeight
	}

	if s.presenter == nil {
		logger.Println("WARN: no presenter configured, HUD updates are dropped")
		s.presenter = presenter.Nop{}
	}
	if s.messaging == nil {
		msgSvc, err := messaging.NewService(&messaging.ServiceConfig{})
		if err != nil {
			return nil, fmt.Errorf("failed to create messaging service: %w", err)
		}
		s.messaging = msgSvc
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.timer == nil {
		logger.Println("WARN: no countdown timer configured, using a private one")
		s.timer = countdown.New(cfg.TimerDuration, nil)
	}

	idGen := cfg.UUIDGenerator
	if idGen == nil {
		idGen = uuid.New()
	}
	s.runID = idGen.NewUUID()

	for _, dc := range cfg.Doors {
		if dc.ID == "" {
			return nil, ErrEmptyDoorID
		}
		if _, ok := s.byID[dc.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDoor, dc.ID)
		}
		d := door.New(dc)
		s.doors = append(s.doors, d)
		s.byID[dc.ID] = d
	}

	s.ledger = ledger.New(s.presenter.ShowScore)
	s.gate = keycard.New(cfg.RequiredKeycards, s.onKeycardSignal)
	s.lives = lifecycle.New(cfg.StartingLives)

	return s, nil
}

// onKeycardSignal couples the keycard gate to the countdown
func (s *service) onKeycardSignal(sig keycard.Signal) {
	switch sig {
	case keycard.SignalTimerStart:
		s.timer.Start()
	case keycard.SignalTimerStop:
		s.timer.Stop()
		s.keycardsComplete = true
	}
	s.presenter.ShowTimer(s.timer.Remaining())
}

// Collect awards a pickup to the player
func (s *service) Collect(ctx context.Context, input *CollectInput) (*CollectOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Category.Valid() {
		return &CollectOutput{
			Total:    s.ledger.Total(),
			Keycards: s.gate.Collected(),
			Unlocked: s.gate.Unlocked(),
			Ignored:  true,
		}, nil
	}

	points, _ := s.rules.Points(input.Category)
	if input.Points != nil {
		points = *input.Points
	}

	total := s.ledger.Award(input.Category, points)

	unlocked := s.gate.Unlocked()
	if input.Category == models.CategoryKeyCard {
		unlocked = s.gate.AwardKeycard()
	}

	msg, err := s.messaging.GetCollectedMessage(ctx, &messaging.GetCollectedMessageInput{
		Category: input.Category,
		Points:   points,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Println(msg.Message)

	if s.keycardsComplete {
		s.keycardsComplete = false
		s.announce(ctx, &messaging.GetEventMessageInput{
			Kind: models.EventKeycardsComplete,
		})
	}

	return &CollectOutput{
		Total:    total,
		Keycards: s.gate.Collected(),
		Unlocked: unlocked,
		Message:  msg.Message,
	}, nil
}

// Die spends a life, restarting the run when the last one is lost
func (s *service) Die(ctx context.Context, input *DieInput) (*DieOutput, error) {
	outcome := s.lives.Die()

	var position models.Vector3
	switch outcome {
	case models.DeathOutcomeRespawned:
		position = s.spawn
		if s.respawnPoint != nil {
			position = *s.respawnPoint
		}
		s.announce(ctx, &messaging.GetEventMessageInput{
			Kind:  models.EventRespawned,
			Lives: s.lives.Lives(),
		})
	case models.DeathOutcomeReset:
		s.restart()
		position = s.spawn
		s.announce(ctx, &messaging.GetEventMessageInput{
			Kind: models.EventGameReset,
		})
	}

	s.presenter.ShowLives(s.lives.Lives())

	return &DieOutput{
		Outcome:  outcome,
		Lives:    s.lives.Lives(),
		Position: position,
	}, nil
}

// restart clears everything a lost run accumulated. Doors stay open and
// boosts are kept.
func (s *service) restart() {
	s.ledger.Reset()
	s.gate.Reset()
	s.timer.Reset()
	s.keycardsComplete = false
	s.presenter.ShowTimer(s.timer.Remaining())
}

// ArriveAtDoor tries to open a keycard door
func (s *service) ArriveAtDoor(ctx context.Context, input *ArriveAtDoorInput) (*ArriveAtDoorOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	d, ok := s.byID[input.DoorID]
	if !ok {
		s.logger.Printf("WARN: arrival at unconfigured door %q ignored", input.DoorID)
		return &ArriveAtDoorOutput{}, nil
	}

	switch d.Arrive(s.gate) {
	case door.ResultOpened:
		s.announce(ctx, &messaging.GetEventMessageInput{
			Kind:   models.EventDoorOpened,
			DoorID: d.ID(),
		})
		return &ArriveAtDoorOutput{
			Opened: true,
		}, nil
	case door.ResultDenied:
		s.logger.Printf("Door %s needs %d keycards, have %d", d.ID(), d.Required(), s.gate.Collected())
		s.messageDoor = d
		s.presenter.ShowMessage(d.Message())
		return &ArriveAtDoorOutput{
			Denied:  true,
			Message: d.Message(),
		}, nil
	}

	return &ArriveAtDoorOutput{}, nil
}

// ReachGoal shows the congratulations panel and records the score
func (s *service) ReachGoal(ctx context.Context, input *ReachGoalInput) (*ReachGoalOutput, error) {
	total := s.ledger.Total()

	s.congratsVisible = true
	s.presenter.ShowCongrats(total)
	s.announce(ctx, &messaging.GetEventMessageInput{
		Kind:       models.EventGoalReached,
		PlayerName: s.playerName,
		Total:      total,
	})

	if s.progressRepo != nil {
		err := s.progressRepo.RecordHighScore(ctx, &progressRepo.RecordHighScoreInput{
			Score: &models.HighScore{
				RunID:      s.runID,
				PlayerName: s.playerName,
				Total:      total,
			},
		})
		if err != nil {
			return nil, err
		}
	}

	return &ReachGoalOutput{
		Total: total,
	}, nil
}

// CloseGoal hides the congratulations panel
func (s *service) CloseGoal(ctx context.Context, input *CloseGoalInput) (*CloseGoalOutput, error) {
	if s.congratsVisible {
		s.congratsVisible = false
		s.presenter.HideCongrats()
	}
	return &CloseGoalOutput{}, nil
}

// Boost raises a movement stat
func (s *service) Boost(ctx context.Context, input *BoostInput) (*BoostOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	switch input.Stat {
	case models.StatMoveSpeed:
		s.moveSpeed += input.Amount
		s.logger.Printf("Player speed increased by %v. New speed: %v", input.Amount, s.moveSpeed)
	case models.StatJumpHeight:
		s.jumpHeight += input.Amount
		s.logger.Printf("Player jump height increased by %v. New jump height: %v", input.Amount, s.jumpHeight)
	default:
		return nil, ErrUnknownStat
	}

	return &BoostOutput{
		MoveSpeed:  s.moveSpeed,
		JumpHeight: s.jumpHeight,
	}, nil
}

// Tick advances the countdown and message timers by one frame
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	dt := input.Delta
	if dt < 0 {
		dt = 0
	}

	wasRunning := s.timer.Running()
	expired := s.timer.Tick(dt)
	if wasRunning {
		s.presenter.ShowTimer(s.timer.Remaining())
	}
	if expired {
		s.announce(ctx, &messaging.GetEventMessageInput{
			Kind: models.EventTimerExpired,
		})
	}

	// A door whose message was replaced by another door's stays silent
	for _, d := range s.doors {
		if d.Tick(dt) && d == s.messageDoor {
			s.messageDoor = nil
			s.presenter.HideMessage()
		}
	}

	return &TickOutput{
		Remaining:  s.timer.Remaining(),
		TimerState: s.timer.State(),
		Expired:    expired,
	}, nil
}

// GetStatus returns the values a HUD needs
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	return s.status(), nil
}

func (s *service) status() *GetStatusOutput {
	return &GetStatusOutput{
		RunID:            s.runID,
		PlayerName:       s.playerName,
		Scoreboard:       s.ledger.Snapshot(),
		Keycards:         s.gate.Collected(),
		RequiredKeycards: s.gate.Required(),
		Lives:            s.lives.Lives(),
		Remaining:        s.timer.Remaining(),
		TimerState:       s.timer.State(),
		OpenedDoors:      s.openedDoors(),
		CongratsVisible:  s.congratsVisible,
		MoveSpeed:        s.moveSpeed,
		JumpHeight:       s.jumpHeight,
	}
}

func (s *service) openedDoors() []string {
	opened := []string{}
	for _, d := range s.doors {
		if d.Opened() {
			opened = append(opened, d.ID())
		}
	}
	return opened
}

// SaveProgress writes a checkpoint of the run
func (s *service) SaveProgress(ctx context.Context, input *SaveProgressInput) (*SaveProgressOutput, error) {
	if s.progressRepo == nil {
		return nil, ErrNoProgressRepo
	}

	now := s.clock.Now()
	err := s.progressRepo.SaveProgress(ctx, &progressRepo.SaveProgressInput{
		Progress: &models.Progress{
			RunID:       s.runID,
			PlayerName:  s.playerName,
			Scoreboard:  s.ledger.Snapshot(),
			Keycards:    s.gate.Collected(),
			Lives:       s.lives.Lives(),
			Remaining:   s.timer.Remaining(),
			TimerState:  s.timer.State(),
			OpenedDoors: s.openedDoors(),
			MoveSpeed:   s.moveSpeed,
			JumpHeight:  s.jumpHeight,
			SavedAt:     now,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save run %s: %w", s.runID, err)
	}

	return &SaveProgressOutput{
		RunID:   s.runID,
		SavedAt: now,
	}, nil
}

// LoadProgress restores a checkpoint
func (s *service) LoadProgress(ctx context.Context, input *LoadProgressInput) (*LoadProgressOutput, error) {
	if s.progressRepo == nil {
		return nil, ErrNoProgressRepo
	}

	runID := s.runID
	if input != nil && input.RunID != "" {
		runID = input.RunID
	}

	p, err := s.progressRepo.GetProgress(ctx, &progressRepo.GetProgressInput{
		RunID: runID,
	})
	if err != nil {
		if errors.Is(err, progressRepo.ErrProgressNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	s.restore(p)

	return &LoadProgressOutput{
		Status: s.status(),
	}, nil
}

func (s *service) restore(p *models.Progress) {
	if p.RunID != "" {
		s.runID = p.RunID
	}
	if p.PlayerName != "" {
		s.playerName = p.PlayerName
	}

	s.ledger.Restore(p.Scoreboard)
	s.gate.Restore(p.Keycards)
	s.lives.Restore(p.Lives)
	s.timer.Restore(p.Remaining, p.TimerState)
	s.keycardsComplete = false

	opened := mapset.New[string]()
	for _, id := range p.OpenedDoors {
		opened.Put(id)
	}
	for _, d := range s.doors {
		d.Restore(opened.Has(d.ID()))
	}
	s.messageDoor = nil

	if p.MoveSpeed > 0 {
		s.moveSpeed = p.MoveSpeed
	}
	if p.JumpHeight > 0 {
		s.jumpHeight = p.JumpHeight
	}

	s.presenter.HideMessage()
	s.presenter.ShowLives(s.lives.Lives())
	s.presenter.ShowTimer(s.timer.Remaining())
}

// GetHighScores returns the best finished runs
func (s *service) GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error) {
	if s.progressRepo == nil {
		return nil, ErrNoProgressRepo
	}

	limit := 0
	if input != nil {
		limit = input.Limit
	}

	out, err := s.progressRepo.GetHighScores(ctx, &progressRepo.GetHighScoresInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetHighScoresOutput{
		Scores: out.Scores,
	}, nil
}

// announce logs a milestone and hands it to the presenter
func (s *service) announce(ctx context.Context, input *messaging.GetEventMessageInput) {
	out, err := s.messaging.GetEventMessage(ctx, input)
	if err != nil {
		s.logger.Printf("WARN: no message for %s: %v", input.Kind, err)
		return
	}

	s.logger.Println(out.Message)
	s.presenter.Announce(&models.Event{
		Kind:  input.Kind,
		RunID: s.runID,
		Text:  out.Message,
	})
}
