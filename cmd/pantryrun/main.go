package main

import (
	"bufio"
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pantryrun/internal/common/clock"
	"github.com/KirkDiggler/pantryrun/internal/config"
	"github.com/KirkDiggler/pantryrun/internal/countdown"
	"github.com/KirkDiggler/pantryrun/internal/handlers/discord"
	"github.com/KirkDiggler/pantryrun/internal/handlers/hud"
	"github.com/KirkDiggler/pantryrun/internal/handlers/trigger"
	"github.com/KirkDiggler/pantryrun/internal/presenter"
	"github.com/KirkDiggler/pantryrun/internal/repositories/progress"
	"github.com/KirkDiggler/pantryrun/internal/services/messaging"
	playerService "github.com/KirkDiggler/pantryrun/internal/services/player"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Checkpoints and high scores are optional
	var progressRepo progress.Repository
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	repo, err := progress.NewRedis(&progress.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Printf("WARN: progress storage unavailable, save/load and high scores disabled: %v", err)
	} else {
		progressRepo = repo
	}

	screen := hud.New(&hud.Config{Out: os.Stdout})
	presenters := []presenter.Presenter{screen}

	if cfg.DiscordToken != "" {
		announcer, err := discord.New(&discord.Config{
			Token:     cfg.DiscordToken,
			ChannelID: cfg.DiscordChannelID,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord announcer: %v", err)
		}
		if err := announcer.Start(); err != nil {
			log.Fatalf("Failed to start Discord announcer: %v", err)
		}
		defer func() {
			if err := announcer.Stop(); err != nil {
				log.Printf("Error stopping announcer: %v", err)
			}
		}()
		presenters = append(presenters, announcer)
	}

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DefaultTone: messaging.ToneFunny,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// The countdown is shared by the player service and the HUD loop
	timer := countdown.New(cfg.TimerDuration, nil)

	clk := clock.New()
	playerSvc, err := playerService.New(&playerService.Config{
		PlayerName:       cfg.PlayerName,
		ScoreRules:       cfg.ScoreRules(),
		RequiredKeycards: cfg.RequiredKeycards,
		StartingLives:    cfg.StartingLives,
		Doors:            cfg.DoorConfigs(),
		Spawn:            cfg.Spawn.Vector3,
		RespawnPoint:     cfg.Respawn(),
		MoveSpeed:        cfg.MoveSpeed,
		JumpHeight:       cfg.JumpHeight,
		Timer:            timer,
		ProgressRepo:     progressRepo,
		Messaging:        msgSvc,
		Presenter:        presenter.Multi(presenters...),
		Clock:            clk,
	})
	if err != nil {
		log.Fatalf("Failed to create player service: %v", err)
	}

	router, err := trigger.New(&trigger.Config{
		PlayerService: playerSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create trigger router: %v", err)
	}

	g := &game{
		player: playerSvc,
		router: router,
		screen: screen,
	}

	log.Printf("Run started for %s. Type arrivals like 'Player Bread b1' or 'quit'.", cfg.PlayerName)
	g.loop(ctx, clock.NewFrame(clk), time.Second/time.Duration(cfg.FrameRate), readLines(os.Stdin))

	log.Println("Run has been shut down")
}

// readLines feeds stdin lines to the frame loop. The channel closes on EOF.
func readLines(f *os.File) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			log.Printf("Error reading input: %v", err)
		}
	}()
	return lines
}

type game struct {
	player playerService.Service
	router *trigger.Router
	screen *hud.Renderer
}

// loop ticks the run once per frame and handles input between frames
func (g *game) loop(ctx context.Context, frame *clock.Frame, period time.Duration, lines <-chan string) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok || g.handleLine(ctx, line) {
				return
			}
		case <-ticker.C:
			if _, err := g.player.Tick(ctx, &playerService.TickInput{Delta: frame.Delta()}); err != nil {
				log.Printf("Error ticking run: %v", err)
			}
		}
	}
}

// handleLine runs one command or arrival and reports whether to quit
func (g *game) handleLine(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true

	case "save":
		out, err := g.player.SaveProgress(ctx, &playerService.SaveProgressInput{})
		if err != nil {
			log.Printf("Failed to save progress: %v", err)
			return false
		}
		log.Printf("Saved run %s at %s", out.RunID, out.SavedAt.Format(time.Kitchen))

	case "load":
		input := &playerService.LoadProgressInput{}
		if len(fields) > 1 {
			input.RunID = fields[1]
		}
		out, err := g.player.LoadProgress(ctx, input)
		if err != nil {
			if errors.Is(err, progress.ErrProgressNotFound) {
				log.Printf("No saved progress for this run")
				return false
			}
			log.Printf("Failed to load progress: %v", err)
			return false
		}
		log.Printf("Loaded run %s: %d points, %d lives", out.Status.RunID, out.Status.Scoreboard.Total, out.Status.Lives)

	case "close":
		if _, err := g.player.CloseGoal(ctx, &playerService.CloseGoalInput{}); err != nil {
			log.Printf("Failed to close goal panel: %v", err)
		}

	case "scores":
		out, err := g.player.GetHighScores(ctx, &playerService.GetHighScoresInput{})
		if err != nil {
			log.Printf("Failed to get high scores: %v", err)
			return false
		}
		g.screen.PrintHighScores(out.Scores)

	case "status":
		out, err := g.player.GetStatus(ctx, &playerService.GetStatusInput{})
		if err != nil {
			log.Printf("Failed to get status: %v", err)
			return false
		}
		log.Printf("%s: total %d, keycards %d/%d, lives %d, %s, speed %.1f, jump %.1f",
			out.PlayerName, out.Scoreboard.Total, out.Keycards, out.RequiredKeycards,
			out.Lives, hud.FormatTimer(out.Remaining), out.MoveSpeed, out.JumpHeight)

	default:
		arrival, err := trigger.ParseArrival(fields)
		if err != nil {
			log.Printf("Ignoring input %q: %v", line, err)
			return false
		}
		result, err := g.router.Handle(ctx, arrival)
		if err != nil {
			log.Printf("Error handling arrival: %v", err)
			return false
		}
		if result.Die != nil {
			log.Printf("Move player to %s", result.Die.Position)
		}
	}

	return false
}
