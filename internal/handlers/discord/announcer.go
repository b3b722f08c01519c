// Package discord posts run milestones to a Discord channel.
package discord

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pantryrun/internal/models"
)

const defaultQueueSize = 32

// Sender is the part of a Discord session the announcer uses
type Sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the configuration for the announcer
type Config struct {
	// Discord bot token, used when Sender is nil
	Token string

	// ChannelID receives the announcements
	ChannelID string

	// Sender overrides the Discord session
	Sender Sender

	// QueueSize bounds pending announcements, 32 when zero
	QueueSize int
}

// Announcer implements presenter.Presenter by posting events as embeds.
// HUD updates are ignored. Posts happen on a worker goroutine so the frame
// loop never waits on the network.
type Announcer struct {
	session   *discordgo.Session
	sender    Sender
	channelID string

	queue   chan *discordgo.MessageEmbed
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

// New creates a new announcer
func New(cfg *Config) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	a := &Announcer{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
	}

	if a.sender == nil {
		if cfg.Token == "" {
			return nil, errors.New("token cannot be empty")
		}
		session, err := discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		a.session = session
		a.sender = session
	}

	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	a.queue = make(chan *discordgo.MessageEmbed, size)

	return a, nil
}

// Start opens the Discord connection and starts the posting worker
func (a *Announcer) Start() error {
	if a.session != nil {
		if err := a.session.Open(); err != nil {
			return fmt.Errorf("failed to open Discord connection: %w", err)
		}
	}

	a.wg.Add(1)
	go a.run()

	log.Printf("Announcing run events to channel %s", a.channelID)
	return nil
}

// Stop flushes pending announcements and closes the connection
func (a *Announcer) Stop() error {
	a.mu.Lock()
	if !a.stopped {
		a.stopped = true
		close(a.queue)
	}
	a.mu.Unlock()
	a.wg.Wait()

	if a.session != nil {
		return a.session.Close()
	}
	return nil
}

func (a *Announcer) run() {
	defer a.wg.Done()
	for embed := range a.queue {
		if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
			log.Printf("Failed to post announcement: %v", err)
		}
	}
}

// Announce queues an event, dropping it when the queue is full or the
// announcer has stopped
func (a *Announcer) Announce(event *models.Event) {
	if event == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		log.Printf("Announcer stopped, dropping %s", event.Kind)
		return
	}

	select {
	case a.queue <- renderEvent(event):
	default:
		log.Printf("Announcement queue full, dropping %s", event.Kind)
	}
}

func (a *Announcer) ShowScore(*models.Scoreboard) {}
func (a *Announcer) ShowLives(int)                {}
func (a *Announcer) ShowTimer(float64)            {}
func (a *Announcer) ShowMessage(string)           {}
func (a *Announcer) HideMessage()                 {}
func (a *Announcer) ShowCongrats(int)             {}
func (a *Announcer) HideCongrats()                {}

// Embed colors
const (
	colorGood    = 0x2ecc71
	colorBad     = 0xe74c3c
	colorInfo    = 0x3498db
	colorVictory = 0xf1c40f
)

func renderEvent(event *models.Event) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: event.Text,
		Color:       colorInfo,
	}

	switch event.Kind {
	case models.EventKeycardsComplete:
		embed.Title = "Keycards Collected"
		embed.Color = colorGood
	case models.EventDoorOpened:
		embed.Title = "Door Opened"
		embed.Color = colorGood
	case models.EventTimerExpired:
		embed.Title = "Time's Up"
		embed.Color = colorBad
	case models.EventRespawned:
		embed.Title = "Respawned"
		embed.Color = colorBad
	case models.EventGameReset:
		embed.Title = "Game Over"
		embed.Color = colorBad
	case models.EventGoalReached:
		embed.Title = "Goal Reached! 🏁"
		embed.Color = colorVictory
	default:
		embed.Title = string(event.Kind)
	}

	if event.RunID != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Run " + event.RunID}
	}

	return embed
}
