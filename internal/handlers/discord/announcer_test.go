package discord

import (
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pantryrun/internal/models"
)

type fakeSender struct {
	mu     sync.Mutex
	posts  []*discordgo.MessageEmbed
	chans  []string
	failOn int
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, embed)
	f.chans = append(f.chans, channelID)
	if f.failOn == len(f.posts) {
		return nil, errors.New("rate limited")
	}
	return &discordgo.Message{ChannelID: channelID}, nil
}

func TestNewValidates(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{Token: "t"})
	assert.Error(t, err)

	_, err = New(&Config{ChannelID: "c"})
	assert.Error(t, err)
}

func TestAnnouncePostsEvents(t *testing.T) {
	sender := &fakeSender{failOn: 1}
	a, err := New(&Config{ChannelID: "chan-1", Sender: sender})
	require.NoError(t, err)
	require.NoError(t, a.Start())

	a.Announce(&models.Event{Kind: models.EventTimerExpired, RunID: "run-1", Text: "Timer ended!"})
	a.Announce(&models.Event{Kind: models.EventGoalReached, Text: "Player reached the goal with 12 points!"})
	a.Announce(nil)

	require.NoError(t, a.Stop())

	require.Len(t, sender.posts, 2)
	assert.Equal(t, []string{"chan-1", "chan-1"}, sender.chans)

	assert.Equal(t, "Time's Up", sender.posts[0].Title)
	assert.Equal(t, "Timer ended!", sender.posts[0].Description)
	require.NotNil(t, sender.posts[0].Footer)
	assert.Equal(t, "Run run-1", sender.posts[0].Footer.Text)

	assert.Equal(t, colorVictory, sender.posts[1].Color)
	assert.Nil(t, sender.posts[1].Footer)
}

func TestAnnounceDropsWhenQueueFull(t *testing.T) {
	sender := &fakeSender{}
	a, err := New(&Config{ChannelID: "chan-1", Sender: sender, QueueSize: 1})
	require.NoError(t, err)

	// Worker not started, so the second event has nowhere to go
	a.Announce(&models.Event{Kind: models.EventDoorOpened, Text: "one"})
	a.Announce(&models.Event{Kind: models.EventDoorOpened, Text: "two"})

	require.NoError(t, a.Start())
	require.NoError(t, a.Stop())

	require.Len(t, sender.posts, 1)
	assert.Equal(t, "one", sender.posts[0].Description)
}

func TestHUDCallsAreIgnored(t *testing.T) {
	sender := &fakeSender{}
	a, err := New(&Config{ChannelID: "chan-1", Sender: sender})
	require.NoError(t, err)
	require.NoError(t, a.Start())

	a.ShowScore(&models.Scoreboard{})
	a.ShowLives(3)
	a.ShowTimer(10)
	a.ShowMessage("hi")
	a.HideMessage()
	a.ShowCongrats(1)
	a.HideCongrats()

	require.NoError(t, a.Stop())
	assert.Empty(t, sender.posts)
}

func TestAnnounceAfterStopIsDropped(t *testing.T) {
	sender := &fakeSender{}
	a, err := New(&Config{ChannelID: "chan-1", Sender: sender})
	require.NoError(t, err)
	require.NoError(t, a.Start())
	require.NoError(t, a.Stop())

	assert.NotPanics(t, func() {
		a.Announce(&models.Event{Kind: models.EventGoalReached, Text: "late"})
	})
	require.NoError(t, a.Stop())
	assert.Empty(t, sender.posts)
}
