package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pantryrun/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestCollectedKeycard() {
	out, err := s.service.GetCollectedMessage(s.ctx, &GetCollectedMessageInput{
		Category: models.CategoryKeyCard,
		Points:   1,
	})
	s.Require().NoError(err)
	s.Equal("You have collected a Key Card.", out.Message)
}

func (s *MessagingServiceTestSuite) TestCollectedItem() {
	out, err := s.service.GetCollectedMessage(s.ctx, &GetCollectedMessageInput{
		Category: models.CategoryChicken,
		Points:   5,
	})
	s.Require().NoError(err)
	s.Equal("Collected item worth: 5 points!", out.Message)
}

func (s *MessagingServiceTestSuite) TestNeutralEventMessages() {
	cases := []struct {
		input    *GetEventMessageInput
		expected string
	}{
		{&GetEventMessageInput{Kind: models.EventKeycardsComplete}, "All keycards collected. Timer stopped."},
		{&GetEventMessageInput{Kind: models.EventDoorOpened, DoorID: "vault"}, "You have successfully entered vault."},
		{&GetEventMessageInput{Kind: models.EventTimerExpired}, "Timer ended!"},
		{&GetEventMessageInput{Kind: models.EventRespawned, Lives: 2}, "Respawning player. Lives left: 2"},
		{&GetEventMessageInput{Kind: models.EventGameReset}, "Out of lives. Restarting game."},
		{&GetEventMessageInput{Kind: models.EventGoalReached, PlayerName: "Kit", Total: 12}, "Kit reached the goal with 12 points!"},
	}

	for _, tc := range cases {
		out, err := s.service.GetEventMessage(s.ctx, tc.input)
		s.Require().NoError(err)
		s.Equal(tc.expected, out.Message)
		s.Equal(ToneNeutral, out.Tone)
	}
}

func (s *MessagingServiceTestSuite) TestFunnyToneMentionsLives() {
	out, err := s.service.GetEventMessage(s.ctx, &GetEventMessageInput{
		Kind:  models.EventRespawned,
		Lives: 2,
		Tone:  ToneFunny,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "2")
	s.Equal(ToneFunny, out.Tone)
}

func (s *MessagingServiceTestSuite) TestUnknownEvent() {
	_, err := s.service.GetEventMessage(s.ctx, &GetEventMessageInput{
		Kind: models.EventKind("party"),
	})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetCollectedMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetEventMessage(s.ctx, nil)
	s.Error(err)
}
