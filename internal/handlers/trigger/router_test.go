package trigger

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/KirkDiggler/pantryrun/internal/countdown"
	"github.com/KirkDiggler/pantryrun/internal/door"
	"github.com/KirkDiggler/pantryrun/internal/models"
	"github.com/KirkDiggler/pantryrun/internal/presenter"
	"github.com/KirkDiggler/pantryrun/internal/services/player"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	svc    player.Service
	router *Router
	ctx    context.Context
}

func (s *RouterTestSuite) SetupTest() {
	logger := log.New(io.Discard, "", 0)

	svc, err := player.New(&player.Config{
		RequiredKeycards: 1,
		Doors:            []door.Config{{ID: "vault", RequiredKeycards: 1}},
		Timer:            countdown.New(1200, nil),
		Presenter:        presenter.Nop{},
		Logger:           logger,
	})
	s.Require().NoError(err)
	s.svc = svc

	router, err := New(&Config{
		PlayerService: svc,
		Logger:        logger,
	})
	s.Require().NoError(err)
	s.router = router
	s.ctx = context.Background()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) handle(a *Arrival) *Result {
	res, err := s.router.Handle(s.ctx, a)
	s.Require().NoError(err)
	return res
}

func (s *RouterTestSuite) total() int {
	st, err := s.svc.GetStatus(s.ctx, &player.GetStatusInput{})
	s.Require().NoError(err)
	return st.Scoreboard.Total
}

func (s *RouterTestSuite) TestPlayerCollectsFood() {
	res := s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagChicken, TriggerID: "chicken-1"})
	s.Equal(ActionCollected, res.Action)
	s.Equal(5, res.Collect.Total)
}

func (s *RouterTestSuite) TestCollectibleConsumedOnce() {
	s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagBread, TriggerID: "bread-1"})
	res := s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagBread, TriggerID: "bread-1"})

	s.Equal(ActionIgnored, res.Action)
	s.Equal(2, s.total())
}

func (s *RouterTestSuite) TestAnonymousCollectiblesAlwaysCount() {
	s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagBread})
	s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagBread})
	s.Equal(4, s.total())
}

func (s *RouterTestSuite) TestNonPlayerCannotCollect() {
	res := s.handle(&Arrival{Subject: models.TagGolfBall, Trigger: models.TagCheese, TriggerID: "cheese-1"})
	s.Equal(ActionIgnored, res.Action)

	// The cheese is still there for the player
	res = s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagCheese, TriggerID: "cheese-1"})
	s.Equal(ActionCollected, res.Action)
}

func (s *RouterTestSuite) TestGolfBallScoresAtPole() {
	res := s.handle(&Arrival{Subject: models.TagGolfBall, SubjectID: "ball-1", Trigger: models.TagGolfPole, Points: 10})
	s.Equal(ActionCollected, res.Action)
	s.Equal(10, res.Collect.Total)

	res = s.handle(&Arrival{Subject: models.TagGolfBall, SubjectID: "ball-1", Trigger: models.TagGolfPole, Points: 10})
	s.Equal(ActionIgnored, res.Action)

	res = s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagGolfPole})
	s.Equal(ActionIgnored, res.Action)
}

func (s *RouterTestSuite) TestSpeedBoost() {
	res := s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagSpeedBoost, TriggerID: "boost-1"})
	s.Equal(ActionBoosted, res.Action)
	s.Equal(player.DefaultMoveSpeed+SpeedBoostAmount, res.Boost.MoveSpeed)

	res = s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagSpeedBoost, TriggerID: "boost-1"})
	s.Equal(ActionIgnored, res.Action)
}

func (s *RouterTestSuite) TestLava() {
	res := s.handle(&Arrival{Subject: models.TagGolfBall, Trigger: models.TagLava})
	s.Equal(ActionIgnored, res.Action)

	res = s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagLava})
	s.Equal(ActionDied, res.Action)
	s.Equal(models.DeathOutcomeRespawned, res.Die.Outcome)
	s.Equal(2, res.Die.Lives)
}

func (s *RouterTestSuite) TestDoorAfterKeycard() {
	res := s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagDoor, TriggerID: "vault"})
	s.Equal(ActionDoor, res.Action)
	s.True(res.Door.Denied)

	s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagKeyCard, TriggerID: "card-1"})
	res = s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagDoor, TriggerID: "vault"})
	s.True(res.Door.Opened)
}

func (s *RouterTestSuite) TestGoal() {
	s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagCheese})
	res := s.handle(&Arrival{Subject: models.TagPlayer, Trigger: models.TagGoal})
	s.Equal(ActionGoal, res.Action)
	s.Equal(3, res.Goal.Total)
}

func (s *RouterTestSuite) TestMeaninglessPairIgnored() {
	res := s.handle(&Arrival{Subject: models.TagBread, Trigger: models.TagPlayer})
	s.Equal(ActionIgnored, res.Action)

	_, err := s.router.Handle(s.ctx, nil)
	s.Error(err)
}

func (s *RouterTestSuite) TestParseArrival() {
	a, err := ParseArrival([]string{"Player", "KeyCard", "card-1"})
	s.Require().NoError(err)
	s.Equal(&Arrival{Subject: models.TagPlayer, Trigger: models.TagKeyCard, TriggerID: "card-1"}, a)

	a, err = ParseArrival([]string{"GolfBall", "GolfPole", "ball-2", "15"})
	s.Require().NoError(err)
	s.Equal("ball-2", a.SubjectID)
	s.Equal(15, a.Points)

	_, err = ParseArrival([]string{"Player"})
	s.Error(err)

	_, err = ParseArrival([]string{"player", "Bread"})
	s.ErrorIs(err, ErrUnknownTag)

	_, err = ParseArrival([]string{"GolfBall", "GolfPole", "ball-2", "lots"})
	s.Error(err)
}

func (s *RouterTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)
	_, err = New(&Config{})
	s.Error(err)
}
