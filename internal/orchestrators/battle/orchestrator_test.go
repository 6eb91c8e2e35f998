package battle_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	battleorc "github.com/ocarena/oc-api/internal/orchestrators/battle"
	clockmock "github.com/ocarena/oc-api/internal/pkg/clock/mock"
	battlerepo "github.com/ocarena/oc-api/internal/repositories/battle"
	battlerepomock "github.com/ocarena/oc-api/internal/repositories/battle/mock"
	requestrepo "github.com/ocarena/oc-api/internal/repositories/battlerequest"
	requestmock "github.com/ocarena/oc-api/internal/repositories/battlerequest/mock"
	hallrepo "github.com/ocarena/oc-api/internal/repositories/hall"
	hallmock "github.com/ocarena/oc-api/internal/repositories/hall/mock"
	playerrepo "github.com/ocarena/oc-api/internal/repositories/player"
	playermock "github.com/ocarena/oc-api/internal/repositories/player/mock"
	battlesvc "github.com/ocarena/oc-api/internal/services/battle"
	"github.com/ocarena/oc-api/internal/testutils"
)

const (
	testChallengerID = "player_challenger"
	testDefenderID   = "player_defender"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPlayerRepo  *playermock.MockRepository
	mockRequestRepo *requestmock.MockRepository
	mockBattleRepo  *battlerepomock.MockRepository
	mockHallRepo    *hallmock.MockRepository
	mockClock       *clockmock.MockClock
	orchestrator    *battleorc.Orchestrator
	ctx             context.Context
	now             time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playermock.NewMockRepository(s.ctrl)
	s.mockRequestRepo = requestmock.NewMockRepository(s.ctrl)
	s.mockBattleRepo = battlerepomock.NewMockRepository(s.ctrl)
	s.mockHallRepo = hallmock.NewMockRepository(s.ctrl)
	s.mockClock = clockmock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	orc, err := battleorc.New(&battleorc.Config{
		PlayerRepo:  s.mockPlayerRepo,
		RequestRepo: s.mockRequestRepo,
		BattleRepo:  s.mockBattleRepo,
		HallRepo:    s.mockHallRepo,
		Clock:       s.mockClock,
		RandSource:  rand.NewSource(42),
	})
	s.Require().NoError(err)
	s.orchestrator = orc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectActivePlayer(playerID, name string) *game.Player {
	p := &game.Player{ID: playerID, Character: testutils.CreateTestCharacter(name)}
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{PlayerID: playerID}).
		Return(&playerrepo.GetOutput{Player: p}, nil)
	return p
}

func (s *OrchestratorTestSuite) TestSendRequest() {
	s.expectActivePlayer(testChallengerID, "Blaze")
	s.expectActivePlayer(testDefenderID, "Frost")
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mockRequestRepo.EXPECT().
		Send(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input requestrepo.SendInput) (*requestrepo.SendOutput, error) {
			s.Equal(testDefenderID, input.TargetID)
			s.Equal(testChallengerID, input.Request.FromID)
			s.Equal("Blaze", input.Request.FromName)
			s.Equal(150, input.Request.FromPower)
			s.Equal(game.RequestStatusPending, input.Request.Status)
			s.Equal("Blaze", input.Request.FromCharacter.Name)
			return &requestrepo.SendOutput{Request: input.Request}, nil
		})

	out, err := s.orchestrator.SendRequest(s.ctx, &battlesvc.SendRequestInput{
		ChallengerID: testChallengerID,
		TargetID:     testDefenderID,
	})
	s.Require().NoError(err)
	s.Equal(game.RequestStatusPending, out.Request.Status)
}

func (s *OrchestratorTestSuite) TestSendRequestToSelf() {
	_, err := s.orchestrator.SendRequest(s.ctx, &battlesvc.SendRequestInput{
		ChallengerID: testChallengerID,
		TargetID:     testChallengerID,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSendRequestTargetBanned() {
	s.expectActivePlayer(testChallengerID, "Blaze")
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{PlayerID: testDefenderID}).
		Return(&playerrepo.GetOutput{Player: &game.Player{ID: testDefenderID, Banned: true}}, nil)

	_, err := s.orchestrator.SendRequest(s.ctx, &battlesvc.SendRequestInput{
		ChallengerID: testChallengerID,
		TargetID:     testDefenderID,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSendRequestChallengerWithoutCharacter() {
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{PlayerID: testChallengerID}).
		Return(&playerrepo.GetOutput{Player: &game.Player{ID: testChallengerID}}, nil)

	_, err := s.orchestrator.SendRequest(s.ctx, &battlesvc.SendRequestInput{
		ChallengerID: testChallengerID,
		TargetID:     testDefenderID,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAcceptRequest() {
	s.expectActivePlayer(testDefenderID, "Frost")
	s.mockRequestRepo.EXPECT().
		Accept(s.ctx, requestrepo.AcceptInput{TargetID: testDefenderID, FromID: testChallengerID}).
		Return(&requestrepo.AcceptOutput{Request: &game.BattleRequest{
			FromID: testChallengerID,
			Status: game.RequestStatusAccepted,
		}}, nil)

	out, err := s.orchestrator.AcceptRequest(s.ctx, &battlesvc.AcceptRequestInput{
		PlayerID:     testDefenderID,
		ChallengerID: testChallengerID,
	})
	s.Require().NoError(err)
	s.Equal(game.RequestStatusAccepted, out.Request.Status)
}

func (s *OrchestratorTestSuite) TestRejectRequest() {
	s.mockRequestRepo.EXPECT().
		Delete(s.ctx, requestrepo.DeleteInput{TargetID: testDefenderID, FromID: testChallengerID}).
		Return(&requestrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.RejectRequest(s.ctx, &battlesvc.RejectRequestInput{
		PlayerID:     testDefenderID,
		ChallengerID: testChallengerID,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestFight() {
	// A hopeless mismatch so the winner does not depend on the RNG: the
	// challenger's snapshot dwarfs the defender.
	challengerChar := testutils.CreateTestCharacterWithStats("Blaze", 150, 150, 150)
	defenderChar := testutils.CreateTestCharacterWithStats("Frost", 1, 1, 1)

	s.mockRequestRepo.EXPECT().
		Get(s.ctx, requestrepo.GetInput{TargetID: testDefenderID, FromID: testChallengerID}).
		Return(&requestrepo.GetOutput{Request: &game.BattleRequest{
			FromID:        testChallengerID,
			FromCharacter: *challengerChar,
			Status:        game.RequestStatusAccepted,
		}}, nil)
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{PlayerID: testDefenderID}).
		Return(&playerrepo.GetOutput{Player: &game.Player{ID: testDefenderID, Character: defenderChar}}, nil)
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{PlayerID: testChallengerID}).
		Return(&playerrepo.GetOutput{Player: &game.Player{ID: testChallengerID, Character: challengerChar}}, nil)
	s.mockBattleRepo.EXPECT().
		Resolve(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input battlerepo.ResolveInput) (*battlerepo.ResolveOutput, error) {
			s.Equal(testChallengerID, input.WinnerID)
			s.Equal(testDefenderID, input.LoserID)
			s.Equal(game.Stats{Strength: 150, Speed: 150, Intelligence: 150}, input.WinnerStats)
			return &battlerepo.ResolveOutput{
				Winner: input.Winner,
				Record: &game.DestructionRecord{Name: input.Loser.Name, DefeatedBy: input.Winner.Name},
			}, nil
		})

	out, err := s.orchestrator.Fight(s.ctx, &battlesvc.FightInput{
		PlayerID:     testDefenderID,
		ChallengerID: testChallengerID,
	})
	s.Require().NoError(err)
	s.Equal(testChallengerID, out.WinnerID)
	s.Equal(testDefenderID, out.LoserID)
	s.Equal("Frost", out.Record.Name)
	s.NotEmpty(out.Outcome.Rounds)
}

func (s *OrchestratorTestSuite) TestFightConcurrent() {
	// Each fight derives its own generator, so parallel simulations must
	// not interfere with each other.
	challengerChar := testutils.CreateTestCharacterWithStats("Blaze", 150, 150, 150)
	defenderChar := testutils.CreateTestCharacterWithStats("Frost", 1, 1, 1)

	s.mockRequestRepo.EXPECT().
		Get(s.ctx, requestrepo.GetInput{TargetID: testDefenderID, FromID: testChallengerID}).
		Return(&requestrepo.GetOutput{Request: &game.BattleRequest{
			FromID:        testChallengerID,
			FromCharacter: *challengerChar,
			Status:        game.RequestStatusAccepted,
		}}, nil).
		AnyTimes()
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{PlayerID: testDefenderID}).
		Return(&playerrepo.GetOutput{Player: &game.Player{ID: testDefenderID, Character: defenderChar}}, nil).
		AnyTimes()
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{PlayerID: testChallengerID}).
		Return(&playerrepo.GetOutput{Player: &game.Player{ID: testChallengerID, Character: challengerChar}}, nil).
		AnyTimes()
	s.mockBattleRepo.EXPECT().
		Resolve(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input battlerepo.ResolveInput) (*battlerepo.ResolveOutput, error) {
			return &battlerepo.ResolveOutput{
				Winner: input.Winner,
				Record: &game.DestructionRecord{Name: input.Loser.Name},
			}, nil
		}).
		AnyTimes()

	const fights = 8
	var wg sync.WaitGroup
	results := make([]*battlesvc.FightOutput, fights)
	fightErrs := make([]error, fights)

	for i := 0; i < fights; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], fightErrs[i] = s.orchestrator.Fight(s.ctx, &battlesvc.FightInput{
				PlayerID:     testDefenderID,
				ChallengerID: testChallengerID,
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < fights; i++ {
		s.Require().NoError(fightErrs[i])
		s.Equal(testChallengerID, results[i].WinnerID)
		s.NotEmpty(results[i].Outcome.Rounds)
	}
}

func (s *OrchestratorTestSuite) TestFightNotAccepted() {
	s.mockRequestRepo.EXPECT().
		Get(s.ctx, requestrepo.GetInput{TargetID: testDefenderID, FromID: testChallengerID}).
		Return(&requestrepo.GetOutput{Request: &game.BattleRequest{
			FromID: testChallengerID,
			Status: game.RequestStatusPending,
		}}, nil)

	_, err := s.orchestrator.Fight(s.ctx, &battlesvc.FightInput{
		PlayerID:     testDefenderID,
		ChallengerID: testChallengerID,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFightNoRequest() {
	s.mockRequestRepo.EXPECT().
		Get(s.ctx, requestrepo.GetInput{TargetID: testDefenderID, FromID: testChallengerID}).
		Return(nil, errors.NotFound("no request"))

	_, err := s.orchestrator.Fight(s.ctx, &battlesvc.FightInput{
		PlayerID:     testDefenderID,
		ChallengerID: testChallengerID,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestResolve() {
	s.mockRequestRepo.EXPECT().
		Get(s.ctx, requestrepo.GetInput{TargetID: testChallengerID, FromID: testDefenderID}).
		Return(nil, errors.NotFound("no request"))
	s.mockRequestRepo.EXPECT().
		Get(s.ctx, requestrepo.GetInput{TargetID: testDefenderID, FromID: testChallengerID}).
		Return(&requestrepo.GetOutput{Request: &game.BattleRequest{
			FromID: testChallengerID,
			Status: game.RequestStatusAccepted,
		}}, nil)
	winner := s.expectActivePlayer(testChallengerID, "Blaze")
	s.expectActivePlayer(testDefenderID, "Frost")
	s.mockBattleRepo.EXPECT().
		Resolve(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input battlerepo.ResolveInput) (*battlerepo.ResolveOutput, error) {
			s.Equal(testChallengerID, input.WinnerID)
			// 50+10 on each stat, well under the cap.
			s.Equal(game.Stats{Strength: 60, Speed: 60, Intelligence: 60}, input.WinnerStats)
			return &battlerepo.ResolveOutput{Winner: winner.Character, Record: &game.DestructionRecord{}}, nil
		})

	_, err := s.orchestrator.Resolve(s.ctx, &battlesvc.ResolveInput{
		WinnerID: testChallengerID,
		LoserID:  testDefenderID,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestResolveNoAcceptedRequest() {
	s.mockRequestRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no request")).
		Times(2)

	_, err := s.orchestrator.Resolve(s.ctx, &battlesvc.ResolveInput{
		WinnerID: testChallengerID,
		LoserID:  testDefenderID,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGetDestroyed() {
	s.mockHallRepo.EXPECT().
		Get(s.ctx, hallrepo.GetInput{PlayerID: testDefenderID}).
		Return(&hallrepo.GetOutput{Record: &game.DestructionRecord{Name: "Frost"}}, nil)

	out, err := s.orchestrator.GetDestroyed(s.ctx, &battlesvc.GetDestroyedInput{PlayerID: testDefenderID})
	s.Require().NoError(err)
	s.Equal("Frost", out.Record.Name)
}

func (s *OrchestratorTestSuite) TestListDestroyed() {
	s.mockHallRepo.EXPECT().
		List(s.ctx, hallrepo.ListInput{}).
		Return(&hallrepo.ListOutput{Records: []*game.DestructionRecord{{Name: "Frost"}}}, nil)

	out, err := s.orchestrator.ListDestroyed(s.ctx, &battlesvc.ListDestroyedInput{})
	s.Require().NoError(err)
	s.Len(out.Records, 1)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
