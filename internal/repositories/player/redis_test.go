package player_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ocarena/oc-api/internal/errors"
	"github.com/ocarena/oc-api/internal/repositories/player"
	"github.com/ocarena/oc-api/internal/testutils"
)

const testPlayerID = "player_123"

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    player.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateCharacter() {
	char := testutils.CreateTestCharacter("Blaze")

	out, err := s.repo.CreateCharacter(s.ctx, player.CreateCharacterInput{
		PlayerID:  testPlayerID,
		Character: char,
	})
	s.Require().NoError(err)
	s.Equal(testPlayerID, out.Player.ID)
	s.Equal("Blaze", out.Player.Character.Name)
	s.False(out.Player.Banned)

	got, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal("Blaze", got.Player.Character.Name)
}

func (s *RedisRepositoryTestSuite) TestCreateCharacterSecondCharacterRejected() {
	_, err := s.repo.CreateCharacter(s.ctx, player.CreateCharacterInput{
		PlayerID:  testPlayerID,
		Character: testutils.CreateTestCharacter("Blaze"),
	})
	s.Require().NoError(err)

	_, err = s.repo.CreateCharacter(s.ctx, player.CreateCharacterInput{
		PlayerID:  testPlayerID,
		Character: testutils.CreateTestCharacter("Other"),
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateCharacterNameConflictCaseInsensitive() {
	_, err := s.repo.CreateCharacter(s.ctx, player.CreateCharacterInput{
		PlayerID:  testPlayerID,
		Character: testutils.CreateTestCharacter("Blaze"),
	})
	s.Require().NoError(err)

	_, err = s.repo.CreateCharacter(s.ctx, player.CreateCharacterInput{
		PlayerID:  "player_456",
		Character: testutils.CreateTestCharacter("BLAZE"),
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetUnknownPlayerIsFresh() {
	got, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: "never_seen"})
	s.Require().NoError(err)
	s.Equal("never_seen", got.Player.ID)
	s.Nil(got.Player.Character)
	s.False(got.Player.Banned)
}

func (s *RedisRepositoryTestSuite) TestUpdateCharacter() {
	_, err := s.repo.CreateCharacter(s.ctx, player.CreateCharacterInput{
		PlayerID:  testPlayerID,
		Character: testutils.CreateTestCharacter("Blaze"),
	})
	s.Require().NoError(err)

	updated := testutils.CreateTestCharacter("Blaze")
	updated.Backstory = "Rewritten origin"

	out, err := s.repo.UpdateCharacter(s.ctx, player.UpdateCharacterInput{
		PlayerID:  testPlayerID,
		Character: updated,
	})
	s.Require().NoError(err)
	s.Equal("Rewritten origin", out.Player.Character.Backstory)
}

func (s *RedisRepositoryTestSuite) TestUpdateCharacterWithoutCharacter() {
	_, err := s.repo.UpdateCharacter(s.ctx, player.UpdateCharacterInput{
		PlayerID:  "no_character",
		Character: testutils.CreateTestCharacter("Ghost"),
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCustomPowers() {
	out, err := s.repo.AddCustomPower(s.ctx, player.AddCustomPowerInput{
		PlayerID: testPlayerID,
		Power:    testutils.CreateTestCharacter("x").Powers[0],
	})
	s.Require().NoError(err)
	s.Len(out.Powers, 1)

	_, err = s.repo.AddCustomPower(s.ctx, player.AddCustomPowerInput{
		PlayerID: testPlayerID,
		Power:    testutils.CreateTestCharacter("x").Powers[0],
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	got, err := s.repo.GetCustomPowers(s.ctx, player.GetCustomPowersInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Len(got.Powers, 1)
}

func (s *RedisRepositoryTestSuite) TestListActive() {
	_, err := s.repo.CreateCharacter(s.ctx, player.CreateCharacterInput{
		PlayerID:  "player_a",
		Character: testutils.CreateTestCharacter("Alpha"),
	})
	s.Require().NoError(err)
	_, err = s.repo.CreateCharacter(s.ctx, player.CreateCharacterInput{
		PlayerID:  "player_b",
		Character: testutils.CreateTestCharacter("Bravo"),
	})
	s.Require().NoError(err)

	out, err := s.repo.ListActive(s.ctx, player.ListActiveInput{})
	s.Require().NoError(err)
	s.Len(out.Players, 2)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
