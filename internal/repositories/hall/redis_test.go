package hall_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	"github.com/ocarena/oc-api/internal/repositories/hall"
	"github.com/ocarena/oc-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    hall.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	// Records are only ever written by battle resolution, so tests seed
	// them directly.
	client, cleanup := testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.seed(mr, "player_a", &game.DestructionRecord{
			Name:       "Frost",
			DefeatedBy: "Blaze",
			Stats:      game.Stats{Strength: 40, Speed: 40, Intelligence: 40},
			Date:       "2025-06-15",
			Timestamp:  200,
		})
		s.seed(mr, "player_b", &game.DestructionRecord{
			Name:       "Shade",
			DefeatedBy: "Blaze",
			Stats:      game.Stats{Strength: 30, Speed: 30, Intelligence: 30},
			Date:       "2025-06-01",
			Timestamp:  100,
		})
	})
	s.cleanup = cleanup

	repo, err := hall.NewRedis(&hall.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) seed(mr *miniredis.Miniredis, playerID string, record *game.DestructionRecord) {
	data, err := json.Marshal(record)
	s.Require().NoError(err)
	s.Require().NoError(mr.Set(hall.Key(playerID), string(data)))
	mr.SAdd(hall.IndexKey(), playerID)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestGet() {
	out, err := s.repo.Get(s.ctx, hall.GetInput{PlayerID: "player_a"})
	s.Require().NoError(err)
	s.Equal("Frost", out.Record.Name)
	s.Equal("Blaze", out.Record.DefeatedBy)
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, hall.GetInput{PlayerID: "player_alive"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListNewestFirst() {
	out, err := s.repo.List(s.ctx, hall.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Equal("Frost", out.Records[0].Name)
	s.Equal("Shade", out.Records[1].Name)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
