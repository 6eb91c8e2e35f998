package battle

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	"github.com/ocarena/oc-api/internal/pkg/clock"
	redisclient "github.com/ocarena/oc-api/internal/redis"
	"github.com/ocarena/oc-api/internal/repositories/battlerequest"
	"github.com/ocarena/oc-api/internal/repositories/hall"
	"github.com/ocarena/oc-api/internal/repositories/player"
)

const (
	errWinnerIDEmpty = "winner ID cannot be empty"
	errLoserIDEmpty  = "loser ID cannot be empty"
	errWinnerNil     = "winner character cannot be nil"
	errLoserNil      = "loser character cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis battle repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Clock == nil {
		return errors.InvalidArgument("clock cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed battle repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client, clock: cfg.Clock}, nil
}

// Resolve writes the winner's new state, the loser's ban, the destruction
// record, and the request cleanup in one transaction. The commit runs under
// WATCH on the loser's record and both player keys, so a concurrent
// resolution discards the whole transaction; an aborted resolution writes
// nothing.
func (r *redisRepository) Resolve(ctx context.Context, input ResolveInput) (*ResolveOutput, error) {
	if input.WinnerID == "" {
		return nil, errors.InvalidArgument(errWinnerIDEmpty)
	}
	if input.LoserID == "" {
		return nil, errors.InvalidArgument(errLoserIDEmpty)
	}
	if input.Winner == nil {
		return nil, errors.InvalidArgument(errWinnerNil)
	}
	if input.Loser == nil {
		return nil, errors.InvalidArgument(errLoserNil)
	}

	now := r.clock.Now()

	winner := buildWinner(input, now)

	record := &game.DestructionRecord{
		Name:         input.Loser.Name,
		DefeatedBy:   input.Winner.Name,
		PowersStolen: input.Loser.Powers,
		Stats:        input.Loser.Stats,
		Avatar:       input.Loser.Avatar,
		Date:         clock.ISODate(now),
		Timestamp:    now.Unix(),
	}

	winnerData, err := json.Marshal(&game.Player{ID: input.WinnerID, Character: winner})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal winner record")
	}

	// The loser's character is gone; the ban flag is all that remains.
	loserData, err := json.Marshal(&game.Player{ID: input.LoserID, Banned: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal loser record")
	}

	recordData, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal destruction record")
	}

	// A destruction record means this loser was already resolved. The
	// check runs inside the WATCH, so a record published between check
	// and EXEC fails the transaction before any write lands.
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, hall.Key(input.LoserID)).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to check destruction record")
		}
		if exists > 0 {
			return errors.Abortedf("player %s was already destroyed", input.LoserID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, player.Key(input.WinnerID), winnerData, 0)
			pipe.Set(ctx, player.Key(input.LoserID), loserData, 0)
			pipe.SetNX(ctx, hall.Key(input.LoserID), recordData, 0)
			pipe.SAdd(ctx, hall.IndexKey(), input.LoserID)
			// Both directions of the handshake are dead once either
			// side falls.
			pipe.Del(ctx, battlerequest.Key(input.WinnerID, input.LoserID))
			pipe.Del(ctx, battlerequest.Key(input.LoserID, input.WinnerID))
			pipe.SRem(ctx, battlerequest.InboxKey(input.WinnerID), input.LoserID)
			pipe.SRem(ctx, battlerequest.InboxKey(input.LoserID), input.WinnerID)
			return nil
		})
		return err
	}, hall.Key(input.LoserID), player.Key(input.WinnerID), player.Key(input.LoserID))
	if err != nil {
		if err == redis.TxFailedErr {
			// The watched keys changed under us; the other resolution
			// wrote a consistent end state and ours was discarded.
			return nil, errors.Abortedf("resolution for player %s lost to a concurrent write", input.LoserID)
		}
		if errors.IsAborted(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to resolve battle")
	}

	slog.InfoContext(ctx, "battle resolved",
		"winner_id", input.WinnerID,
		"loser_id", input.LoserID,
		"powers_absorbed", len(input.Loser.Powers))

	return &ResolveOutput{Winner: winner, Record: record}, nil
}

// buildWinner assembles the winner's post-battle character: absorbed powers
// appended, stats replaced with the caller-computed reward block, win count
// bumped, and history plus provenance entries recorded.
func buildWinner(input ResolveInput, now time.Time) *game.Character {
	ts := now.Unix()
	winner := *input.Winner

	winner.Powers = make([]game.Power, 0, len(input.Winner.Powers)+len(input.Loser.Powers))
	winner.Powers = append(winner.Powers, input.Winner.Powers...)
	winner.Powers = append(winner.Powers, input.Loser.Powers...)

	winner.Stats = input.WinnerStats
	winner.Wins = input.Winner.Wins + 1

	winner.History = append(append([]game.BattleHistory{}, input.Winner.History...), game.BattleHistory{
		Opponent:     input.Loser.Name,
		Result:       "won",
		Date:         clock.ISODate(now),
		PowersGained: input.Loser.Powers,
		StatsGained:  game.WinStatBonus,
		Timestamp:    ts,
	})

	absorbed := append([]game.AbsorbedPower{}, input.Winner.PowersAbsorbed...)
	for _, p := range input.Loser.Powers {
		absorbed = append(absorbed, game.AbsorbedPower{
			Power:        p,
			FromOpponent: input.Loser.Name,
			Timestamp:    ts,
		})
	}
	winner.PowersAbsorbed = absorbed

	return &winner
}
