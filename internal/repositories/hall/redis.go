package hall

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	redisclient "github.com/ocarena/oc-api/internal/redis"
)

const (
	recordKeyPrefix = "hall:"
	hallIndexKey    = "hall:index"

	errPlayerIDEmpty = "player ID cannot be empty"
)

// Key returns the storage key for a defeated player's destruction record.
// Exported so the battle repository can publish records inside its
// resolution transaction.
func Key(playerID string) string {
	return recordKeyPrefix + playerID
}

// IndexKey returns the key of the hall index set
func IndexKey() string {
	return hallIndexKey
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis hall repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed hall repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, Key(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no destruction record for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get destruction record")
	}

	var record game.DestructionRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal destruction record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	playerIDs, err := r.client.SMembers(ctx, hallIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get hall index")
	}

	records := make([]*game.DestructionRecord, 0, len(playerIDs))
	for _, id := range playerIDs {
		out, err := r.Get(ctx, GetInput{PlayerID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get destruction record for %s", id)
		}
		records = append(records, out.Record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})

	return &ListOutput{Records: records}, nil
}
