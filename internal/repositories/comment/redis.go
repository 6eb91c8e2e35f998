package comment

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	redisclient "github.com/ocarena/oc-api/internal/redis"
)

const (
	commentKeyPrefix = "comments:"

	errOwnerIDEmpty = "owner ID cannot be empty"
	errCommentNil   = "comment cannot be nil"
)

// Key returns the storage key for a character page's comment list
func Key(ownerID string) string {
	return commentKeyPrefix + ownerID
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis comment repository.
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

// NewRedis creates a new Redis-backed comment repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Comment == nil {
		return nil, errors.InvalidArgument(errCommentNil)
	}

	data, err := json.Marshal(input.Comment)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal comment")
	}

	// RPUSH keeps the list in insertion order; List reverses for display.
	if err := r.client.RPush(ctx, Key(input.OwnerID), data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store comment")
	}

	return &AddOutput{Comment: input.Comment}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	// LRANGE on a missing key yields an empty list, so absence is not an
	// error here.
	raw, err := r.client.LRange(ctx, Key(input.OwnerID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list comments")
	}

	comments := make([]game.Comment, 0, len(raw))
	for _, item := range raw {
		var c game.Comment
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal comment")
		}
		comments = append(comments, c)
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp > comments[j].Timestamp
	})

	return &ListOutput{Comments: comments}, nil
}
