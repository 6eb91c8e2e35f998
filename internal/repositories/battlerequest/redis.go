package battlerequest

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	redisclient "github.com/ocarena/oc-api/internal/redis"
)

const (
	requestKeyPrefix = "battlereq:"
	inboxIndexPrefix = "battlereq:inbox:"

	errTargetIDEmpty = "target ID cannot be empty"
	errFromIDEmpty   = "challenger ID cannot be empty"
	errRequestNil    = "request cannot be nil"
)

// Key returns the storage key for a (target, challenger) request pair.
// Exported so the battle repository can consume the request inside its
// resolution transaction.
func Key(targetID, fromID string) string {
	return requestKeyPrefix + targetID + ":" + fromID
}

// InboxKey returns the key of a target's inbox index set
func InboxKey(targetID string) string {
	return inboxIndexPrefix + targetID
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis battle request repository.
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

// NewRedis creates a new Redis-backed battle request repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Send(ctx context.Context, input SendInput) (*SendOutput, error) {
	if input.TargetID == "" {
		return nil, errors.InvalidArgument(errTargetIDEmpty)
	}
	if input.Request == nil {
		return nil, errors.InvalidArgument(errRequestNil)
	}
	if input.Request.FromID == "" {
		return nil, errors.InvalidArgument(errFromIDEmpty)
	}

	data, err := json.Marshal(input.Request)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle request")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(input.TargetID, input.Request.FromID), data, 0)
	pipe.SAdd(ctx, InboxKey(input.TargetID), input.Request.FromID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to send battle request")
	}

	return &SendOutput{Request: input.Request}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.TargetID == "" {
		return nil, errors.InvalidArgument(errTargetIDEmpty)
	}
	if input.FromID == "" {
		return nil, errors.InvalidArgument(errFromIDEmpty)
	}

	result, err := r.client.Get(ctx, Key(input.TargetID, input.FromID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no battle request from %s to %s", input.FromID, input.TargetID)
		}
		return nil, errors.Wrapf(err, "failed to get battle request")
	}

	var req game.BattleRequest
	if err := json.Unmarshal([]byte(result), &req); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal battle request")
	}

	return &GetOutput{Request: &req}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.TargetID == "" {
		return nil, errors.InvalidArgument(errTargetIDEmpty)
	}

	fromIDs, err := r.client.SMembers(ctx, InboxKey(input.TargetID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get inbox index")
	}

	requests := make([]*game.BattleRequest, 0, len(fromIDs))
	for _, fromID := range fromIDs {
		out, err := r.Get(ctx, GetInput{TargetID: input.TargetID, FromID: fromID})
		if err != nil {
			// A consumed request may leave a stale index entry; clean it up.
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "battle request missing, cleaning up inbox index",
					"target_id", input.TargetID,
					"from_id", fromID)
				r.client.SRem(ctx, InboxKey(input.TargetID), fromID)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get battle request from %s", fromID)
		}
		requests = append(requests, out.Request)
	}

	return &ListOutput{Requests: requests}, nil
}

func (r *redisRepository) Accept(ctx context.Context, input AcceptInput) (*AcceptOutput, error) {
	existing, err := r.Get(ctx, GetInput{TargetID: input.TargetID, FromID: input.FromID})
	if err != nil {
		return nil, err
	}

	req := existing.Request
	req.Status = game.RequestStatusAccepted

	data, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle request")
	}

	if err := r.client.Set(ctx, Key(input.TargetID, input.FromID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to accept battle request")
	}

	return &AcceptOutput{Request: req}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.TargetID == "" {
		return nil, errors.InvalidArgument(errTargetIDEmpty)
	}
	if input.FromID == "" {
		return nil, errors.InvalidArgument(errFromIDEmpty)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, Key(input.TargetID, input.FromID))
	pipe.SRem(ctx, InboxKey(input.TargetID), input.FromID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete battle request")
	}

	return &DeleteOutput{}, nil
}
