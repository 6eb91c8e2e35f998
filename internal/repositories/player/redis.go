package player

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	redisclient "github.com/ocarena/oc-api/internal/redis"
)

const (
	playerKeyPrefix      = "player:"
	customPowerKeyPrefix = "custompowers:"
	playerIndexKey       = "players:index"
	characterNamesKey    = "characters:names"

	// Error messages
	errPlayerIDEmpty  = "player ID cannot be empty"
	errCharacterNil   = "character cannot be nil"
	errCharacterEmpty = "character name cannot be empty"
)

// Key returns the storage key for a player record. Exported so the battle
// repository can address player state inside its resolution transaction.
func Key(playerID string) string {
	return playerKeyPrefix + playerID
}

// NameIndexKey returns the key of the reserved-names set
func NameIndexKey() string {
	return characterNamesKey
}

// NormalizeName lowercases a character name for the uniqueness index
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis player repository.
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

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) CreateCharacter(
	ctx context.Context,
	input CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.Name == "" {
		return nil, errors.InvalidArgument(errCharacterEmpty)
	}

	existing, err := r.Get(ctx, GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	if existing.Player.Character != nil {
		return nil, errors.AlreadyExistsf("player %s already has a character", input.PlayerID)
	}
	if existing.Player.Banned {
		return nil, errors.FailedPreconditionf("player %s is banned", input.PlayerID)
	}

	// Reserve the name first. SADD reports whether this call added the
	// member, so two concurrent creates cannot both claim a name.
	added, err := r.client.SAdd(ctx, characterNamesKey, NormalizeName(input.Character.Name)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reserve character name")
	}
	if added == 0 {
		return nil, errors.AlreadyExistsf("character name %q is already taken", input.Character.Name)
	}

	record := &game.Player{
		ID:        input.PlayerID,
		Character: input.Character,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(input.PlayerID), data, 0) // No TTL, characters live until destroyed
	pipe.SAdd(ctx, playerIndexKey, input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		// Free the reservation so the name isn't leaked by a failed create.
		r.client.SRem(ctx, characterNamesKey, NormalizeName(input.Character.Name))
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateCharacterOutput{Player: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, Key(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			// Accounts exist implicitly; absence means a fresh player.
			return &GetOutput{Player: &game.Player{ID: input.PlayerID}}, nil
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var record game.Player
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player record")
	}

	return &GetOutput{Player: &record}, nil
}

func (r *redisRepository) UpdateCharacter(
	ctx context.Context,
	input UpdateCharacterInput,
) (*UpdateCharacterOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	existing, err := r.Get(ctx, GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	if existing.Player.Character == nil {
		return nil, errors.NotFoundf("player %s has no character", input.PlayerID)
	}

	record := &game.Player{
		ID:        input.PlayerID,
		Character: input.Character,
		Banned:    existing.Player.Banned,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player record")
	}

	if err := r.client.Set(ctx, Key(input.PlayerID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateCharacterOutput{Player: record}, nil
}

func (r *redisRepository) AddCustomPower(
	ctx context.Context,
	input AddCustomPowerInput,
) (*AddCustomPowerOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	current, err := r.GetCustomPowers(ctx, GetCustomPowersInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	for _, p := range current.Powers {
		if strings.EqualFold(p.Name, input.Power.Name) {
			return nil, errors.AlreadyExistsf("custom power %q already exists", input.Power.Name)
		}
	}

	updated := append(current.Powers, input.Power)
	data, err := json.Marshal(updated)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal custom powers")
	}

	if err := r.client.Set(ctx, customPowerKeyPrefix+input.PlayerID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store custom power")
	}

	return &AddCustomPowerOutput{Powers: updated}, nil
}

func (r *redisRepository) GetCustomPowers(
	ctx context.Context,
	input GetCustomPowersInput,
) (*GetCustomPowersOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, customPowerKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetCustomPowersOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get custom powers")
	}

	var pool []game.Power
	if err := json.Unmarshal([]byte(result), &pool); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal custom powers")
	}

	return &GetCustomPowersOutput{Powers: pool}, nil
}

func (r *redisRepository) ListActive(ctx context.Context, input ListActiveInput) (*ListActiveOutput, error) {
	playerIDs, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player index")
	}

	players := make([]*game.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		out, err := r.Get(ctx, GetInput{PlayerID: id})
		if err != nil {
			slog.ErrorContext(ctx, "failed to get player from index",
				"player_id", id,
				"error", err.Error())
			return nil, errors.Wrapf(err, "failed to get player %s", id)
		}
		// Banned players and players whose character was destroyed stay in
		// the index but are not active.
		if out.Player.Character == nil || out.Player.Banned {
			continue
		}
		players = append(players, out.Player)
	}

	slog.DebugContext(ctx, "listed active players",
		"indexed", len(playerIDs),
		"active", len(players))

	return &ListActiveOutput{Players: players}, nil
}
