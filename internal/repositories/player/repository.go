// Package player provides persistence for player records: the character,
// the terminal ban flag, and the player's custom power pool.
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/ocarena/oc-api/internal/repositories/player Repository

import (
	"context"

	"github.com/ocarena/oc-api/internal/entities/game"
)

// Repository defines the interface for player persistence
type Repository interface {
	// CreateCharacter stores a new character for a player, reserving its
	// name atomically.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the player already has a character
	// or the name is taken (case-insensitive)
	// Returns errors.Internal for storage failures
	CreateCharacter(ctx context.Context, input CreateCharacterInput) (*CreateCharacterOutput, error)

	// Get retrieves a player record. A player with no stored state is
	// returned as an empty, unbanned record: accounts exist implicitly.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// UpdateCharacter overwrites a player's existing character. Used for
	// cosmetic edits only; battle outcomes go through the battle
	// repository's transaction.
	// Returns errors.NotFound if the player has no character
	UpdateCharacter(ctx context.Context, input UpdateCharacterInput) (*UpdateCharacterOutput, error)

	// AddCustomPower appends a power to the player's custom pool
	AddCustomPower(ctx context.Context, input AddCustomPowerInput) (*AddCustomPowerOutput, error)

	// GetCustomPowers retrieves the player's custom power pool
	GetCustomPowers(ctx context.Context, input GetCustomPowersInput) (*GetCustomPowersOutput, error)

	// ListActive retrieves all players that currently have a character and
	// are not banned, for the leaderboard and opponent browsing
	ListActive(ctx context.Context, input ListActiveInput) (*ListActiveOutput, error)
}

// CreateCharacterInput defines the input for creating a character
type CreateCharacterInput struct {
	PlayerID  string
	Character *game.Character
}

// CreateCharacterOutput defines the output for creating a character
type CreateCharacterOutput struct {
	Player *game.Player
}

// GetInput defines the input for getting a player
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *game.Player
}

// UpdateCharacterInput defines the input for updating a character
type UpdateCharacterInput struct {
	PlayerID  string
	Character *game.Character
}

// UpdateCharacterOutput defines the output for updating a character
type UpdateCharacterOutput struct {
	Player *game.Player
}

// AddCustomPowerInput defines the input for adding a custom power
type AddCustomPowerInput struct {
	PlayerID string
	Power    game.Power
}

// AddCustomPowerOutput defines the output for adding a custom power
type AddCustomPowerOutput struct {
	Powers []game.Power
}

// GetCustomPowersInput defines the input for fetching custom powers
type GetCustomPowersInput struct {
	PlayerID string
}

// GetCustomPowersOutput defines the output for fetching custom powers
type GetCustomPowersOutput struct {
	Powers []game.Power
}

// ListActiveInput defines the input for listing active players
type ListActiveInput struct{}

// ListActiveOutput defines the output for listing active players
type ListActiveOutput struct {
	Players []*game.Player
}
