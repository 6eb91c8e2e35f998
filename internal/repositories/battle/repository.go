// Package battle provides the battle resolution engine: the single atomic
// transition that absorbs the loser's powers into the winner, bans the
// loser, and publishes the destruction record.
package battle

//go:generate mockgen -destination=mock/mock_repository.go -package=battlemock github.com/ocarena/oc-api/internal/repositories/battle Repository

import (
	"context"

	"github.com/ocarena/oc-api/internal/entities/game"
)

// Repository defines the interface for battle resolution
type Repository interface {
	// Resolve applies a concluded battle's outcome as one atomic
	// multi-key write. Both character snapshots must be captured from a
	// single consistent read before calling. Not idempotent: the caller
	// guarantees at most one invocation per concluded battle, and the
	// engine refuses to resolve a loser that already has a destruction
	// record.
	// Returns errors.Aborted if the loser was already destroyed
	// Returns errors.Internal for storage failures
	Resolve(ctx context.Context, input ResolveInput) (*ResolveOutput, error)
}

// ResolveInput defines the input for resolving a battle. Winner and Loser
// are pre-battle snapshots; WinnerStats is the caller-computed reward stat
// block (rules.WinnerStats over the winner's pre-battle stats).
type ResolveInput struct {
	WinnerID    string
	LoserID     string
	Winner      *game.Character
	Loser       *game.Character
	WinnerStats game.Stats
}

// ResolveOutput defines the output for resolving a battle
type ResolveOutput struct {
	// Winner is the winner's post-battle character
	Winner *game.Character
	// Record is the published destruction record
	Record *game.DestructionRecord
}
