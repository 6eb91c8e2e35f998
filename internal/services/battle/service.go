// Package battle defines the interface for battle operations
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/ocarena/oc-api/internal/services/battle Service

import (
	"context"

	enginebattle "github.com/ocarena/oc-api/internal/engine/battle"
	"github.com/ocarena/oc-api/internal/entities/game"
)

// Service defines the interface for battle operations
type Service interface {
	// Consent handshake
	SendRequest(ctx context.Context, input *SendRequestInput) (*SendRequestOutput, error)
	ListRequests(ctx context.Context, input *ListRequestsInput) (*ListRequestsOutput, error)
	AcceptRequest(ctx context.Context, input *AcceptRequestInput) (*AcceptRequestOutput, error)
	RejectRequest(ctx context.Context, input *RejectRequestInput) (*RejectRequestOutput, error)

	// Fight simulates the battle for an accepted request and resolves the
	// outcome. The loser's character is destroyed and their account banned;
	// this is not reversible.
	Fight(ctx context.Context, input *FightInput) (*FightOutput, error)

	// Resolve applies a battle outcome directly. Fight calls this after
	// simulation; it is exported for operational replay but is not routed
	// over HTTP, since the simulation is the only authority on outcomes.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Hall of destruction
	GetDestroyed(ctx context.Context, input *GetDestroyedInput) (*GetDestroyedOutput, error)
	ListDestroyed(ctx context.Context, input *ListDestroyedInput) (*ListDestroyedOutput, error)
}

// SendRequestInput defines the request for challenging another player
type SendRequestInput struct {
	ChallengerID string
	TargetID     string
}

// SendRequestOutput defines the response for challenging another player
type SendRequestOutput struct {
	Request *game.BattleRequest
}

// ListRequestsInput defines the request for listing a player's inbox
type ListRequestsInput struct {
	PlayerID string
}

// ListRequestsOutput defines the response for listing a player's inbox
type ListRequestsOutput struct {
	Requests []*game.BattleRequest
}

// AcceptRequestInput defines the request for accepting a challenge
type AcceptRequestInput struct {
	PlayerID     string
	ChallengerID string
}

// AcceptRequestOutput defines the response for accepting a challenge
type AcceptRequestOutput struct {
	Request *game.BattleRequest
}

// RejectRequestInput defines the request for rejecting a challenge
type RejectRequestInput struct {
	PlayerID     string
	ChallengerID string
}

// RejectRequestOutput defines the response for rejecting a challenge
type RejectRequestOutput struct{}

// FightInput defines the request for running an accepted battle.
// PlayerID is the defender who accepted; ChallengerID sent the request.
type FightInput struct {
	PlayerID     string
	ChallengerID string
}

// FightOutput defines the response for running an accepted battle
type FightOutput struct {
	Outcome  *enginebattle.Outcome
	WinnerID string
	LoserID  string
	Winner   *game.Character
	Record   *game.DestructionRecord
}

// ResolveInput defines the request for applying a battle outcome
type ResolveInput struct {
	WinnerID string
	LoserID  string
}

// ResolveOutput defines the response for applying a battle outcome
type ResolveOutput struct {
	Winner *game.Character
	Record *game.DestructionRecord
}

// GetDestroyedInput defines the request for one destruction record
type GetDestroyedInput struct {
	PlayerID string
}

// GetDestroyedOutput defines the response for one destruction record
type GetDestroyedOutput struct {
	Record *game.DestructionRecord
}

// ListDestroyedInput defines the request for listing destruction records
type ListDestroyedInput struct{}

// ListDestroyedOutput defines the response for listing destruction records
type ListDestroyedOutput struct {
	Records []*game.DestructionRecord
}
