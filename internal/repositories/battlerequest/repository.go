// Package battlerequest provides persistence for the battle consent
// handshake between a challenger and a target.
package battlerequest

//go:generate mockgen -destination=mock/mock_repository.go -package=battlerequestmock github.com/ocarena/oc-api/internal/repositories/battlerequest Repository

import (
	"context"

	"github.com/ocarena/oc-api/internal/entities/game"
)

// Repository defines the interface for battle request persistence
type Repository interface {
	// Send stores a pending request in the target's inbox. Re-sending
	// overwrites any prior request for the same (target, challenger) pair.
	Send(ctx context.Context, input SendInput) (*SendOutput, error)

	// Get retrieves one request by (target, challenger)
	// Returns errors.NotFound if no request exists for the pair
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all requests in a target's inbox
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Accept transitions a pending request to accepted. Purely a consent
	// gate; no character state changes here.
	// Returns errors.NotFound if no request exists for the pair
	Accept(ctx context.Context, input AcceptInput) (*AcceptOutput, error)

	// Delete removes a request (rejection, or stale cleanup). Deleting a
	// missing request is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SendInput defines the input for sending a request
type SendInput struct {
	TargetID string
	Request  *game.BattleRequest
}

// SendOutput defines the output for sending a request
type SendOutput struct {
	Request *game.BattleRequest
}

// GetInput defines the input for getting a request
type GetInput struct {
	TargetID string
	FromID   string
}

// GetOutput defines the output for getting a request
type GetOutput struct {
	Request *game.BattleRequest
}

// ListInput defines the input for listing a target's inbox
type ListInput struct {
	TargetID string
}

// ListOutput defines the output for listing a target's inbox
type ListOutput struct {
	Requests []*game.BattleRequest
}

// AcceptInput defines the input for accepting a request
type AcceptInput struct {
	TargetID string
	FromID   string
}

// AcceptOutput defines the output for accepting a request
type AcceptOutput struct {
	Request *game.BattleRequest
}

// DeleteInput defines the input for deleting a request
type DeleteInput struct {
	TargetID string
	FromID   string
}

// DeleteOutput defines the output for deleting a request
type DeleteOutput struct{}
