// Package hall provides read access to the hall of destruction, the
// permanent public record of fallen characters. Records are written only by
// the battle repository's resolution transaction.
package hall

//go:generate mockgen -destination=mock/mock_repository.go -package=hallmock github.com/ocarena/oc-api/internal/repositories/hall Repository

import (
	"context"

	"github.com/ocarena/oc-api/internal/entities/game"
)

// Repository defines the interface for destruction record access
type Repository interface {
	// Get retrieves the destruction record for a defeated player
	// Returns errors.NotFound if the player was never destroyed
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all destruction records, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a record
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *game.DestructionRecord
}

// ListInput defines the input for listing records
type ListInput struct{}

// ListOutput defines the output for listing records
type ListOutput struct {
	Records []*game.DestructionRecord
}
