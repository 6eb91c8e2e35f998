// Package comment provides storage for messages left on character pages.
package comment

//go:generate mockgen -destination=mock/mock_repository.go -package=commentmock github.com/ocarena/oc-api/internal/repositories/comment Repository

import (
	"context"

	"github.com/ocarena/oc-api/internal/entities/game"
)

// Repository defines the interface for comment storage
type Repository interface {
	// Add appends a comment to a character page
	// Returns errors.InvalidArgument if input is invalid
	// Returns errors.Internal for storage failures
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// List returns a page's comments, newest first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AddInput defines the input for adding a comment. OwnerID is the player
// whose character page the comment is left on.
type AddInput struct {
	OwnerID string
	Comment *game.Comment
}

// AddOutput defines the output for adding a comment
type AddOutput struct {
	Comment *game.Comment
}

// ListInput defines the input for listing a page's comments
type ListInput struct {
	OwnerID string
}

// ListOutput defines the output for listing a page's comments
type ListOutput struct {
	Comments []game.Comment
}
