// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/ocarena/oc-api/internal/services/character Service

import (
	"context"

	"github.com/ocarena/oc-api/internal/entities/game"
)

// Service defines the interface for character operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)

	// Powers
	ListPowers(ctx context.Context, input *ListPowersInput) (*ListPowersOutput, error)
	CreateCustomPower(ctx context.Context, input *CreateCustomPowerInput) (*CreateCustomPowerOutput, error)

	// Standings
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// Character page comments
	AddComment(ctx context.Context, input *AddCommentInput) (*AddCommentOutput, error)
	ListComments(ctx context.Context, input *ListCommentsInput) (*ListCommentsOutput, error)
}

// CreateCharacterInput defines the request for creating a character.
// PowerNames are resolved against the fixed catalog plus the player's
// custom power pool.
type CreateCharacterInput struct {
	PlayerID       string
	Name           string
	Backstory      string
	Avatar         string
	SpecialAbility string
	Stats          game.Stats
	PowerNames     []string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *game.Character
	Title     string
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	PlayerID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *game.Character
	Title     string
	Banned    bool
}

// UpdateProfileInput defines the request for a cosmetic profile edit.
// Nil fields are left unchanged. Stats, powers, and wins are not editable
// through this operation.
type UpdateProfileInput struct {
	PlayerID       string
	Backstory      *string
	Avatar         *string
	SpecialAbility *string
}

// UpdateProfileOutput defines the response for a cosmetic profile edit
type UpdateProfileOutput struct {
	Character *game.Character
}

// ListPowersInput defines the request for listing selectable powers
type ListPowersInput struct {
	PlayerID string
}

// ListPowersOutput defines the response for listing selectable powers
type ListPowersOutput struct {
	Powers []game.Power
}

// CreateCustomPowerInput defines the request for creating a custom power
type CreateCustomPowerInput struct {
	PlayerID string
	Power    game.Power
}

// CreateCustomPowerOutput defines the response for creating a custom power
type CreateCustomPowerOutput struct {
	Powers []game.Power
}

// LeaderboardInput defines the request for the leaderboard
type LeaderboardInput struct {
	// Limit caps the number of entries; 0 means the default of 10
	Limit int
}

// LeaderboardEntry is one leaderboard row
type LeaderboardEntry struct {
	Rank       int
	PlayerID   string
	Name       string
	Avatar     string
	TotalPower int
	Wins       int
	Title      string
}

// LeaderboardOutput defines the response for the leaderboard
type LeaderboardOutput struct {
	Entries []LeaderboardEntry
}

// AddCommentInput defines the request for commenting on a character page
type AddCommentInput struct {
	OwnerID  string
	AuthorID string
	Body     string
}

// AddCommentOutput defines the response for commenting on a character page
type AddCommentOutput struct {
	Comment *game.Comment
}

// ListCommentsInput defines the request for listing a page's comments
type ListCommentsInput struct {
	OwnerID string
}

// ListCommentsOutput defines the response for listing a page's comments
type ListCommentsOutput struct {
	Comments []game.Comment
}
