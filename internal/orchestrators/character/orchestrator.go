// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	"github.com/ocarena/oc-api/internal/pkg/clock"
	"github.com/ocarena/oc-api/internal/pkg/idgen"
	"github.com/ocarena/oc-api/internal/pkg/metrics"
	"github.com/ocarena/oc-api/internal/powers"
	commentrepo "github.com/ocarena/oc-api/internal/repositories/comment"
	playerrepo "github.com/ocarena/oc-api/internal/repositories/player"
	"github.com/ocarena/oc-api/internal/rules"
	"github.com/ocarena/oc-api/internal/services/character"
)

const (
	specialAbilityMaxLen    = 1000
	commentBodyMaxLen       = 500
	defaultLeaderboardLimit = 10
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	PlayerRepo  playerrepo.Repository
	CommentRepo commentrepo.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.CommentRepo == nil {
		vb.RequiredField("CommentRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	playerRepo  playerrepo.Repository
	commentRepo commentrepo.Repository
	clock       clock.Clock
	idGenerator idgen.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		playerRepo:  cfg.PlayerRepo,
		commentRepo: cfg.CommentRepo,
		clock:       cfg.Clock,
		idGenerator: cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// CreateCharacter validates and stores a player's one character
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("specialAbility", input.SpecialAbility, specialAbilityMaxLen, vb)
	errors.ValidateRange("strength", input.Stats.Strength, game.StatMin, game.StatMax, vb)
	errors.ValidateRange("speed", input.Stats.Speed, game.StatMin, game.StatMax, vb)
	errors.ValidateRange("intelligence", input.Stats.Intelligence, game.StatMin, game.StatMax, vb)
	if input.Stats.Total() > game.CreationStatBudget {
		vb.Fieldf("stats", "stat total %d exceeds the creation budget of %d",
			input.Stats.Total(), game.CreationStatBudget)
	}
	if len(input.PowerNames) != game.StartingPowerCount {
		vb.Fieldf("powers", "exactly %d starting powers required, got %d",
			game.StartingPowerCount, len(input.PowerNames))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	pool, err := o.playerRepo.GetCustomPowers(ctx, playerrepo.GetCustomPowersInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	resolved := make([]game.Power, 0, len(input.PowerNames))
	for _, name := range input.PowerNames {
		p, err := powers.Lookup(name, pool.Powers)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown starting power")
		}
		resolved = append(resolved, p)
	}

	char := &game.Character{
		Name:           input.Name,
		Backstory:      input.Backstory,
		Avatar:         input.Avatar,
		SpecialAbility: input.SpecialAbility,
		Stats:          input.Stats,
		Powers:         resolved,
		CreatedAt:      o.clock.Now().Unix(),
	}

	out, err := o.playerRepo.CreateCharacter(ctx, playerrepo.CreateCharacterInput{
		PlayerID:  input.PlayerID,
		Character: char,
	})
	if err != nil {
		return nil, err
	}

	metrics.CharactersCreated.Inc()
	slog.InfoContext(ctx, "character created",
		"player_id", input.PlayerID,
		"name", char.Name,
		"total_power", char.Stats.Total())

	return &character.CreateCharacterOutput{
		Character: out.Player.Character,
		Title:     rules.TitleFor(out.Player.Character, false),
	}, nil
}

// GetCharacter returns a player's character with its derived title
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	if out.Player.Character == nil {
		return nil, errors.NotFoundf("player %s has no character", input.PlayerID)
	}

	top, err := o.isTopOfLeaderboard(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{
		Character: out.Player.Character,
		Title:     rules.TitleFor(out.Player.Character, top),
		Banned:    out.Player.Banned,
	}, nil
}

// UpdateProfile applies a cosmetic edit. Stats, powers, wins, and name are
// deliberately not touchable here.
func (o *Orchestrator) UpdateProfile(ctx context.Context, input *character.UpdateProfileInput) (*character.UpdateProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}
	if input.SpecialAbility != nil && len(*input.SpecialAbility) > specialAbilityMaxLen {
		return nil, errors.InvalidArgumentf("specialAbility exceeds maximum length of %d", specialAbilityMaxLen)
	}

	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	if out.Player.Character == nil {
		return nil, errors.NotFoundf("player %s has no character", input.PlayerID)
	}
	if out.Player.Banned {
		return nil, errors.FailedPreconditionf("player %s is banned", input.PlayerID)
	}

	char := out.Player.Character
	if input.Backstory != nil {
		char.Backstory = *input.Backstory
	}
	if input.Avatar != nil {
		char.Avatar = *input.Avatar
	}
	if input.SpecialAbility != nil {
		char.SpecialAbility = *input.SpecialAbility
	}

	updated, err := o.playerRepo.UpdateCharacter(ctx, playerrepo.UpdateCharacterInput{
		PlayerID:  input.PlayerID,
		Character: char,
	})
	if err != nil {
		return nil, err
	}

	return &character.UpdateProfileOutput{Character: updated.Player.Character}, nil
}

// ListPowers returns the fixed catalog plus the player's own custom powers
func (o *Orchestrator) ListPowers(ctx context.Context, input *character.ListPowersInput) (*character.ListPowersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	all := powers.Catalog()

	if input.PlayerID != "" {
		pool, err := o.playerRepo.GetCustomPowers(ctx, playerrepo.GetCustomPowersInput{PlayerID: input.PlayerID})
		if err != nil {
			return nil, err
		}
		all = append(all, pool.Powers...)
	}

	return &character.ListPowersOutput{Powers: all}, nil
}

// CreateCustomPower creates a custom power for a player who has earned the
// unlock
func (o *Orchestrator) CreateCustomPower(ctx context.Context, input *character.CreateCustomPowerInput) (*character.CreateCustomPowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	if out.Player.Character == nil {
		return nil, errors.NotFoundf("player %s has no character", input.PlayerID)
	}
	if out.Player.Banned {
		return nil, errors.FailedPreconditionf("player %s is banned", input.PlayerID)
	}
	if !rules.CanCreateCustomPower(out.Player.Character) {
		return nil, errors.PermissionDeniedf("custom powers unlock at %d wins, player has %d",
			rules.CustomPowerUnlockWins, out.Player.Character.Wins)
	}

	if err := powers.ValidateCustom(input.Power); err != nil {
		return nil, err
	}

	power := input.Power
	power.IsCustom = true
	power.CreatedBy = input.PlayerID

	added, err := o.playerRepo.AddCustomPower(ctx, playerrepo.AddCustomPowerInput{
		PlayerID: input.PlayerID,
		Power:    power,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "custom power created",
		"player_id", input.PlayerID,
		"power", power.Name)

	return &character.CreateCustomPowerOutput{Powers: added.Powers}, nil
}

// Leaderboard ranks active characters by total power, strongest first
func (o *Orchestrator) Leaderboard(ctx context.Context, input *character.LeaderboardInput) (*character.LeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	ranked, err := o.rankedPlayers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]character.LeaderboardEntry, 0, limit)
	for i, p := range ranked {
		if i >= limit {
			break
		}
		entries = append(entries, character.LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   p.ID,
			Name:       p.Character.Name,
			Avatar:     p.Character.Avatar,
			TotalPower: p.Character.Stats.Total(),
			Wins:       p.Character.Wins,
			Title:      rules.TitleFor(p.Character, i == 0),
		})
	}

	return &character.LeaderboardOutput{Entries: entries}, nil
}

// AddComment leaves a comment on a character page
func (o *Orchestrator) AddComment(ctx context.Context, input *character.AddCommentInput) (*character.AddCommentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("authorID", input.AuthorID, vb)
	errors.ValidateRequired("body", input.Body, vb)
	errors.ValidateMaxLength("body", input.Body, commentBodyMaxLen, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	owner, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	if owner.Player.Character == nil {
		return nil, errors.NotFoundf("player %s has no character", input.OwnerID)
	}

	authorName := input.AuthorID
	author, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: input.AuthorID})
	if err != nil {
		return nil, err
	}
	if author.Player.Character != nil {
		authorName = author.Player.Character.Name
	}

	c := &game.Comment{
		ID:        o.idGenerator.Generate(),
		AuthorID:  input.AuthorID,
		Author:    authorName,
		Body:      input.Body,
		Timestamp: o.clock.Now().Unix(),
	}

	added, err := o.commentRepo.Add(ctx, commentrepo.AddInput{
		OwnerID: input.OwnerID,
		Comment: c,
	})
	if err != nil {
		return nil, err
	}

	return &character.AddCommentOutput{Comment: added.Comment}, nil
}

// ListComments returns a character page's comments, newest first
func (o *Orchestrator) ListComments(ctx context.Context, input *character.ListCommentsInput) (*character.ListCommentsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("ownerID is required")
	}

	out, err := o.commentRepo.List(ctx, commentrepo.ListInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	return &character.ListCommentsOutput{Comments: out.Comments}, nil
}

// rankedPlayers returns active players ordered by total power descending,
// ties broken by win count then name for a stable ordering.
func (o *Orchestrator) rankedPlayers(ctx context.Context) ([]*game.Player, error) {
	out, err := o.playerRepo.ListActive(ctx, playerrepo.ListActiveInput{})
	if err != nil {
		return nil, err
	}

	ranked := out.Players
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i].Character, ranked[j].Character
		if a.Stats.Total() != b.Stats.Total() {
			return a.Stats.Total() > b.Stats.Total()
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Name < b.Name
	})

	return ranked, nil
}

func (o *Orchestrator) isTopOfLeaderboard(ctx context.Context, playerID string) (bool, error) {
	ranked, err := o.rankedPlayers(ctx)
	if err != nil {
		return false, err
	}
	return len(ranked) > 0 && ranked[0].ID == playerID, nil
}
