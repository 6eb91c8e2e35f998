// Package battle implements the battle orchestrator
package battle

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	enginebattle "github.com/ocarena/oc-api/internal/engine/battle"
	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	"github.com/ocarena/oc-api/internal/pkg/clock"
	"github.com/ocarena/oc-api/internal/pkg/metrics"
	battlerepo "github.com/ocarena/oc-api/internal/repositories/battle"
	requestrepo "github.com/ocarena/oc-api/internal/repositories/battlerequest"
	hallrepo "github.com/ocarena/oc-api/internal/repositories/hall"
	playerrepo "github.com/ocarena/oc-api/internal/repositories/player"
	"github.com/ocarena/oc-api/internal/rules"
	"github.com/ocarena/oc-api/internal/services/battle"
)

// Config holds the dependencies for the battle orchestrator
type Config struct {
	PlayerRepo  playerrepo.Repository
	RequestRepo requestrepo.Repository
	BattleRepo  battlerepo.Repository
	HallRepo    hallrepo.Repository
	Clock       clock.Clock
	// RandSource seeds the generator that every simulation derives its
	// own RNG from. Tests inject a fixed source for reproducible fights.
	RandSource rand.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.RequestRepo == nil {
		vb.RequiredField("RequestRepo")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.HallRepo == nil {
		vb.RequiredField("HallRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.RandSource == nil {
		vb.RequiredField("RandSource")
	}

	return vb.Build()
}

// Orchestrator implements the battle.Service interface
type Orchestrator struct {
	playerRepo  playerrepo.Repository
	requestRepo requestrepo.Repository
	battleRepo  battlerepo.Repository
	hallRepo    hallrepo.Repository
	clock       clock.Clock

	// seedMu guards seedRNG, which is shared across requests and only
	// ever used to derive per-fight generators. rand.Rand is not safe
	// for concurrent use.
	seedMu  sync.Mutex
	seedRNG *rand.Rand
}

// New creates a new battle orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		playerRepo:  cfg.PlayerRepo,
		requestRepo: cfg.RequestRepo,
		battleRepo:  cfg.BattleRepo,
		hallRepo:    cfg.HallRepo,
		clock:       cfg.Clock,
		seedRNG:     rand.New(cfg.RandSource),
	}, nil
}

// battleRNG derives an independent generator for a single simulation, so
// concurrent fights never touch the same rand.Rand.
func (o *Orchestrator) battleRNG() *rand.Rand {
	o.seedMu.Lock()
	seed := o.seedRNG.Int63()
	o.seedMu.Unlock()
	return rand.New(rand.NewSource(seed))
}

// Ensure Orchestrator implements the Service interface
var _ battle.Service = (*Orchestrator)(nil)

// SendRequest sends a battle challenge to another player
func (o *Orchestrator) SendRequest(ctx context.Context, input *battle.SendRequestInput) (*battle.SendRequestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("challengerID", input.ChallengerID, vb)
	errors.ValidateRequired("targetID", input.TargetID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if input.ChallengerID == input.TargetID {
		return nil, errors.InvalidArgument("cannot challenge yourself")
	}

	challenger, err := o.activePlayer(ctx, input.ChallengerID)
	if err != nil {
		return nil, err
	}
	if _, err := o.activePlayer(ctx, input.TargetID); err != nil {
		return nil, err
	}

	req := &game.BattleRequest{
		FromID:        input.ChallengerID,
		FromName:      challenger.Character.Name,
		FromAvatar:    challenger.Character.Avatar,
		FromPower:     challenger.Character.Stats.Total(),
		FromCharacter: *challenger.Character,
		Status:        game.RequestStatusPending,
		Timestamp:     o.clock.Now().Unix(),
	}

	out, err := o.requestRepo.Send(ctx, requestrepo.SendInput{
		TargetID: input.TargetID,
		Request:  req,
	})
	if err != nil {
		return nil, err
	}

	metrics.BattleRequestsSent.Inc()
	slog.InfoContext(ctx, "battle request sent",
		"challenger_id", input.ChallengerID,
		"target_id", input.TargetID)

	return &battle.SendRequestOutput{Request: out.Request}, nil
}

// ListRequests returns the pending and accepted challenges in a player's
// inbox
func (o *Orchestrator) ListRequests(ctx context.Context, input *battle.ListRequestsInput) (*battle.ListRequestsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	out, err := o.requestRepo.List(ctx, requestrepo.ListInput{TargetID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &battle.ListRequestsOutput{Requests: out.Requests}, nil
}

// AcceptRequest marks a challenge as accepted
func (o *Orchestrator) AcceptRequest(ctx context.Context, input *battle.AcceptRequestInput) (*battle.AcceptRequestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("challengerID", input.ChallengerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.activePlayer(ctx, input.PlayerID); err != nil {
		return nil, err
	}

	out, err := o.requestRepo.Accept(ctx, requestrepo.AcceptInput{
		TargetID: input.PlayerID,
		FromID:   input.ChallengerID,
	})
	if err != nil {
		return nil, err
	}

	return &battle.AcceptRequestOutput{Request: out.Request}, nil
}

// RejectRequest deletes a challenge. Rejection leaves no trace.
func (o *Orchestrator) RejectRequest(ctx context.Context, input *battle.RejectRequestInput) (*battle.RejectRequestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("challengerID", input.ChallengerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.requestRepo.Delete(ctx, requestrepo.DeleteInput{
		TargetID: input.PlayerID,
		FromID:   input.ChallengerID,
	}); err != nil {
		return nil, err
	}

	return &battle.RejectRequestOutput{}, nil
}

// Fight simulates the accepted battle between the defender and the
// challenger, then resolves it. The challenger fights as the snapshot taken
// when the request was sent.
func (o *Orchestrator) Fight(ctx context.Context, input *battle.FightInput) (*battle.FightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("challengerID", input.ChallengerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	req, err := o.requestRepo.Get(ctx, requestrepo.GetInput{
		TargetID: input.PlayerID,
		FromID:   input.ChallengerID,
	})
	if err != nil {
		return nil, err
	}
	if req.Request.Status != game.RequestStatusAccepted {
		return nil, errors.FailedPrecondition("battle request has not been accepted")
	}

	defender, err := o.activePlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	challenger, err := o.activePlayer(ctx, input.ChallengerID)
	if err != nil {
		return nil, err
	}

	snapshot := req.Request.FromCharacter
	outcome := enginebattle.Simulate(&snapshot, defender.Character, o.battleRNG())

	winnerID, loserID := input.ChallengerID, input.PlayerID
	if outcome.Winner == enginebattle.SideB {
		winnerID, loserID = input.PlayerID, input.ChallengerID
	}

	// Resolution works on live characters, not the snapshot: absorbed
	// powers and the ban must reflect current state.
	winner, loser := challenger, defender
	if winnerID == input.PlayerID {
		winner, loser = defender, challenger
	}

	resolved, err := o.battleRepo.Resolve(ctx, battlerepo.ResolveInput{
		WinnerID:    winnerID,
		LoserID:     loserID,
		Winner:      winner.Character,
		Loser:       loser.Character,
		WinnerStats: rules.WinnerStats(winner.Character.Stats),
	})
	if err != nil {
		return nil, err
	}

	metrics.BattlesResolved.Inc()
	slog.InfoContext(ctx, "battle fought",
		"winner_id", winnerID,
		"loser_id", loserID,
		"rounds", len(outcome.Rounds),
		"tie_break", outcome.TieBreak)

	return &battle.FightOutput{
		Outcome:  &outcome,
		WinnerID: winnerID,
		LoserID:  loserID,
		Winner:   resolved.Winner,
		Record:   resolved.Record,
	}, nil
}

// Resolve applies a battle outcome for an accepted request without running
// a simulation. Fight is the normal path; this exists for operational
// replay of an outcome that failed to commit.
func (o *Orchestrator) Resolve(ctx context.Context, input *battle.ResolveInput) (*battle.ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("winnerID", input.WinnerID, vb)
	errors.ValidateRequired("loserID", input.LoserID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.requireAcceptedRequest(ctx, input.WinnerID, input.LoserID); err != nil {
		return nil, err
	}

	winner, err := o.activePlayer(ctx, input.WinnerID)
	if err != nil {
		return nil, err
	}
	loser, err := o.activePlayer(ctx, input.LoserID)
	if err != nil {
		return nil, err
	}

	resolved, err := o.battleRepo.Resolve(ctx, battlerepo.ResolveInput{
		WinnerID:    input.WinnerID,
		LoserID:     input.LoserID,
		Winner:      winner.Character,
		Loser:       loser.Character,
		WinnerStats: rules.WinnerStats(winner.Character.Stats),
	})
	if err != nil {
		return nil, err
	}

	metrics.BattlesResolved.Inc()

	return &battle.ResolveOutput{Winner: resolved.Winner, Record: resolved.Record}, nil
}

// GetDestroyed returns the destruction record for a defeated player
func (o *Orchestrator) GetDestroyed(ctx context.Context, input *battle.GetDestroyedInput) (*battle.GetDestroyedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	out, err := o.hallRepo.Get(ctx, hallrepo.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &battle.GetDestroyedOutput{Record: out.Record}, nil
}

// ListDestroyed returns all destruction records, newest first
func (o *Orchestrator) ListDestroyed(ctx context.Context, input *battle.ListDestroyedInput) (*battle.ListDestroyedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.hallRepo.List(ctx, hallrepo.ListInput{})
	if err != nil {
		return nil, err
	}

	return &battle.ListDestroyedOutput{Records: out.Records}, nil
}

// activePlayer loads a player and enforces the shared preconditions: the
// player must have a character and must not be banned.
func (o *Orchestrator) activePlayer(ctx context.Context, playerID string) (*game.Player, error) {
	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	if out.Player.Banned {
		return nil, errors.FailedPreconditionf("player %s is banned", playerID)
	}
	if out.Player.Character == nil {
		return nil, errors.FailedPreconditionf("player %s has no character", playerID)
	}
	return out.Player, nil
}

// requireAcceptedRequest checks that an accepted request exists between the
// two players in either direction.
func (o *Orchestrator) requireAcceptedRequest(ctx context.Context, a, b string) error {
	for _, pair := range [][2]string{{a, b}, {b, a}} {
		req, err := o.requestRepo.Get(ctx, requestrepo.GetInput{TargetID: pair[0], FromID: pair[1]})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return err
		}
		if req.Request.Status == game.RequestStatusAccepted {
			return nil
		}
	}
	return errors.FailedPrecondition("no accepted battle request between the players")
}
