package apiv1

import (
	enginebattle "github.com/ocarena/oc-api/internal/engine/battle"
	"github.com/ocarena/oc-api/internal/entities/game"
)

// Request DTOs

type createCharacterRequest struct {
	Name           string   `json:"name" validate:"required,max=50"`
	Backstory      string   `json:"backstory" validate:"max=2000"`
	Avatar         string   `json:"avatar" validate:"omitempty,url"`
	SpecialAbility string   `json:"special_ability" validate:"max=1000"`
	Strength       int      `json:"strength" validate:"min=1,max=150"`
	Speed          int      `json:"speed" validate:"min=1,max=150"`
	Intelligence   int      `json:"intelligence" validate:"min=1,max=150"`
	Powers         []string `json:"powers" validate:"required"`
}

type updateProfileRequest struct {
	Backstory      *string `json:"backstory" validate:"omitempty,max=2000"`
	Avatar         *string `json:"avatar" validate:"omitempty,url"`
	SpecialAbility *string `json:"special_ability" validate:"omitempty,max=1000"`
}

type createCustomPowerRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Attack      int    `json:"attack" validate:"min=0"`
	Defense     int    `json:"defense" validate:"min=0"`
	Magic       int    `json:"magic" validate:"min=0"`
	Description string `json:"description" validate:"required,max=200"`
}

type addCommentRequest struct {
	Body string `json:"body" validate:"required,max=500"`
}

type sendRequestRequest struct {
	TargetID string `json:"target_id" validate:"required"`
}

type fightRequest struct {
	ChallengerID string `json:"challenger_id" validate:"required"`
}

// Response DTOs

type characterResponse struct {
	Character *game.Character `json:"character"`
	Title     string          `json:"title"`
	Banned    bool            `json:"banned,omitempty"`
}

type powersResponse struct {
	Powers []game.Power `json:"powers"`
}

type leaderboardEntryResponse struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
	TotalPower int    `json:"total_power"`
	Wins       int    `json:"wins"`
	Title      string `json:"title"`
}

type leaderboardResponse struct {
	Entries []leaderboardEntryResponse `json:"entries"`
}

type commentsResponse struct {
	Comments []game.Comment `json:"comments"`
}

type requestResponse struct {
	Request *game.BattleRequest `json:"request"`
}

type requestsResponse struct {
	Requests []*game.BattleRequest `json:"requests"`
}

type fightResponse struct {
	WinnerID string                  `json:"winner_id"`
	LoserID  string                  `json:"loser_id"`
	Outcome  *enginebattle.Outcome   `json:"outcome"`
	Winner   *game.Character         `json:"winner"`
	Record   *game.DestructionRecord `json:"record"`
}

type recordResponse struct {
	Record *game.DestructionRecord `json:"record"`
}

type recordsResponse struct {
	Records []*game.DestructionRecord `json:"records"`
}
