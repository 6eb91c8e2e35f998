// Package game provides the core data structures for the OC arena.
package game

// Stat bounds shared by creation validation and battle rewards.
const (
	StatMin = 1
	StatMax = 150

	// CreationStatBudget caps the stat sum at creation time only. Battle
	// rewards may push the sum past it, up to StatMax per stat.
	CreationStatBudget = 300

	// StartingPowerCount is how many powers a character is created with.
	StartingPowerCount = 2

	// WinStatBonus is added to each of the winner's stats after a battle,
	// each clamped to StatMax independently.
	WinStatBonus = 10
)

// Stats are a character's three core attributes
type Stats struct {
	Strength     int `json:"strength"`
	Speed        int `json:"speed"`
	Intelligence int `json:"intelligence"`
}

// Total returns the stat sum, the character's "total power" used by the
// leaderboard and the mutual-KO tie-break
func (s Stats) Total() int {
	return s.Strength + s.Speed + s.Intelligence
}

// Character represents a player's single original character.
// NOTE: This is a data-only struct. All rules (titles, damage, stat bumps)
// live in internal/rules and internal/engine/battle.
type Character struct {
	Name           string          `json:"name"`
	Backstory      string          `json:"backstory,omitempty"`
	Avatar         string          `json:"avatar,omitempty"`
	SpecialAbility string          `json:"special_ability,omitempty"`
	Stats          Stats           `json:"stats"`
	Powers         []Power         `json:"powers"`
	Wins           int             `json:"wins"`
	History        []BattleHistory `json:"history,omitempty"`
	PowersAbsorbed []AbsorbedPower `json:"powers_absorbed,omitempty"`
	CreatedAt      int64           `json:"created_at"`
}

// Power is a named ability with combat ratings. This is the one canonical
// representation; powers are never stored as bare name strings.
type Power struct {
	Name        string `json:"name"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
	Magic       int    `json:"magic"`
	Description string `json:"description,omitempty"`
	IsCustom    bool   `json:"is_custom,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
}

// BattleHistory is one entry in a character's append-only battle log
type BattleHistory struct {
	Opponent     string  `json:"opponent"`
	Result       string  `json:"result"` // "won" or "lost"
	Date         string  `json:"date"`   // ISO date, no time component
	PowersGained []Power `json:"powers_gained,omitempty"`
	StatsGained  int     `json:"stats_gained,omitempty"`
	Timestamp    int64   `json:"timestamp"`
}

// AbsorbedPower records the provenance of a single stolen power
type AbsorbedPower struct {
	Power        Power  `json:"power"`
	FromOpponent string `json:"from_opponent"`
	Timestamp    int64  `json:"timestamp"`
}

// Player ties a character and ban state to an account ID. The ban flag is
// terminal: only battle resolution sets it and nothing clears it.
type Player struct {
	ID        string     `json:"id"`
	Character *Character `json:"character,omitempty"`
	Banned    bool       `json:"banned"`
}
