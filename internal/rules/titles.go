// Package rules holds the pure game-rule derivations: the title ladder,
// unlock gates, and the battle reward stat bump. Nothing here touches
// storage; everything is a total function of its inputs.
package rules

import "github.com/ocarena/oc-api/internal/entities/game"

// Title labels, ordered from highest rank down. TitleKing overrides the
// win-threshold ladder for whoever tops the leaderboard.
const (
	TitleKing         = "The King"
	TitleLegendary    = "The Legendary"
	TitleDestroyer    = "The Destroyer"
	TitleVoid         = "The Void"
	TitleOverpowered  = "Overpowered"
	TitleBattleTested = "Battle Tested"
	TitleRookie       = "Rookie"
)

// CustomPowerUnlockWins is the win count at which a player may create
// custom powers.
const CustomPowerUnlockWins = 10

// TitleFor derives a character's cosmetic title. Thresholds are checked
// from highest to lowest and the first match wins; the top-of-leaderboard
// label overrides all of them. Total: always returns a label.
func TitleFor(c *game.Character, topOfLeaderboard bool) string {
	if topOfLeaderboard {
		return TitleKing
	}

	switch {
	case c.Wins >= 10:
		return TitleLegendary
	case c.Wins >= 5:
		return TitleDestroyer
	case c.Wins >= 3:
		return TitleVoid
	case len(c.Powers) >= 4:
		return TitleOverpowered
	case c.Wins >= 1:
		return TitleBattleTested
	default:
		return TitleRookie
	}
}

// CanCreateCustomPower reports whether a character has unlocked custom
// power creation. Derived, non-authoritative: the orchestrator re-checks
// it on every creation attempt.
func CanCreateCustomPower(c *game.Character) bool {
	return c.Wins >= CustomPowerUnlockWins
}

// WinnerStats returns the stat block a battle winner ends up with: each
// stat gains game.WinStatBonus, clamped to game.StatMax independently of
// the other two.
func WinnerStats(s game.Stats) game.Stats {
	return game.Stats{
		Strength:     clampStat(s.Strength + game.WinStatBonus),
		Speed:        clampStat(s.Speed + game.WinStatBonus),
		Intelligence: clampStat(s.Intelligence + game.WinStatBonus),
	}
}

func clampStat(v int) int {
	if v > game.StatMax {
		return game.StatMax
	}
	return v
}
