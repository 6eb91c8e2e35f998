package testutils

import (
	"github.com/ocarena/oc-api/internal/entities/game"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Blaze Phoenix"

// CreateTestCharacter creates a test character with sensible defaults
func CreateTestCharacter(name string) *game.Character {
	return &game.Character{
		Name:      name,
		Backstory: "Forged in the arena",
		Avatar:    "https://example.com/avatar.png",
		Stats: game.Stats{
			Strength:     50,
			Speed:        50,
			Intelligence: 50,
		},
		Powers: []game.Power{
			{Name: "Fire Manipulation", Attack: 40, Defense: 10, Magic: 25},
			{Name: "Speed Force", Attack: 35, Defense: 25, Magic: 25},
		},
		CreatedAt: 1700000000,
	}
}

// CreateTestCharacterWithStats creates a test character with the given stats
func CreateTestCharacterWithStats(name string, str, spd, intel int) *game.Character {
	c := CreateTestCharacter(name)
	c.Stats = game.Stats{Strength: str, Speed: spd, Intelligence: intel}
	return c
}
