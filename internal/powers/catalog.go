// Package powers provides the shared power catalog and custom power rules.
package powers

import (
	"strings"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
)

// catalog is the fixed set of powers every player may choose from at
// creation time. Ratings are part of the game balance; do not edit without
// rebalancing the damage formulas.
var catalog = []game.Power{
	{Name: "Telekinesis", Attack: 25, Defense: 15, Magic: 35,
		Description: "Move objects with your mind, creating powerful telekinetic attacks and barriers."},
	{Name: "Fire Manipulation", Attack: 40, Defense: 10, Magic: 25,
		Description: "Control flames to burn enemies and create protective fire walls."},
	{Name: "Ice Control", Attack: 30, Defense: 25, Magic: 20,
		Description: "Freeze enemies and create ice shields for protection."},
	{Name: "Lightning Strike", Attack: 45, Defense: 5, Magic: 30,
		Description: "Channel electricity for devastating attacks with minimal defense."},
	{Name: "Time Manipulation", Attack: 20, Defense: 20, Magic: 50,
		Description: "Slow time, accelerate yourself, or glimpse future attacks."},
	{Name: "Shadow Control", Attack: 35, Defense: 20, Magic: 30,
		Description: "Manipulate darkness to hide and strike from shadows."},
	{Name: "Healing", Attack: 5, Defense: 40, Magic: 40,
		Description: "Restore health and create protective auras around yourself."},
	{Name: "Mind Reading", Attack: 15, Defense: 30, Magic: 40,
		Description: "Read thoughts to predict attacks and confuse enemies."},
	{Name: "Teleportation", Attack: 20, Defense: 35, Magic: 30,
		Description: "Instantly move to avoid attacks and surprise enemies."},
	{Name: "Super Strength", Attack: 50, Defense: 20, Magic: 5,
		Description: "Overwhelming physical power for devastating melee attacks."},
	{Name: "Invisibility", Attack: 25, Defense: 30, Magic: 25,
		Description: "Become unseen to avoid attacks and strike unexpectedly."},
	{Name: "Energy Blast", Attack: 40, Defense: 15, Magic: 30,
		Description: "Fire concentrated energy beams at enemies."},
	{Name: "Force Field", Attack: 10, Defense: 50, Magic: 25,
		Description: "Create powerful barriers to block incoming attacks."},
	{Name: "Shape Shifting", Attack: 30, Defense: 25, Magic: 30,
		Description: "Transform your body to adapt to any combat situation."},
	{Name: "Portal Creation", Attack: 25, Defense: 25, Magic: 35,
		Description: "Open dimensional rifts for travel and redirecting attacks."},
	{Name: "Elemental Control", Attack: 35, Defense: 20, Magic: 35,
		Description: "Command all elements - earth, air, fire, and water."},
	{Name: "Flight", Attack: 20, Defense: 30, Magic: 25,
		Description: "Soar through the air to gain tactical advantages."},
	{Name: "Speed Force", Attack: 35, Defense: 25, Magic: 25,
		Description: "Move at superhuman speeds to outmaneuver enemies."},
}

// Catalog returns a copy of the fixed power catalog
func Catalog() []game.Power {
	out := make([]game.Power, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a power name against the fixed catalog plus the given
// pool of custom powers. Matching is case-insensitive. Every power usable
// in a battle must resolve to a full ratings triple; a bare name string is
// never enough for damage calculation.
func Lookup(name string, custom []game.Power) (game.Power, error) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	for _, p := range custom {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return game.Power{}, errors.NotFoundf("power %q not found", name)
}

// Aggregate sums the ratings of a set of powers
func Aggregate(ps []game.Power) (attack, defense, magic int) {
	for _, p := range ps {
		attack += p.Attack
		defense += p.Defense
		magic += p.Magic
	}
	return attack, defense, magic
}
