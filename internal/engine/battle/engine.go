// Package battle implements the round-based battle simulation. It is a pure
// function of the two character snapshots and an injected random source, so
// outcomes are reproducible under a seeded source.
package battle

import (
	"math"
	"math/rand"

	"github.com/ocarena/oc-api/internal/entities/game"
)

// Action is one combatant's choice for a round
type Action string

// Round actions
const (
	ActionAttack  Action = "attack"
	ActionDefend  Action = "defend"
	ActionSpecial Action = "special"
)

// Side identifies a combatant in an outcome
type Side string

// Combatant sides
const (
	SideA Side = "a"
	SideB Side = "b"
)

// Combat tuning. StartingHP and the damage formulas are the game balance;
// MinDamage guarantees every round makes progress, so a battle always
// terminates within StartingHP/MinDamage rounds.
const (
	StartingHP = 100
	MinDamage  = 5
)

// Tie-break methods recorded on an Outcome
const (
	TieBreakNone     = ""
	TieBreakStats    = "stats"
	TieBreakCoinFlip = "coin-flip"
)

// Round records one exchange of actions
type Round struct {
	Number    int    `json:"number"`
	ActionA   Action `json:"action_a"`
	ActionB   Action `json:"action_b"`
	DamageToA int    `json:"damage_to_a"`
	DamageToB int    `json:"damage_to_b"`
	HPA       int    `json:"hp_a"`
	HPB       int    `json:"hp_b"`
}

// Outcome is the full result of a simulated battle
type Outcome struct {
	Winner   Side    `json:"winner"`
	Rounds   []Round `json:"rounds"`
	TieBreak string  `json:"tie_break,omitempty"`
}

// Damage computes the damage the attacker deals for one round. The
// defender's own action modifies it: defending halves incoming damage, and
// a special guards partially against a plain attack. Every non-zero
// exchange deals at least MinDamage.
func Damage(attacker game.Stats, attackerAction, defenderAction Action, rng *rand.Rand) int {
	var base float64

	switch attackerAction {
	case ActionAttack:
		base = float64(attacker.Strength/3) + rng.Float64()*15
	case ActionSpecial:
		base = float64((attacker.Strength+attacker.Intelligence)/4) + rng.Float64()*20
	default:
		base = 0
	}

	if defenderAction == ActionDefend {
		base *= 0.5
	} else if defenderAction == ActionSpecial && attackerAction == ActionAttack {
		base *= 0.7
	}

	d := int(math.Floor(base))
	if d < MinDamage {
		return MinDamage
	}
	return d
}

// chooseAction is the combatant policy: desperate at low HP, otherwise a
// weighted mix of attack, defend, and special.
func chooseAction(hp int, rng *rand.Rand) Action {
	if hp < 30 {
		return ActionSpecial
	}
	r := rng.Float64()
	switch {
	case r < 0.4:
		return ActionAttack
	case r < 0.7:
		return ActionDefend
	default:
		return ActionSpecial
	}
}

// Simulate runs a battle between two character snapshots to completion and
// returns the winner with the full round log. A mutual KO is broken by the
// higher total stat sum; equal sums come down to a coin flip from rng, so
// the caller always gets exactly one winner.
func Simulate(a, b *game.Character, rng *rand.Rand) Outcome {
	hpA, hpB := StartingHP, StartingHP
	var rounds []Round

	for n := 1; hpA > 0 && hpB > 0; n++ {
		actA := chooseAction(hpA, rng)
		actB := chooseAction(hpB, rng)

		dmgToB := Damage(a.Stats, actA, actB, rng)
		dmgToA := Damage(b.Stats, actB, actA, rng)

		hpA -= dmgToA
		if hpA < 0 {
			hpA = 0
		}
		hpB -= dmgToB
		if hpB < 0 {
			hpB = 0
		}

		rounds = append(rounds, Round{
			Number:    n,
			ActionA:   actA,
			ActionB:   actB,
			DamageToA: dmgToA,
			DamageToB: dmgToB,
			HPA:       hpA,
			HPB:       hpB,
		})
	}

	out := Outcome{Rounds: rounds}
	switch {
	case hpA > 0:
		out.Winner = SideA
	case hpB > 0:
		out.Winner = SideB
	default:
		// Mutual KO
		totalA, totalB := a.Stats.Total(), b.Stats.Total()
		switch {
		case totalA > totalB:
			out.Winner = SideA
			out.TieBreak = TieBreakStats
		case totalB > totalA:
			out.Winner = SideB
			out.TieBreak = TieBreakStats
		default:
			out.TieBreak = TieBreakCoinFlip
			if rng.Intn(2) == 0 {
				out.Winner = SideA
			} else {
				out.Winner = SideB
			}
		}
	}

	return out
}
