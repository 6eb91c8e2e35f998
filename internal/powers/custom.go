package powers

import (
	"strings"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
)

const (
	// CustomPowerBudget is the exact rating sum a custom power must
	// allocate across attack, defense, and magic.
	CustomPowerBudget = 75

	// CustomPowerDescriptionMax bounds the description length.
	CustomPowerDescriptionMax = 200
)

// ValidateCustom checks a player-submitted power against the custom power
// rules: a name, a description within bounds, non-negative ratings, and a
// rating sum of exactly CustomPowerBudget.
func ValidateCustom(p game.Power) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", p.Name, vb)
	errors.ValidateRequired("description", p.Description, vb)
	errors.ValidateMaxLength("description", p.Description, CustomPowerDescriptionMax, vb)

	if p.Attack < 0 || p.Defense < 0 || p.Magic < 0 {
		vb.Field("ratings", "must not be negative")
	}
	if sum := p.Attack + p.Defense + p.Magic; sum != CustomPowerBudget {
		vb.Fieldf("ratings", "must allocate exactly %d points, got %d", CustomPowerBudget, sum)
	}

	for _, existing := range catalog {
		if strings.EqualFold(existing.Name, p.Name) {
			vb.Fieldf("name", "%q is already a catalog power", p.Name)
			break
		}
	}

	return vb.Build()
}
