package powers_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ocarena/oc-api/internal/entities/game"
	"github.com/ocarena/oc-api/internal/errors"
	"github.com/ocarena/oc-api/internal/powers"
)

type PowersTestSuite struct {
	suite.Suite
}

func TestPowersSuite(t *testing.T) {
	suite.Run(t, new(PowersTestSuite))
}

func (s *PowersTestSuite) TestCatalogComplete() {
	cat := powers.Catalog()
	s.Assert().Len(cat, 18)

	for _, p := range cat {
		s.Assert().NotEmpty(p.Name)
		s.Assert().NotEmpty(p.Description)
		s.Assert().Positive(p.Attack+p.Defense+p.Magic, "power %s has no ratings", p.Name)
		s.Assert().False(p.IsCustom)
	}
}

func (s *PowersTestSuite) TestCatalogIsACopy() {
	cat := powers.Catalog()
	cat[0].Attack = 999

	fresh, err := powers.Lookup(cat[0].Name, nil)
	s.Require().NoError(err)
	s.Assert().NotEqual(999, fresh.Attack)
}

func (s *PowersTestSuite) TestLookup() {
	p, err := powers.Lookup("Fire Manipulation", nil)
	s.Require().NoError(err)
	s.Assert().Equal(40, p.Attack)
	s.Assert().Equal(10, p.Defense)
	s.Assert().Equal(25, p.Magic)
}

func (s *PowersTestSuite) TestLookupCaseInsensitive() {
	p, err := powers.Lookup("super strength", nil)
	s.Require().NoError(err)
	s.Assert().Equal("Super Strength", p.Name)
}

func (s *PowersTestSuite) TestLookupCustomPool() {
	custom := []game.Power{
		{Name: "Void Scream", Attack: 30, Defense: 20, Magic: 25, IsCustom: true, CreatedBy: "player_1"},
	}

	p, err := powers.Lookup("Void Scream", custom)
	s.Require().NoError(err)
	s.Assert().True(p.IsCustom)

	_, err = powers.Lookup("Void Scream", nil)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *PowersTestSuite) TestLookupNotFound() {
	_, err := powers.Lookup("Spaghetti Bending", nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *PowersTestSuite) TestAggregate() {
	atk, def, mag := powers.Aggregate([]game.Power{
		{Attack: 10, Defense: 20, Magic: 30},
		{Attack: 1, Defense: 2, Magic: 3},
	})
	s.Assert().Equal(11, atk)
	s.Assert().Equal(22, def)
	s.Assert().Equal(33, mag)
}

func (s *PowersTestSuite) TestValidateCustom() {
	valid := game.Power{
		Name:        "Void Scream",
		Attack:      30,
		Defense:     20,
		Magic:       25,
		Description: "A scream that tears at the fabric of space.",
	}
	s.Assert().NoError(powers.ValidateCustom(valid))
}

func (s *PowersTestSuite) TestValidateCustomRejectsBadBudget() {
	p := game.Power{
		Name:        "Overtuned",
		Attack:      50,
		Defense:     50,
		Magic:       50,
		Description: "Way too strong.",
	}
	err := powers.ValidateCustom(p)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *PowersTestSuite) TestValidateCustomRejectsCatalogName() {
	p := game.Power{
		Name:        "healing",
		Attack:      25,
		Defense:     25,
		Magic:       25,
		Description: "Not actually new.",
	}
	err := powers.ValidateCustom(p)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "catalog power")
}

func (s *PowersTestSuite) TestValidateCustomRejectsNegative() {
	p := game.Power{
		Name:        "Glass Cannon",
		Attack:      100,
		Defense:     -15,
		Magic:       -10,
		Description: "All in on attack.",
	}
	s.Assert().Error(powers.ValidateCustom(p))
}
