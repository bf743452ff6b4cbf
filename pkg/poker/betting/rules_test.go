package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func noLimitRules() Rules {
	return Rules{
		Structure:  NoLimit,
		SmallBlind: 25,
		BigBlind:   50,
	}
}

func limitRules() Rules {
	return Rules{
		Structure:          Limit,
		SmallBlind:         25,
		BigBlind:           50,
		BetUnitPreFlopFlop: 50,
		BetUnitTurnRiver:   100,
		MaxBetsPerStreet:   4,
	}
}

func TestRules_Validate(t *testing.T) {
	a := assert.New(t)

	a.NoError(noLimitRules().Validate())
	a.NoError(limitRules().Validate())

	rules := noLimitRules()
	rules.Structure = "pot-limit"
	a.EqualError(rules.Validate(), `invalid configuration: unknown structure "pot-limit"`)

	rules = noLimitRules()
	rules.SmallBlind = 0
	a.ErrorIs(rules.Validate(), ErrInvalidConfiguration)

	rules = noLimitRules()
	rules.BigBlind = 10
	a.ErrorIs(rules.Validate(), ErrInvalidConfiguration)

	rules = noLimitRules()
	rules.Ante = -1
	a.ErrorIs(rules.Validate(), ErrInvalidConfiguration)

	// no-limit must not carry fixed-limit fields
	rules = noLimitRules()
	rules.MaxBetsPerStreet = 4
	a.ErrorIs(rules.Validate(), ErrInvalidConfiguration)

	rules = limitRules()
	rules.BetUnitTurnRiver = 0
	a.ErrorIs(rules.Validate(), ErrInvalidConfiguration)

	rules = limitRules()
	rules.BetUnitTurnRiver = 25
	a.ErrorIs(rules.Validate(), ErrInvalidConfiguration)

	rules = limitRules()
	rules.BigBlind = 25
	a.ErrorIs(rules.Validate(), ErrInvalidConfiguration)

	rules = limitRules()
	rules.MaxBetsPerStreet = 0
	a.ErrorIs(rules.Validate(), ErrInvalidConfiguration)
}

func TestRules_BetUnit(t *testing.T) {
	a := assert.New(t)
	rules := limitRules()

	a.Equal(50, rules.BetUnit(PreFlop))
	a.Equal(50, rules.BetUnit(Flop))
	a.Equal(100, rules.BetUnit(Turn))
	a.Equal(100, rules.BetUnit(River))
}

func TestStreet_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("pre-flop", PreFlop.String())
	a.Equal("flop", Flop.String())
	a.Equal("turn", Turn.String())
	a.Equal("river", River.String())
}
