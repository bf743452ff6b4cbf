package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdempro/pkg/poker/action"
	"holdempro/pkg/poker/betting"
)

// fixedGen cycles through a fixed list of values
type fixedGen struct {
	values []int
	idx    int
}

func (g *fixedGen) Intn(n int) int {
	v := g.values[g.idx%len(g.values)] % n
	g.idx++

	return v
}

// neverBluff rolls at the top of the range so no persona bluffs
func neverBluff() *fixedGen {
	return &fixedGen{values: []int{999}}
}

func TestPersona_names(t *testing.T) {
	a := assert.New(t)
	a.Equal("cautious", NewCautious(neverBluff()).Name())
	a.Equal("wild", NewWild(neverBluff()).Name())
	a.Equal("balanced", NewBalanced(neverBluff()).Name())
}

func TestPersona_cautiousFoldsWeakHands(t *testing.T) {
	view := View{
		HoleCards:  hand("7d,2c"),
		Pot:        600,
		CallAmount: 500,
		Legal: &betting.ActionSet{
			CanFold:    true,
			CanCall:    true,
			CallAmount: 500,
		},
	}

	decision := NewCautious(neverBluff()).Decide(view)
	assert.Equal(t, action.Fold, decision.Action)
}

func TestPersona_checksWhenFree(t *testing.T) {
	view := View{
		HoleCards: hand("7d,2c"),
		Pot:       100,
		Legal: &betting.ActionSet{
			CanFold:  true,
			CanCheck: true,
			CanBet:   true,
			MinBet:   50,
			MaxBet:   1000,
		},
	}

	decision := NewCautious(neverBluff()).Decide(view)
	assert.Equal(t, action.Check, decision.Action)
}

func TestPersona_betsStrongHands(t *testing.T) {
	a := assert.New(t)

	view := View{
		HoleCards: hand("14c,14d"),
		Pot:       75,
		Legal: &betting.ActionSet{
			CanFold:  true,
			CanCheck: true,
			CanBet:   true,
			MinBet:   50,
			MaxBet:   1000,
		},
	}

	decision := NewCautious(neverBluff()).Decide(view)
	a.Equal(action.Bet, decision.Action)
	a.True(decision.Amount >= 50)
	a.True(decision.Amount <= 1000)
}

func TestPersona_raisesStrongHands(t *testing.T) {
	a := assert.New(t)

	view := View{
		HoleCards: hand("14c,14d"),
		Community: hand("14h,9s,2d"),
		Pot:       300,
		Legal: &betting.ActionSet{
			CanFold:    true,
			CanCall:    true,
			CallAmount: 100,
			CanRaise:   true,
			MinRaiseTo: 200,
			MaxRaiseTo: 1000,
		},
	}

	decision := NewCautious(neverBluff()).Decide(view)
	a.Equal(action.Raise, decision.Action)
	a.True(decision.Amount >= 200)
	a.True(decision.Amount <= 1000)
}

func TestPersona_wildBluffs(t *testing.T) {
	view := View{
		HoleCards: hand("7d,2c"),
		Pot:       100,
		Legal: &betting.ActionSet{
			CanFold:  true,
			CanCheck: true,
			CanBet:   true,
			MinBet:   50,
			MaxBet:   1000,
		},
	}

	// a zero roll is under the wild bluff chance
	decision := NewWild(&fixedGen{values: []int{0}}).Decide(view)
	assert.Equal(t, action.Bet, decision.Action)
}

func TestPersona_callsWithDecentOdds(t *testing.T) {
	// a middling hand calls a small bet into a big pot
	view := View{
		HoleCards:  hand("14c,11d"),
		Pot:        1000,
		CallAmount: 50,
		Legal: &betting.ActionSet{
			CanFold:    true,
			CanCall:    true,
			CallAmount: 50,
		},
	}

	decision := NewBalanced(neverBluff()).Decide(view)
	assert.Equal(t, action.Call, decision.Action)
}
