package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdempro/pkg/poker/action"
)

func TestLegalActions_opening(t *testing.T) {
	a := assert.New(t)
	r, _, _ := setupRound(t, noLimitRules(), Flop, 1000, 1000)

	set, err := r.LegalActions(1)
	a.NoError(err)

	a.Equal(int64(1), set.PlayerID)
	a.True(set.CanFold)
	a.True(set.CanCheck)
	a.False(set.CanCall)
	a.True(set.CanBet)
	a.Equal(50, set.MinBet)
	a.Equal(1000, set.MaxBet)
	a.False(set.CanRaise)
	a.True(set.CanAllIn)

	a.True(set.Contains(action.Check))
	a.False(set.Contains(action.Call))

	// only the player on the clock may ask
	_, err = r.LegalActions(2)
	a.True(IsIllegalAction(err))
}

func TestLegalActions_facingBet(t *testing.T) {
	a := assert.New(t)
	r, _, _ := setupRound(t, noLimitRules(), Flop, 1000, 1000)

	a.NoError(r.Act(1, action.Bet, 100))

	set, err := r.LegalActions(2)
	a.NoError(err)

	a.False(set.CanCheck)
	a.True(set.CanCall)
	a.Equal(100, set.CallAmount)
	a.False(set.CanBet)
	a.True(set.CanRaise)
	a.Equal(200, set.MinRaiseTo)
	a.Equal(1000, set.MaxRaiseTo)
}

func TestLegalActions_shortStackCall(t *testing.T) {
	a := assert.New(t)
	r, _, _ := setupRound(t, noLimitRules(), Flop, 1000, 60)

	a.NoError(r.Act(1, action.Bet, 100))

	// the call amount is capped at the stack and raising is unaffordable
	set, err := r.LegalActions(2)
	a.NoError(err)
	a.Equal(60, set.CallAmount)
	a.False(set.CanRaise)
	a.True(set.CanAllIn)
}

func TestLegalActions_raiseClosed(t *testing.T) {
	a := assert.New(t)
	r, _, _ := setupRound(t, noLimitRules(), Flop, 1000, 130)

	a.NoError(r.Act(1, action.Bet, 100))
	a.NoError(r.Act(2, action.AllIn, 0))

	// the short all-in leaves only call and fold
	set, err := r.LegalActions(1)
	a.NoError(err)
	a.True(set.CanCall)
	a.Equal(30, set.CallAmount)
	a.False(set.CanRaise)
	a.True(set.CanFold)
}

func TestLegalActions_limit(t *testing.T) {
	a := assert.New(t)
	r, _, _ := setupRound(t, limitRules(), Flop, 5000, 5000)

	// bets are fixed at the street unit
	set, err := r.LegalActions(1)
	a.NoError(err)
	a.True(set.CanBet)
	a.Equal(50, set.MinBet)
	a.Equal(50, set.MaxBet)

	a.NoError(r.Act(1, action.Bet, 50))

	set, err = r.LegalActions(2)
	a.NoError(err)
	a.True(set.CanRaise)
	a.Equal(100, set.MinRaiseTo)
	a.Equal(100, set.MaxRaiseTo)
}

func TestLegalActions_limitCapReached(t *testing.T) {
	a := assert.New(t)
	r, _, _ := setupRound(t, limitRules(), Flop, 5000, 5000)

	a.NoError(r.Act(1, action.Bet, 50))
	a.NoError(r.Act(2, action.Raise, 100))
	a.NoError(r.Act(1, action.Raise, 150))
	a.NoError(r.Act(2, action.Raise, 200))

	// at the cap, only call and fold remain
	set, err := r.LegalActions(1)
	a.NoError(err)
	a.True(set.CanCall)
	a.Equal(50, set.CallAmount)
	a.False(set.CanRaise)
	a.False(set.CanBet)
}
