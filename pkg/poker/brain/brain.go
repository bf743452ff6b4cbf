// Package brain provides automated decision-making for hold'em seats.
package brain

import (
	"holdempro/pkg/deck"
	"holdempro/pkg/poker/action"
	"holdempro/pkg/poker/betting"
)

// View is everything a player may legally see when deciding: their own hole
// cards, the board, the pot, and the legal action set. Engine internals and
// other players' cards are deliberately absent.
type View struct {
	PlayerID   int64
	HoleCards  deck.Hand
	Community  deck.Hand
	Street     betting.Street
	Pot        int
	Balance    int
	CallAmount int
	Legal      *betting.ActionSet
}

// Decision is a chosen action with its size. Amount is the street total for
// bets and raises and is ignored for everything else.
type Decision struct {
	Action action.Action
	Amount int
}

// DecisionProvider chooses an action for a seat when it is on the clock
type DecisionProvider interface {
	Name() string
	Decide(view View) Decision
}

// PotOdds returns the ratio of the call amount to the pot after calling.
// Returns 0 when there is nothing to call.
func PotOdds(callAmount, pot int) float64 {
	if callAmount <= 0 {
		return 0
	}

	return float64(callAmount) / float64(pot+callAmount)
}
