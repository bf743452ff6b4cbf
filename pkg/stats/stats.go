// Package stats accumulates per-player tendencies across hands.
package stats

import (
	"holdempro/pkg/poker/action"
	"holdempro/pkg/poker/betting"
)

// playerStats are the raw counters behind the derived metrics
type playerStats struct {
	hands     int
	vpipHands int
	pfrHands  int

	bets   int
	raises int
	calls  int

	vpipThisHand bool
	pfrThisHand  bool
}

// Tracker accumulates VPIP, PFR, and aggression counters per player.
// VPIP counts hands where the player voluntarily put chips in pre-flop;
// blinds and antes do not count. PFR counts hands with a pre-flop raise.
type Tracker struct {
	players map[int64]*playerStats
}

// NewTracker instantiates an empty Tracker
func NewTracker() *Tracker {
	return &Tracker{
		players: make(map[int64]*playerStats),
	}
}

// StartHand begins a new hand for the given players
func (t *Tracker) StartHand(ids []int64) {
	for _, id := range ids {
		p := t.player(id)
		p.hands++
		p.vpipThisHand = false
		p.pfrThisHand = false
	}
}

// RecordAction feeds one voluntary action into the counters
func (t *Tracker) RecordAction(id int64, street betting.Street, act action.Action) {
	p := t.player(id)

	switch act {
	case action.Call:
		p.calls++
	case action.Bet:
		p.bets++
	case action.Raise, action.AllIn:
		p.raises++
	}

	if street != betting.PreFlop {
		return
	}

	switch act {
	case action.Call, action.Bet, action.Raise, action.AllIn:
		if !p.vpipThisHand {
			p.vpipThisHand = true
			p.vpipHands++
		}
	}

	switch act {
	case action.Bet, action.Raise, action.AllIn:
		if !p.pfrThisHand {
			p.pfrThisHand = true
			p.pfrHands++
		}
	}
}

// Hands returns the number of hands the player was dealt into
func (t *Tracker) Hands(id int64) int {
	return t.player(id).hands
}

// VPIP returns the fraction of hands where the player voluntarily put chips
// in pre-flop
func (t *Tracker) VPIP(id int64) float64 {
	p := t.player(id)
	return ratio(p.vpipHands, p.hands)
}

// PFR returns the fraction of hands where the player raised pre-flop
func (t *Tracker) PFR(id int64) float64 {
	p := t.player(id)
	return ratio(p.pfrHands, p.hands)
}

// AggressionFactor returns (bets + raises) / calls. A player who never calls
// gets the bet-and-raise count as the factor.
func (t *Tracker) AggressionFactor(id int64) float64 {
	p := t.player(id)
	aggressive := p.bets + p.raises
	if p.calls == 0 {
		return float64(aggressive)
	}

	return float64(aggressive) / float64(p.calls)
}

func (t *Tracker) player(id int64) *playerStats {
	p, ok := t.players[id]
	if !ok {
		p = &playerStats{}
		t.players[id] = p
	}

	return p
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}

	return float64(n) / float64(d)
}
