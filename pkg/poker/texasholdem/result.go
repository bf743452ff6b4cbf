package texasholdem

import (
	"errors"

	"holdempro/pkg/deck"
	"holdempro/pkg/poker/events"
)

// Result is the final accounting for a finished hand
type Result struct {
	HandID string `json:"handId"`
	Seed   int64  `json:"seed"`

	Community     deck.Hand     `json:"community"`
	Winners       []int64       `json:"winners"`
	Payouts       map[int64]int `json:"payouts"`
	Contributions map[int64]int `json:"contributions"`
	FinalStacks   map[int64]int `json:"finalStacks"`

	Events []*events.Event `json:"events"`
}

// Result returns the outcome of the hand.
// Returns an error until the hand is finished.
func (g *Game) Result() (*Result, error) {
	if !g.finished {
		return nil, errors.New("the hand is not over")
	}

	result := &Result{
		HandID:        g.trace.HandID(),
		Seed:          g.seed,
		Community:     g.Community(),
		Winners:       g.winners(),
		Payouts:       make(map[int64]int),
		Contributions: make(map[int64]int),
		FinalStacks:   make(map[int64]int),
		Events:        g.trace.Events(),
	}

	for id, payout := range g.plan.Payouts {
		result.Payouts[id] = payout
	}

	for _, id := range g.seatOrder {
		result.Contributions[id] = g.ledger.Contribution(id)
		result.FinalStacks[id] = g.participants[id].Balance()
	}

	return result, nil
}

// winners returns the distinct winning player IDs in seating order
func (g *Game) winners() []int64 {
	won := make(map[int64]bool)
	for _, award := range g.plan.Awards {
		for _, id := range award.Winners {
			won[id] = true
		}
	}

	winners := make([]int64, 0, len(won))
	for _, id := range g.seatOrder {
		if won[id] {
			winners = append(winners, id)
		}
	}

	return winners
}
