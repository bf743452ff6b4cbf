package events

import (
	"holdempro/pkg/deck"
)

// Type identifies what an event records
type Type string

// event type constants
const (
	TypeDeal     Type = "deal"
	TypeAction   Type = "action"
	TypeStreet   Type = "street"
	TypeShowdown Type = "showdown"
	TypePotAward Type = "pot-award"
)

// Event is a single entry in a hand's trace. Each event carries enough state
// for a collaborator to reconstruct the hand without engine internals.
type Event struct {
	Seq  int  `json:"seq"`
	Type Type `json:"type"`

	// PlayerID is set for deal, action, and showdown events
	PlayerID int64 `json:"playerId,omitempty"`
	// Street is set for street transitions and actions
	Street string `json:"street,omitempty"`
	// Cards carries hole cards (deal), community cards (street), or the
	// revealed cards (showdown)
	Cards deck.Hand `json:"cards,omitempty"`

	Action string `json:"action,omitempty"`
	Amount int    `json:"amount,omitempty"`

	// Hand is the showdown hand description, i.e. "Full house"
	Hand string `json:"hand,omitempty"`

	// pot-award fields
	PotIndex int           `json:"potIndex,omitempty"`
	Winners  []int64       `json:"winners,omitempty"`
	Payouts  map[int64]int `json:"payouts,omitempty"`
}
