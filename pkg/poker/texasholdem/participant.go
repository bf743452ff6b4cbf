package texasholdem

import (
	"holdempro/pkg/deck"
	"holdempro/pkg/poker/betting"
	"holdempro/pkg/poker/potledger"
)

var (
	_ potledger.Participant = (*Participant)(nil)
	_ betting.Participant   = (*Participant)(nil)
)

// Participant is a player in a hand of hold'em. It satisfies the ledger and
// betting-round participant contracts.
type Participant struct {
	PlayerID int64  `json:"playerId"`
	Name     string `json:"name"`

	balance int
	cards   deck.Hand
}

func newParticipant(seat Seat) *Participant {
	return &Participant{
		PlayerID: seat.ID,
		Name:     seat.Name,
		balance:  seat.Chips,
	}
}

// ID returns the player's ID
func (p *Participant) ID() int64 {
	return p.PlayerID
}

// Balance returns the chips the player has behind
func (p *Participant) Balance() int {
	return p.balance
}

// AdjustBalance adds the amount, which may be negative, to the player's stack
func (p *Participant) AdjustBalance(amount int) {
	p.balance += amount
}

// Cards returns the player's hole cards
func (p *Participant) Cards() deck.Hand {
	return p.cards.Clone()
}
