package potledger

import (
	"errors"
	"fmt"
)

// ErrInsufficientChips is an error when a commit exceeds the participant's balance
var ErrInsufficientChips = errors.New("insufficient chips")

// ErrNotSeated is an error when a participant with the provided ID cannot be found
var ErrNotSeated = errors.New("participant is not seated")

// Ledger tracks per-player chip contributions for a single hand and builds
// the main and side pots from them. One Ledger serves exactly one hand.
type Ledger struct {
	entries   map[int64]*entry
	seatOrder []*entry
	street    int
}

// New instantiates an empty Ledger
func New() *Ledger {
	return &Ledger{
		entries: make(map[int64]*entry),
	}
}

// Seat adds a participant to the ledger in table order.
// This method must be called in seating order, before any chips are committed.
func (l *Ledger) Seat(p Participant) error {
	if p.Balance() <= 0 {
		return errors.New("cannot seat participant without a balance")
	}

	if _, ok := l.entries[p.ID()]; ok {
		return fmt.Errorf("participant %d is already seated", p.ID())
	}

	e := &entry{
		Participant: p,
		seatIndex:   len(l.seatOrder),
	}
	l.entries[p.ID()] = e
	l.seatOrder = append(l.seatOrder, e)

	return nil
}

// Commit moves chips from the participant's balance into the hand.
// The amount must not exceed the participant's remaining balance; a failed
// commit mutates nothing.
func (l *Ledger) Commit(id int64, amount int) error {
	e, ok := l.entries[id]
	if !ok {
		return ErrNotSeated
	}

	if amount < 0 {
		return fmt.Errorf("cannot commit a negative amount: %d", amount)
	}

	if amount > e.Balance() {
		return ErrInsufficientChips
	}

	e.commit(amount, l.street)
	return nil
}

// Fold marks the participant as folded. Folded chips stay in the pots but the
// participant loses eligibility for every pot.
func (l *Ledger) Fold(id int64) error {
	e, ok := l.entries[id]
	if !ok {
		return ErrNotSeated
	}

	e.isFolded = true
	return nil
}

// HasFolded returns true if the participant folded
func (l *Ledger) HasFolded(id int64) bool {
	e, ok := l.entries[id]
	return ok && e.isFolded
}

// NextStreet closes the current street bucket
func (l *Ledger) NextStreet() {
	l.street++
}

// Contribution returns the participant's total committed chips for the hand
func (l *Ledger) Contribution(id int64) int {
	e, ok := l.entries[id]
	if !ok {
		return 0
	}

	return e.total
}

// StreetContribution returns the chips the participant committed on the given street
func (l *Ledger) StreetContribution(id int64, street int) int {
	e, ok := l.entries[id]
	if !ok || street >= len(e.streets) {
		return 0
	}

	return e.streets[street]
}

// Total returns the combined chips committed by all participants
func (l *Ledger) Total() int {
	total := 0
	for _, e := range l.seatOrder {
		total += e.total
	}

	return total
}

// SeatOrder returns the participant IDs in seating order
func (l *Ledger) SeatOrder() []int64 {
	ids := make([]int64, len(l.seatOrder))
	for i, e := range l.seatOrder {
		ids[i] = e.ID()
	}

	return ids
}

func (l *Ledger) contenders() []*entry {
	live := make([]*entry, 0, len(l.seatOrder))
	for _, e := range l.seatOrder {
		if !e.isFolded {
			live = append(live, e)
		}
	}

	return live
}
