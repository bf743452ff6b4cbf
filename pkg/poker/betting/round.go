package betting

import (
	"errors"

	"holdempro/pkg/poker/action"
	"holdempro/pkg/poker/potledger"
)

// Participant is a seat the round can act on
type Participant interface {
	ID() int64
	Balance() int
}

// seatState tracks one participant's progress through the street
type seatState struct {
	Participant
	// bet is the amount committed on this street
	bet    int
	folded bool
	allIn  bool
	// acted is true once the seat has acted since the last full raise
	acted bool
	// raiseClosed is set when a short all-in passed an already-acted seat;
	// the seat may still call or fold, but not raise
	raiseClosed bool
}

func (s *seatState) canAct() bool {
	return !s.folded && !s.allIn
}

// Round enforces action legality and sizing for a single street.
// Every accepted chip movement is committed to the pot ledger; a rejected
// action mutates nothing.
type Round struct {
	rules  Rules
	street Street
	ledger *potledger.Ledger
	// seats are in action order: seats[0] is first to act
	seats []*seatState

	currentBet int
	// lastRaise is the size of the last full bet or raise increment, which
	// sets the minimum legal re-raise
	lastRaise int
	// betsPlaced counts bets and raises this street (fixed-limit cap)
	betsPlaced int

	turnIdx int
	over    bool
}

// NewRound starts a betting round. Participants must be supplied in action
// order (first to act at index 0); folded state is carried over from the
// ledger and an exhausted balance marks a seat all-in.
func NewRound(rules Rules, street Street, ledger *potledger.Ledger, participants []Participant) (*Round, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	if len(participants) < 2 {
		return nil, errors.New("a betting round requires at least two participants")
	}

	lastRaise := rules.BigBlind
	if rules.Structure == Limit {
		lastRaise = rules.BetUnit(street)
	}

	r := &Round{
		rules:     rules,
		street:    street,
		ledger:    ledger,
		seats:     make([]*seatState, 0, len(participants)),
		lastRaise: lastRaise,
	}

	if rules.Structure == Limit && street == PreFlop {
		// the big blind counts as the opening bet against the cap
		r.betsPlaced = 1
	}

	for _, p := range participants {
		r.seats = append(r.seats, &seatState{
			Participant: p,
			folded:      ledger.HasFolded(p.ID()),
			allIn:       p.Balance() == 0,
		})
	}

	r.settleTurn(-1)
	return r, nil
}

// PostBlind commits a forced bet before any voluntary action. The posting
// seat keeps its turn (the big blind retains the option). A short stack posts
// all-in, but the table still owes the full blind amount.
func (r *Round) PostBlind(id int64, amount int) error {
	seat := r.seat(id)
	if seat == nil {
		return potledger.ErrNotSeated
	}

	for _, s := range r.seats {
		if s.acted {
			return errors.New("blinds must be posted before any action")
		}
	}

	commit := amount
	if commit > seat.Balance() {
		commit = seat.Balance()
	}

	if err := r.ledger.Commit(id, commit); err != nil {
		return err
	}

	seat.bet += commit
	if seat.Balance() == 0 {
		seat.allIn = true
	}

	if amount > r.currentBet {
		r.currentBet = amount
	}

	r.settleTurn(-1)
	return nil
}

// CurrentTurn returns the participant who is next to act.
// Returns ErrRoundOver once the street is closed.
func (r *Round) CurrentTurn() (Participant, error) {
	if r.over {
		return nil, ErrRoundOver
	}

	return r.seats[r.turnIdx].Participant, nil
}

// IsOver returns true once every live, non-all-in seat has acted since the
// last full raise and matched the current bet, or only one live seat remains
func (r *Round) IsOver() bool {
	return r.over
}

// Contenders returns the number of non-folded seats
func (r *Round) Contenders() int {
	count := 0
	for _, s := range r.seats {
		if !s.folded {
			count++
		}
	}

	return count
}

// CurrentBet returns the amount each live seat must match this street
func (r *Round) CurrentBet() int {
	return r.currentBet
}

// LastRaiseSize returns the size of the last full bet or raise increment
func (r *Round) LastRaiseSize() int {
	return r.lastRaise
}

// SeatBet returns the chips the seat has committed this street
func (r *Round) SeatBet(id int64) int {
	if seat := r.seat(id); seat != nil {
		return seat.bet
	}

	return 0
}

// IsAllIn returns true if the seat is all-in
func (r *Round) IsAllIn(id int64) bool {
	seat := r.seat(id)
	return seat != nil && seat.allIn
}

// Act performs the given action for the player.
// An action by a non-current player, of an illegal type, or with an illegal
// size fails with IllegalActionError and must not mutate state.
func (r *Round) Act(id int64, act action.Action, amount int) error {
	if r.over {
		return ErrRoundOver
	}

	seat := r.seats[r.turnIdx]
	if seat.ID() != id {
		return newIllegalAction(id, act, "it is not your turn")
	}

	var err error
	switch act {
	case action.Fold:
		err = r.fold(seat)
	case action.Check:
		err = r.check(seat)
	case action.Call:
		err = r.call(seat)
	case action.Bet:
		err = r.bet(seat, amount)
	case action.Raise:
		err = r.raise(seat, amount)
	case action.AllIn:
		err = r.allIn(seat)
	default:
		err = newIllegalAction(id, act, "unknown action")
	}

	if err != nil {
		return err
	}

	seat.acted = true
	r.settleTurn(r.turnIdx)
	return nil
}

func (r *Round) fold(seat *seatState) error {
	if err := r.ledger.Fold(seat.ID()); err != nil {
		return err
	}

	seat.folded = true
	return nil
}

func (r *Round) check(seat *seatState) error {
	if seat.bet != r.currentBet {
		return newIllegalAction(seat.ID(), action.Check, "you cannot check with an active bet")
	}

	return nil
}

func (r *Round) call(seat *seatState) error {
	if r.currentBet <= seat.bet {
		return newIllegalAction(seat.ID(), action.Call, "you cannot call without an active bet")
	}

	return r.commit(seat, r.currentBet)
}

func (r *Round) bet(seat *seatState, amount int) error {
	if r.currentBet > 0 {
		return newIllegalAction(seat.ID(), action.Bet, "there is already a bet of ${%d}; raise instead", r.currentBet)
	}

	if r.rules.Structure == Limit {
		unit := r.rules.BetUnit(r.street)
		if r.betsPlaced >= r.rules.MaxBetsPerStreet {
			return newIllegalAction(seat.ID(), action.Bet, "the betting cap of %d has been reached", r.rules.MaxBetsPerStreet)
		}

		if amount != unit {
			return newIllegalAction(seat.ID(), action.Bet, "bets on this street are fixed at ${%d}", unit)
		}
	} else {
		if amount < r.rules.BigBlind {
			return newIllegalAction(seat.ID(), action.Bet, "bet must be at least ${%d}", r.rules.BigBlind)
		}

		if amount > seat.Balance() {
			return newIllegalAction(seat.ID(), action.Bet, "bet of ${%d} exceeds your stack", amount)
		}
	}

	if err := r.commit(seat, amount); err != nil {
		return err
	}

	r.currentBet = amount
	r.lastRaise = amount
	r.betsPlaced++
	r.reopen(seat)
	return nil
}

func (r *Round) raise(seat *seatState, raiseTo int) error {
	if r.currentBet == 0 {
		return newIllegalAction(seat.ID(), action.Raise, "there is no bet to raise; bet instead")
	}

	if seat.raiseClosed {
		return newIllegalAction(seat.ID(), action.Raise, "raising is closed for you this street")
	}

	if r.rules.Structure == Limit {
		unit := r.rules.BetUnit(r.street)
		if r.betsPlaced >= r.rules.MaxBetsPerStreet {
			return newIllegalAction(seat.ID(), action.Raise, "the betting cap of %d has been reached", r.rules.MaxBetsPerStreet)
		}

		target := r.currentBet + unit
		if raiseTo != target {
			return newIllegalAction(seat.ID(), action.Raise, "raises on this street are fixed at ${%d}", target)
		}
	} else {
		maxTo := seat.bet + seat.Balance()
		if raiseTo > maxTo {
			return newIllegalAction(seat.ID(), action.Raise, "raise to ${%d} exceeds your stack", raiseTo)
		}

		minTo := r.currentBet + r.lastRaise
		if raiseTo < minTo && raiseTo != maxTo {
			return newIllegalAction(seat.ID(), action.Raise, "raise must be to at least ${%d}", minTo)
		}
	}

	if raiseTo <= r.currentBet {
		return newIllegalAction(seat.ID(), action.Raise, "raise to ${%d} does not exceed the bet of ${%d}", raiseTo, r.currentBet)
	}

	if err := r.commit(seat, raiseTo); err != nil {
		return err
	}

	raiseSize := raiseTo - r.currentBet
	r.currentBet = raiseTo
	r.betsPlaced++

	if raiseSize >= r.lastRaise {
		r.lastRaise = raiseSize
		r.reopen(seat)
	} else {
		// an all-in for less than a full raise does not re-open raising for
		// seats that already acted
		r.closeRaising(seat)
	}

	return nil
}

func (r *Round) allIn(seat *seatState) error {
	if seat.Balance() == 0 {
		return newIllegalAction(seat.ID(), action.AllIn, "you have no chips left")
	}

	newTotal := seat.bet + seat.Balance()

	// a seat closed out of raising can only call for the rest of its stack
	if seat.raiseClosed && newTotal > r.currentBet {
		return r.commit(seat, r.currentBet)
	}

	if r.rules.Structure == Limit && newTotal > r.currentBet {
		if r.betsPlaced >= r.rules.MaxBetsPerStreet {
			// the cap is reached; the stack can only call
			return r.commit(seat, r.currentBet)
		}

		// fixed-limit can never bet past the street target
		if target := r.currentBet + r.rules.BetUnit(r.street); newTotal > target {
			return newIllegalAction(seat.ID(), action.AllIn, "fixed-limit bets are capped at ${%d}", target)
		}
	}

	if err := r.commit(seat, newTotal); err != nil {
		return err
	}

	if newTotal <= r.currentBet {
		// call for less
		return nil
	}

	raiseSize := newTotal - r.currentBet
	wasBet := r.currentBet == 0
	r.currentBet = newTotal

	if raiseSize >= r.lastRaise || wasBet {
		if raiseSize >= r.lastRaise {
			r.lastRaise = raiseSize
		}
		r.betsPlaced++
		r.reopen(seat)
	} else {
		// a short all-in does not count against the cap or re-open raising
		r.closeRaising(seat)
	}

	return nil
}

// commit brings the seat's street bet up to target, capped at an all-in
func (r *Round) commit(seat *seatState, target int) error {
	amount := target - seat.bet
	if amount > seat.Balance() {
		amount = seat.Balance()
	}

	if amount <= 0 {
		return nil
	}

	if err := r.ledger.Commit(seat.ID(), amount); err != nil {
		return err
	}

	seat.bet += amount
	if seat.Balance() == 0 {
		seat.allIn = true
	}

	return nil
}

// reopen clears acted flags after a full bet or raise: everyone else gets a
// fresh turn and may raise again
func (r *Round) reopen(raiser *seatState) {
	for _, s := range r.seats {
		if s != raiser {
			s.acted = false
		}
		s.raiseClosed = false
	}
}

// closeRaising marks every already-acted seat as unable to re-raise. They
// still owe a call of the larger bet.
func (r *Round) closeRaising(raiser *seatState) {
	for _, s := range r.seats {
		if s != raiser && s.acted {
			s.raiseClosed = true
		}
	}
}

// needsAction returns true if the seat still owes a decision this street
func (r *Round) needsAction(s *seatState) bool {
	return s.canAct() && (!s.acted || s.bet < r.currentBet)
}

// settleTurn advances to the next seat owing a decision, starting after the
// given index, or closes the round
func (r *Round) settleTurn(after int) {
	if r.Contenders() <= 1 {
		r.over = true
		return
	}

	n := len(r.seats)
	for i := 1; i <= n; i++ {
		idx := ((after + i) % n + n) % n
		if r.needsAction(r.seats[idx]) {
			r.turnIdx = idx
			r.over = false
			return
		}
	}

	r.over = true
}

func (r *Round) seat(id int64) *seatState {
	for _, s := range r.seats {
		if s.ID() == id {
			return s
		}
	}

	return nil
}
