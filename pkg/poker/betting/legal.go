package betting

import (
	"holdempro/pkg/poker/action"
)

// ActionSet is the minimal set of legal actions, with bounds, for the seat
// currently on the clock. Amounts are "to" amounts: a raise option of
// (MinRaiseTo, MaxRaiseTo) means the street bet moves to that total.
type ActionSet struct {
	PlayerID int64 `json:"playerId"`

	CanFold  bool `json:"canFold"`
	CanCheck bool `json:"canCheck"`

	// CallAmount is the additional amount owed to call; call is only legal
	// when CanCall is true
	CanCall    bool `json:"canCall"`
	CallAmount int  `json:"callAmount"`

	CanBet bool `json:"canBet"`
	MinBet int  `json:"minBet"`
	MaxBet int  `json:"maxBet"`

	CanRaise   bool `json:"canRaise"`
	MinRaiseTo int  `json:"minRaiseTo"`
	MaxRaiseTo int  `json:"maxRaiseTo"`

	CanAllIn bool `json:"canAllIn"`
}

// Contains returns true if the concrete action is within the set
func (s *ActionSet) Contains(act action.Action) bool {
	switch act {
	case action.Fold:
		return s.CanFold
	case action.Check:
		return s.CanCheck
	case action.Call:
		return s.CanCall
	case action.Bet:
		return s.CanBet
	case action.Raise:
		return s.CanRaise
	case action.AllIn:
		return s.CanAllIn
	}

	return false
}

// LegalActions returns the action set for the player currently on the clock.
// Returns an IllegalActionError for any other player and ErrRoundOver once
// the street is closed.
func (r *Round) LegalActions(id int64) (*ActionSet, error) {
	if r.over {
		return nil, ErrRoundOver
	}

	seat := r.seats[r.turnIdx]
	if seat.ID() != id {
		return nil, newIllegalAction(id, "", "it is not your turn")
	}

	set := &ActionSet{
		PlayerID: id,
		CanFold:  true,
		CanAllIn: seat.Balance() > 0,
	}

	if seat.bet == r.currentBet {
		set.CanCheck = true
	} else if r.currentBet > seat.bet {
		set.CanCall = true
		set.CallAmount = r.currentBet - seat.bet
		if set.CallAmount > seat.Balance() {
			set.CallAmount = seat.Balance()
		}
	}

	if r.rules.Structure == Limit {
		r.legalLimitSizes(seat, set)
	} else {
		r.legalNoLimitSizes(seat, set)
	}

	return set, nil
}

func (r *Round) legalLimitSizes(seat *seatState, set *ActionSet) {
	if r.betsPlaced >= r.rules.MaxBetsPerStreet || seat.raiseClosed {
		return
	}

	unit := r.rules.BetUnit(r.street)
	if r.currentBet == 0 {
		if seat.Balance() >= unit {
			set.CanBet = true
			set.MinBet = unit
			set.MaxBet = unit
		}
		return
	}

	target := r.currentBet + unit
	if seat.bet+seat.Balance() >= target {
		set.CanRaise = true
		set.MinRaiseTo = target
		set.MaxRaiseTo = target
	}
}

func (r *Round) legalNoLimitSizes(seat *seatState, set *ActionSet) {
	if seat.raiseClosed {
		return
	}

	maxTo := seat.bet + seat.Balance()

	if r.currentBet == 0 {
		if seat.Balance() >= r.rules.BigBlind {
			set.CanBet = true
			set.MinBet = r.rules.BigBlind
			set.MaxBet = seat.Balance()
		}
		return
	}

	minTo := r.currentBet + r.lastRaise
	if maxTo > r.currentBet {
		set.CanRaise = maxTo >= minTo
		if set.CanRaise {
			set.MinRaiseTo = minTo
			set.MaxRaiseTo = maxTo
		}
	}
}
