package potledger

// Participant provides an interface for retrieving and adjusting a participant's chip balance
type Participant interface {
	ID() int64
	Balance() int
	AdjustBalance(amount int)
}

// entry tracks one seated participant's contributions for the hand
type entry struct {
	Participant
	// seatIndex is where the player is seated at the table
	seatIndex int
	// streets holds committed chips bucketed by street
	streets []int
	// total is the participant's total committed chips, monotonically non-decreasing
	total    int
	isFolded bool
}

func (e *entry) commit(amount int, street int) {
	for len(e.streets) <= street {
		e.streets = append(e.streets, 0)
	}

	e.streets[street] += amount
	e.total += amount
	e.AdjustBalance(-1 * amount)
}
