package potledger

import "sort"

// Pot is a single pot with the players eligible to win it.
// A hand produces one main pot and zero or more side pots; each side pot has a
// strictly smaller eligible set than the pot below it.
type Pot struct {
	Amount   int     `json:"amount"`
	Eligible []int64 `json:"eligible"`
}

// Pots is an ordered collection of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// BuildPots constructs the main and side pots from the contribution levels
// actually reached by non-folded players. For each level, the pot collects the
// increment from every player who contributed at least that much; eligibility
// is restricted to non-folded players at the level. Folded chips count toward
// pot amounts but never toward eligibility.
func (l *Ledger) BuildPots() Pots {
	contenders := l.contenders()
	if len(contenders) == 0 {
		return Pots{}
	}

	levelSet := make(map[int]bool)
	for _, e := range contenders {
		if e.total > 0 {
			levelSet[e.total] = true
		}
	}

	levels := make([]int, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	if len(levels) == 0 {
		return Pots{}
	}

	pots := make(Pots, 0, len(levels))
	prev := 0
	for i, level := range levels {
		amount := 0
		for _, e := range l.seatOrder {
			chips := e.total
			if chips > level {
				chips = level
			}

			if chips > prev {
				amount += chips - prev
			}
		}

		// a folded player may have committed beyond the deepest contender,
		// e.g. when a hand is aborted. Those chips land in the top pot so the
		// ledger stays balanced.
		if i+1 == len(levels) {
			for _, e := range l.seatOrder {
				if e.total > level {
					amount += e.total - level
				}
			}
		}

		eligible := make([]int64, 0, len(contenders))
		for _, e := range contenders {
			if e.total >= level {
				eligible = append(eligible, e.ID())
			}
		}

		pots = append(pots, &Pot{
			Amount:   amount,
			Eligible: eligible,
		})
		prev = level
	}

	return pots
}
