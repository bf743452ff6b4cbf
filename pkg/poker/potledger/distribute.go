package potledger

import (
	"errors"
	"fmt"

	"holdempro/pkg/poker/handrank"
)

// PotAward records who won a single pot and how it was split
type PotAward struct {
	Amount   int           `json:"amount"`
	Eligible []int64       `json:"eligible"`
	Winners  []int64       `json:"winners"`
	Payouts  map[int64]int `json:"payouts"`
}

// DistributionPlan is the final accounting for a hand. The sum of all payouts
// always equals the sum of all contributions, to the chip.
type DistributionPlan struct {
	Awards  []*PotAward   `json:"awards"`
	Payouts map[int64]int `json:"payouts"`
	Total   int           `json:"total"`
}

// Distribute builds the pots and pays each one to the best hand among its
// eligible players. Ties split the pot evenly; remainder chips are assigned
// one at a time in seating order, starting from the first eligible winner.
// Winners' balances are credited before the plan is returned.
func (l *Ledger) Distribute(ranks map[int64]handrank.HandRank) (*DistributionPlan, error) {
	plan := &DistributionPlan{
		Payouts: make(map[int64]int),
	}

	for _, pot := range l.BuildPots() {
		winners := potWinners(pot, ranks)
		if len(winners) == 0 {
			return nil, fmt.Errorf("no ranked player is eligible for a pot of %d", pot.Amount)
		}

		award := &PotAward{
			Amount:   pot.Amount,
			Eligible: pot.Eligible,
			Winners:  winners,
			Payouts:  make(map[int64]int),
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, id := range winners {
			payout := share
			if i < remainder {
				payout++
			}

			award.Payouts[id] = payout
			plan.Payouts[id] += payout
		}

		plan.Awards = append(plan.Awards, award)
		plan.Total += pot.Amount
	}

	l.credit(plan)
	return plan, nil
}

// AwardAll pays every pot to the sole remaining player without hand evaluation.
// Used when all other players have folded before showdown.
func (l *Ledger) AwardAll(id int64) (*DistributionPlan, error) {
	e, ok := l.entries[id]
	if !ok {
		return nil, ErrNotSeated
	}

	if e.isFolded {
		return nil, errors.New("cannot award the pots to a folded player")
	}

	total := l.Total()
	plan := &DistributionPlan{
		Awards: []*PotAward{{
			Amount:   total,
			Eligible: []int64{id},
			Winners:  []int64{id},
			Payouts:  map[int64]int{id: total},
		}},
		Payouts: map[int64]int{id: total},
		Total:   total,
	}

	l.credit(plan)
	return plan, nil
}

func (l *Ledger) credit(plan *DistributionPlan) {
	for id, payout := range plan.Payouts {
		l.entries[id].AdjustBalance(payout)
	}
}

// potWinners returns the IDs tied for the best hand among the pot's eligible
// players, in seating order
func potWinners(pot *Pot, ranks map[int64]handrank.HandRank) []int64 {
	var winners []int64
	var best handrank.HandRank
	for _, id := range pot.Eligible {
		rank, ok := ranks[id]
		if !ok {
			continue
		}

		if len(winners) == 0 || rank.Beats(best) {
			winners = []int64{id}
			best = rank
		} else if rank.Compare(best) == 0 {
			winners = append(winners, id)
		}
	}

	return winners
}
