package texasholdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"holdempro/pkg/poker/action"
	"holdempro/pkg/poker/betting"
	"holdempro/pkg/poker/brain"
)

// Run drives the hand to completion using a decision provider per seat.
// A provider returning an action outside its legal set is coerced to a check
// when possible and otherwise to a fold, so the hand always terminates.
func (g *Game) Run(providers map[int64]brain.DecisionProvider) (*Result, error) {
	for !g.finished {
		id, err := g.CurrentTurn()
		if err != nil {
			return nil, err
		}

		provider, ok := providers[id]
		if !ok {
			return nil, fmt.Errorf("no decision provider for player %d", id)
		}

		legal, err := g.LegalActions(id)
		if err != nil {
			return nil, err
		}

		decision := provider.Decide(g.viewFor(id, legal))
		act, amount := decision.Action, decision.Amount
		if !legal.Contains(act) {
			act, amount = safeFallback(legal)
			g.logger.WithFields(logrus.Fields{
				"player":   g.participants[id].Name,
				"provider": provider.Name(),
				"decision": string(decision.Action),
			}).Warnf("illegal decision; treating as a %s", act)
		}

		if err := g.Act(id, act, amount); err != nil {
			if !betting.IsIllegalAction(err) {
				return nil, err
			}

			// the action type was legal but the size was not
			act, amount = safeFallback(legal)
			g.logger.WithFields(logrus.Fields{
				"player":   g.participants[id].Name,
				"provider": provider.Name(),
			}).Warnf("illegal size; treating as a %s", act)

			if err := g.Act(id, act, amount); err != nil {
				return nil, err
			}
		}
	}

	return g.Result()
}

func (g *Game) viewFor(id int64, legal *betting.ActionSet) brain.View {
	p := g.participants[id]

	return brain.View{
		PlayerID:   id,
		HoleCards:  p.Cards(),
		Community:  g.Community(),
		Street:     g.street,
		Pot:        g.ledger.Total(),
		Balance:    p.Balance(),
		CallAmount: legal.CallAmount,
		Legal:      legal,
	}
}

func safeFallback(legal *betting.ActionSet) (action.Action, int) {
	if legal.CanCheck {
		return action.Check, 0
	}

	return action.Fold, 0
}
