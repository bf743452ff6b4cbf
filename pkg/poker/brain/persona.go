package brain

import (
	"holdempro/internal/rng"
	"holdempro/pkg/poker/action"
)

// Persona is a threshold-driven decision provider. Hand strength is compared
// against the call and raise thresholds, with an occasional bluff mixed in.
type Persona struct {
	name string
	gen  rng.Generator

	// minimum strength to continue against a bet
	callThreshold float64
	// minimum strength to bet or raise
	raiseThreshold float64
	// chance to play a street as if the hand were strong
	bluffChance float64
	// fraction of the pot added on top of the minimum bet or raise
	aggression float64
}

// NewCautious plays tight: folds marginal hands and rarely bluffs
func NewCautious(gen rng.Generator) *Persona {
	return &Persona{
		name:           "cautious",
		gen:            gen,
		callThreshold:  0.40,
		raiseThreshold: 0.70,
		bluffChance:    0.02,
		aggression:     0.30,
	}
}

// NewWild plays loose and aggressive, with frequent bluffs and large sizing
func NewWild(gen rng.Generator) *Persona {
	return &Persona{
		name:           "wild",
		gen:            gen,
		callThreshold:  0.15,
		raiseThreshold: 0.45,
		bluffChance:    0.25,
		aggression:     0.90,
	}
}

// NewBalanced sits between cautious and wild
func NewBalanced(gen rng.Generator) *Persona {
	return &Persona{
		name:           "balanced",
		gen:            gen,
		callThreshold:  0.25,
		raiseThreshold: 0.60,
		bluffChance:    0.08,
		aggression:     0.55,
	}
}

// Name returns the persona name
func (p *Persona) Name() string {
	return p.name
}

// Decide chooses an action from the legal set based on hand strength
func (p *Persona) Decide(view View) Decision {
	legal := view.Legal
	strength := estimateStrength(view.HoleCards, view.Community)
	bluffing := p.roll() < p.bluffChance

	if strength >= p.raiseThreshold || bluffing {
		if decision, ok := p.aggressiveDecision(view); ok {
			return decision
		}
	}

	if legal.CanCheck {
		return Decision{Action: action.Check}
	}

	if legal.CanCall {
		odds := PotOdds(view.CallAmount, view.Pot)
		if bluffing || strength >= p.callThreshold || strength >= odds {
			return Decision{Action: action.Call}
		}
	}

	if legal.CanFold {
		return Decision{Action: action.Fold}
	}

	return Decision{Action: action.Check}
}

func (p *Persona) aggressiveDecision(view View) (Decision, bool) {
	legal := view.Legal

	if legal.CanBet {
		return Decision{
			Action: action.Bet,
			Amount: p.size(legal.MinBet, legal.MaxBet, view.Pot),
		}, true
	}

	if legal.CanRaise {
		return Decision{
			Action: action.Raise,
			Amount: p.size(legal.MinRaiseTo, legal.MaxRaiseTo, view.Pot),
		}, true
	}

	return Decision{}, false
}

// size picks an amount between min and max, scaled by aggression
func (p *Persona) size(min, max, pot int) int {
	amount := min + int(p.aggression*float64(pot))
	if amount > max {
		amount = max
	}

	if amount < min {
		amount = min
	}

	return amount
}

func (p *Persona) roll() float64 {
	return float64(p.gen.Intn(1000)) / 1000.0
}
