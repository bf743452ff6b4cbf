package brain

import (
	"holdempro/internal/rng"
	"holdempro/pkg/poker/action"
)

// Random picks uniformly among the legal actions. Useful as a fuzzing
// opponent and as a baseline in simulations.
type Random struct {
	gen rng.Generator
}

// NewRandom instantiates a Random provider
func NewRandom(gen rng.Generator) *Random {
	return &Random{gen: gen}
}

// Name returns the provider name
func (r *Random) Name() string {
	return "random"
}

// Decide picks a legal action at random; bet and raise sizes are drawn
// uniformly from the legal range
func (r *Random) Decide(view View) Decision {
	legal := view.Legal

	var candidates []Decision
	if legal.CanCheck {
		candidates = append(candidates, Decision{Action: action.Check})
	}

	if legal.CanCall {
		candidates = append(candidates, Decision{Action: action.Call})
	}

	if legal.CanFold {
		candidates = append(candidates, Decision{Action: action.Fold})
	}

	if legal.CanBet {
		candidates = append(candidates, Decision{
			Action: action.Bet,
			Amount: r.between(legal.MinBet, legal.MaxBet),
		})
	}

	if legal.CanRaise {
		candidates = append(candidates, Decision{
			Action: action.Raise,
			Amount: r.between(legal.MinRaiseTo, legal.MaxRaiseTo),
		})
	}

	if len(candidates) == 0 {
		return Decision{Action: action.Fold}
	}

	return candidates[r.gen.Intn(len(candidates))]
}

func (r *Random) between(min, max int) int {
	if max <= min {
		return min
	}

	return min + r.gen.Intn(max-min+1)
}
