package brain

import (
	"holdempro/pkg/deck"
	"holdempro/pkg/poker/handrank"
)

// estimateStrength scores the hand between 0 (hopeless) and 1 (unbeatable).
// Pre-flop uses a hole-card heuristic; once the board is out, the made hand
// drives the score.
func estimateStrength(hole, community deck.Hand) float64 {
	if len(community) == 0 {
		return preFlopStrength(hole)
	}

	cards := make(deck.Hand, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)

	rank, err := handrank.Evaluate(cards)
	if err != nil {
		return 0
	}

	return madeHandStrength(rank)
}

func preFlopStrength(hole deck.Hand) float64 {
	if len(hole) != 2 {
		return 0
	}

	hi, lo := hole[0].Rank, hole[1].Rank
	if lo > hi {
		hi, lo = lo, hi
	}

	// high cards carry most of the weight; pairs, suitedness, and
	// connectedness add to it
	strength := float64(hi)/28.0 + float64(lo)/56.0

	if hi == lo {
		strength += 0.30
	}

	if hole[0].Suit == hole[1].Suit {
		strength += 0.05
	}

	if gap := hi - lo; gap >= 1 && gap <= 2 {
		strength += 0.03
	}

	return clamp(strength)
}

func madeHandStrength(rank handrank.HandRank) float64 {
	base := map[handrank.Category]float64{
		handrank.HighCard:      0.10,
		handrank.OnePair:       0.35,
		handrank.TwoPair:       0.55,
		handrank.ThreeOfAKind:  0.68,
		handrank.Straight:      0.78,
		handrank.Flush:         0.84,
		handrank.FullHouse:     0.91,
		handrank.FourOfAKind:   0.97,
		handrank.StraightFlush: 0.99,
		handrank.RoyalFlush:    1.0,
	}[rank.Category]

	// nudge by the primary tiebreak so a pair of aces outscores a pair of twos
	return clamp(base + float64(rank.Tiebreaks[0])/200.0)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
