package handrank

import (
	"math"
)

// HandRank is a total-ordered strength value for a five-card poker hand.
// Two ranks compare by category first, then by the tiebreak sequence element-wise.
type HandRank struct {
	Category  Category `json:"category"`
	Tiebreaks [5]int   `json:"tiebreaks"`
}

// Compare returns <0 if h is weaker than other, 0 if they tie, and >0 if h is stronger
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		return int(h.Category) - int(other.Category)
	}

	for i := 0; i < 5; i++ {
		if h.Tiebreaks[i] != other.Tiebreaks[i] {
			return h.Tiebreaks[i] - other.Tiebreaks[i]
		}
	}

	return 0
}

// Beats returns true if h is strictly stronger than other
func (h HandRank) Beats(other HandRank) bool {
	return h.Compare(other) > 0
}

// Strength encodes the rank into a single comparable integer.
// A rank value never reaches 15, so base-15 positions keep the encoding collision-free.
func (h HandRank) Strength() int {
	strength := math.Pow(15, 5) * float64(h.Category)
	for i := 0; i < 5; i++ {
		strength += math.Pow(15, float64(i)) * float64(h.Tiebreaks[4-i])
	}

	return int(strength)
}

func (h HandRank) String() string {
	return h.Category.String()
}
