package handrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandRank_Compare(t *testing.T) {
	a := assert.New(t)

	pairOfTens := HandRank{Category: OnePair, Tiebreaks: [5]int{10, 14, 8, 3}}
	pairOfNines := HandRank{Category: OnePair, Tiebreaks: [5]int{9, 14, 8, 3}}
	flush := HandRank{Category: Flush, Tiebreaks: [5]int{14, 12, 9, 6, 3}}

	a.True(pairOfTens.Compare(pairOfNines) > 0)
	a.True(pairOfNines.Compare(pairOfTens) < 0)
	a.Equal(0, pairOfTens.Compare(pairOfTens))
	a.True(flush.Beats(pairOfTens))

	// the kicker decides when the pairs match
	better := HandRank{Category: OnePair, Tiebreaks: [5]int{10, 14, 9, 3}}
	a.True(better.Beats(pairOfTens))
}

func TestHandRank_Strength(t *testing.T) {
	a := assert.New(t)

	// strength must order exactly like Compare
	ranks := []HandRank{
		{Category: HighCard, Tiebreaks: [5]int{7, 5, 4, 3, 2}},
		{Category: HighCard, Tiebreaks: [5]int{14, 12, 9, 6, 3}},
		{Category: OnePair, Tiebreaks: [5]int{2, 5, 4, 3}},
		{Category: OnePair, Tiebreaks: [5]int{10, 14, 8, 3}},
		{Category: TwoPair, Tiebreaks: [5]int{14, 13, 9}},
		{Category: Straight, Tiebreaks: [5]int{5}},
		{Category: Straight, Tiebreaks: [5]int{14}},
		{Category: FullHouse, Tiebreaks: [5]int{8, 13}},
		{Category: FourOfAKind, Tiebreaks: [5]int{9, 14}},
		{Category: StraightFlush, Tiebreaks: [5]int{9}},
		{Category: RoyalFlush, Tiebreaks: [5]int{14}},
	}

	for i := 1; i < len(ranks); i++ {
		a.True(ranks[i].Strength() > ranks[i-1].Strength(),
			"expected %s to encode stronger than %s", ranks[i], ranks[i-1])
	}
}

func TestHandRank_String(t *testing.T) {
	assert.Equal(t, "Full house", HandRank{Category: FullHouse}.String())
}
