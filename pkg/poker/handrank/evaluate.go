package handrank

import (
	"errors"
	"fmt"
	"sort"

	"holdempro/pkg/deck"
)

// ErrInsufficientCards is an error when fewer than five cards are supplied
var ErrInsufficientCards = errors.New("at least five cards are required")

// analysis holds the rank and suit buckets computed for one evaluation
type analysis struct {
	ranksDesc []int
	counts    map[int]int
	suitRanks map[deck.Suit][]int

	quads []int
	trips []int
	pairs []int
}

// Evaluate returns the best HandRank achievable by choosing exactly five of the
// supplied cards. It is a pure function of the card set: input order does not matter.
// Between five and seven cards is the expected range, all distinct.
func Evaluate(cards []*deck.Card) (HandRank, error) {
	if len(cards) < 5 {
		return HandRank{}, ErrInsufficientCards
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if seen[*card] {
			return HandRank{}, fmt.Errorf("duplicate card in hand: %s", card)
		}
		seen[*card] = true
	}

	a := newAnalysis(cards)

	if high := straightHigh(a.suitedRankSet()); high > 0 {
		if high == deck.Ace {
			return HandRank{Category: RoyalFlush, Tiebreaks: tiebreaks(deck.Ace)}, nil
		}

		return HandRank{Category: StraightFlush, Tiebreaks: tiebreaks(high)}, nil
	}

	if len(a.quads) > 0 {
		quad := a.quads[0]
		return HandRank{Category: FourOfAKind, Tiebreaks: tiebreaks(append([]int{quad}, a.kickers(1, quad)...)...)}, nil
	}

	if trips, pair, ok := a.fullHouse(); ok {
		return HandRank{Category: FullHouse, Tiebreaks: tiebreaks(trips, pair)}, nil
	}

	if flush := a.flushRanks(); flush != nil {
		return HandRank{Category: Flush, Tiebreaks: tiebreaks(flush...)}, nil
	}

	if high := straightHigh(a.rankSet()); high > 0 {
		return HandRank{Category: Straight, Tiebreaks: tiebreaks(high)}, nil
	}

	if len(a.trips) > 0 {
		trips := a.trips[0]
		return HandRank{Category: ThreeOfAKind, Tiebreaks: tiebreaks(append([]int{trips}, a.kickers(2, trips)...)...)}, nil
	}

	if len(a.pairs) >= 2 {
		hi, lo := a.pairs[0], a.pairs[1]
		kickers := append([]int{lo}, a.kickers(1, hi, lo)...)
		return HandRank{Category: TwoPair, Tiebreaks: tiebreaks(append([]int{hi}, kickers...)...)}, nil
	}

	if len(a.pairs) == 1 {
		pair := a.pairs[0]
		return HandRank{Category: OnePair, Tiebreaks: tiebreaks(append([]int{pair}, a.kickers(3, pair)...)...)}, nil
	}

	return HandRank{Category: HighCard, Tiebreaks: tiebreaks(a.ranksDesc[0:5]...)}, nil
}

func newAnalysis(cards []*deck.Card) *analysis {
	a := &analysis{
		ranksDesc: make([]int, 0, len(cards)),
		counts:    make(map[int]int),
		suitRanks: make(map[deck.Suit][]int),
	}

	for _, card := range cards {
		a.ranksDesc = append(a.ranksDesc, card.Rank)
		a.counts[card.Rank]++
		a.suitRanks[card.Suit] = append(a.suitRanks[card.Suit], card.Rank)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(a.ranksDesc)))

	for rank, count := range a.counts {
		switch count {
		case 4:
			a.quads = append(a.quads, rank)
		case 3:
			a.trips = append(a.trips, rank)
		case 2:
			a.pairs = append(a.pairs, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(a.quads)))
	sort.Sort(sort.Reverse(sort.IntSlice(a.trips)))
	sort.Sort(sort.Reverse(sort.IntSlice(a.pairs)))

	return a
}

// flushSuit returns the suit holding five or more cards, if any
func (a *analysis) flushSuit() (deck.Suit, bool) {
	for _, suit := range deck.Suits {
		if len(a.suitRanks[suit]) >= 5 {
			return suit, true
		}
	}

	return "", false
}

// flushRanks returns the top five ranks of the flush suit, or nil if there is no flush
func (a *analysis) flushRanks() []int {
	suit, ok := a.flushSuit()
	if !ok {
		return nil
	}

	ranks := make([]int, len(a.suitRanks[suit]))
	copy(ranks, a.suitRanks[suit])
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	return ranks[0:5]
}

// suitedRankSet returns the rank set of the flush suit for straight-flush detection
func (a *analysis) suitedRankSet() map[int]bool {
	suit, ok := a.flushSuit()
	if !ok {
		return nil
	}

	set := make(map[int]bool, len(a.suitRanks[suit]))
	for _, rank := range a.suitRanks[suit] {
		set[rank] = true
	}

	return set
}

func (a *analysis) rankSet() map[int]bool {
	set := make(map[int]bool, len(a.counts))
	for rank := range a.counts {
		set[rank] = true
	}

	return set
}

// fullHouse returns the best trips+pair combination.
// With seven cards a second set of trips may supply the pair.
func (a *analysis) fullHouse() (trips, pair int, ok bool) {
	if len(a.trips) == 0 {
		return 0, 0, false
	}

	trips = a.trips[0]

	pair = -1
	if len(a.trips) >= 2 {
		pair = a.trips[1]
	}
	if len(a.pairs) > 0 && a.pairs[0] > pair {
		pair = a.pairs[0]
	}

	if pair < 0 {
		return 0, 0, false
	}

	return trips, pair, true
}

// kickers returns up to n of the highest card ranks not in the exclude list
func (a *analysis) kickers(n int, exclude ...int) []int {
	excluded := make(map[int]bool, len(exclude))
	for _, rank := range exclude {
		excluded[rank] = true
	}

	kickers := make([]int, 0, n)
	for _, rank := range a.ranksDesc {
		if excluded[rank] {
			continue
		}

		// a rank used once as a kicker cannot be used again
		excluded[rank] = true
		kickers = append(kickers, rank)
		if len(kickers) == n {
			break
		}
	}

	return kickers
}

// straightHigh returns the highest rank completing a five-card run in the set,
// or 0 if there is none. The wheel (A-2-3-4-5) reports 5, not Ace.
func straightHigh(set map[int]bool) int {
	if set == nil {
		return 0
	}

	for high := deck.Ace; high >= 5; high-- {
		run := true
		for i := 0; i < 5; i++ {
			rank := high - i
			if rank == deck.LowAce {
				rank = deck.Ace // Ace plays low in the wheel
			}

			if !set[rank] {
				run = false
				break
			}
		}

		if run {
			return high
		}
	}

	return 0
}

// tiebreaks pads the provided rank values to exactly five entries
func tiebreaks(values ...int) [5]int {
	var t [5]int
	copy(t[:], values)

	return t
}
