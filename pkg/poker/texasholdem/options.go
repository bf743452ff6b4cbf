package texasholdem

import (
	"fmt"

	"holdempro/pkg/poker/betting"
)

const (
	minPlayers = 2
	maxPlayers = 10
)

// Seat describes a player entering a hand
type Seat struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Chips int    `json:"chips"`
}

// Options configures a hand of hold'em
type Options struct {
	Rules betting.Rules `json:"rules"`
	// Seed drives the shuffle; 0 draws a random seed
	Seed int64 `json:"seed"`
}

// DefaultOptions returns a 25/50 no-limit configuration
func DefaultOptions() Options {
	return Options{
		Rules: betting.Rules{
			Structure:  betting.NoLimit,
			SmallBlind: 25,
			BigBlind:   50,
		},
	}
}

func validateSeats(seats []Seat) error {
	if len(seats) < minPlayers || len(seats) > maxPlayers {
		return fmt.Errorf("hold'em requires between %d and %d players; got %d", minPlayers, maxPlayers, len(seats))
	}

	seen := make(map[int64]bool)
	for _, seat := range seats {
		if seat.Chips <= 0 {
			return fmt.Errorf("player %d must buy in with chips", seat.ID)
		}

		if seen[seat.ID] {
			return fmt.Errorf("player %d is seated twice", seat.ID)
		}
		seen[seat.ID] = true
	}

	return nil
}
