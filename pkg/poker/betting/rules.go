package betting

import (
	"encoding/json"
	"fmt"
)

// Structure is the betting structure of a game
type Structure string

// structure constants
const (
	Limit   Structure = "limit"
	NoLimit Structure = "no-limit"
)

// Street is one of the four betting phases of a hand
type Street int

// street constants
const (
	PreFlop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

// Rules configures the betting structure for a hand
type Rules struct {
	Structure  Structure `json:"structure" yaml:"structure"`
	SmallBlind int       `json:"smallBlind" yaml:"smallBlind"`
	BigBlind   int       `json:"bigBlind" yaml:"bigBlind"`
	Ante       int       `json:"ante" yaml:"ante"`

	// fixed-limit only: the bet unit per street, and the bets+raises cap
	BetUnitPreFlopFlop int `json:"betUnitPreFlopFlop" yaml:"betUnitPreFlopFlop"`
	BetUnitTurnRiver   int `json:"betUnitTurnRiver" yaml:"betUnitTurnRiver"`
	MaxBetsPerStreet   int `json:"maxBetsPerStreet" yaml:"maxBetsPerStreet"`
}

// Validate ensures the rules can run a legal hand.
// All failures wrap ErrInvalidConfiguration.
func (r Rules) Validate() error {
	switch r.Structure {
	case Limit, NoLimit:
	default:
		return fmt.Errorf("%w: unknown structure %q", ErrInvalidConfiguration, r.Structure)
	}

	if r.SmallBlind <= 0 {
		return fmt.Errorf("%w: small blind must be > 0", ErrInvalidConfiguration)
	}

	if r.BigBlind < r.SmallBlind {
		return fmt.Errorf("%w: big blind must be >= small blind", ErrInvalidConfiguration)
	}

	if r.Ante < 0 {
		return fmt.Errorf("%w: ante must be >= 0", ErrInvalidConfiguration)
	}

	if r.Structure == Limit {
		if r.BetUnitPreFlopFlop <= 0 || r.BetUnitTurnRiver <= 0 {
			return fmt.Errorf("%w: fixed-limit requires bet units > 0", ErrInvalidConfiguration)
		}

		if r.BetUnitTurnRiver < r.BetUnitPreFlopFlop {
			return fmt.Errorf("%w: turn/river bet unit must be >= pre-flop/flop unit", ErrInvalidConfiguration)
		}

		if r.BigBlind != r.BetUnitPreFlopFlop {
			return fmt.Errorf("%w: fixed-limit requires the big blind to equal the small bet unit", ErrInvalidConfiguration)
		}

		if r.MaxBetsPerStreet < 1 {
			return fmt.Errorf("%w: fixed-limit requires a bets-per-street cap of at least 1", ErrInvalidConfiguration)
		}

		return nil
	}

	// no-limit ignores the unit and cap fields; reject values that suggest a
	// mixed-up configuration
	if r.BetUnitPreFlopFlop != 0 || r.BetUnitTurnRiver != 0 || r.MaxBetsPerStreet != 0 {
		return fmt.Errorf("%w: bet units and the bet cap only apply to fixed-limit", ErrInvalidConfiguration)
	}

	return nil
}

// BetUnit returns the fixed-limit bet size for the street
func (r Rules) BetUnit(street Street) int {
	if street == Turn || street == River {
		return r.BetUnitTurnRiver
	}

	return r.BetUnitPreFlopFlop
}
