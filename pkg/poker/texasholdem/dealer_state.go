package texasholdem

// DealerState tracks how far the hand has progressed
type DealerState int

// DealerState constants
const (
	DealerStateStart DealerState = iota
	DealerStatePreFlopBetting
	DealerStateFlopBetting
	DealerStateTurnBetting
	DealerStateRiverBetting
	DealerStateRevealWinner
	DealerStateEnd
)

func (d DealerState) String() string {
	switch d {
	case DealerStateStart:
		return "start"
	case DealerStatePreFlopBetting:
		return "pre-flop betting"
	case DealerStateFlopBetting:
		return "flop betting"
	case DealerStateTurnBetting:
		return "turn betting"
	case DealerStateRiverBetting:
		return "river betting"
	case DealerStateRevealWinner:
		return "reveal winner"
	case DealerStateEnd:
		return "end"
	}

	return "unknown"
}
