package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdempro/pkg/poker/action"
	"holdempro/pkg/poker/betting"
)

func TestTracker_VPIPAndPFR(t *testing.T) {
	a := assert.New(t)
	tracker := NewTracker()

	ids := []int64{1, 2}

	// hand 1: player 1 raises pre-flop, player 2 calls
	tracker.StartHand(ids)
	tracker.RecordAction(1, betting.PreFlop, action.Raise)
	tracker.RecordAction(2, betting.PreFlop, action.Call)

	// hand 2: player 1 folds, player 2 raises
	tracker.StartHand(ids)
	tracker.RecordAction(1, betting.PreFlop, action.Fold)
	tracker.RecordAction(2, betting.PreFlop, action.Raise)

	a.Equal(2, tracker.Hands(1))
	a.InDelta(0.5, tracker.VPIP(1), 0.001)
	a.InDelta(0.5, tracker.PFR(1), 0.001)
	a.InDelta(1.0, tracker.VPIP(2), 0.001)
	a.InDelta(0.5, tracker.PFR(2), 0.001)

	// an unknown player has no hands
	a.Equal(0, tracker.Hands(99))
	a.Equal(0.0, tracker.VPIP(99))
}

func TestTracker_repeatActionsCountOncePerHand(t *testing.T) {
	a := assert.New(t)
	tracker := NewTracker()

	tracker.StartHand([]int64{1})
	tracker.RecordAction(1, betting.PreFlop, action.Call)
	tracker.RecordAction(1, betting.PreFlop, action.Raise)
	tracker.RecordAction(1, betting.PreFlop, action.Raise)

	a.InDelta(1.0, tracker.VPIP(1), 0.001)
	a.InDelta(1.0, tracker.PFR(1), 0.001)
}

func TestTracker_postFlopDoesNotCountTowardVPIP(t *testing.T) {
	a := assert.New(t)
	tracker := NewTracker()

	tracker.StartHand([]int64{1})
	tracker.RecordAction(1, betting.PreFlop, action.Check)
	tracker.RecordAction(1, betting.Flop, action.Bet)

	a.Equal(0.0, tracker.VPIP(1))
	a.Equal(0.0, tracker.PFR(1))
}

func TestTracker_AggressionFactor(t *testing.T) {
	a := assert.New(t)
	tracker := NewTracker()

	tracker.StartHand([]int64{1, 2})
	tracker.RecordAction(1, betting.Flop, action.Bet)
	tracker.RecordAction(1, betting.Turn, action.Raise)
	tracker.RecordAction(1, betting.River, action.Call)
	a.InDelta(2.0, tracker.AggressionFactor(1), 0.001)

	// a player who never calls reports the raw aggressive count
	tracker.RecordAction(2, betting.Flop, action.Bet)
	a.InDelta(1.0, tracker.AggressionFactor(2), 0.001)

	// all-ins count as raises
	tracker.RecordAction(2, betting.Turn, action.AllIn)
	a.InDelta(2.0, tracker.AggressionFactor(2), 0.001)
}
