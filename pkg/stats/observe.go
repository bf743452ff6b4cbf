package stats

import (
	"holdempro/pkg/poker/action"
	"holdempro/pkg/poker/betting"
	"holdempro/pkg/poker/events"
)

var streetsByName = map[string]betting.Street{
	betting.PreFlop.String(): betting.PreFlop,
	betting.Flop.String():    betting.Flop,
	betting.Turn.String():    betting.Turn,
	betting.River.String():   betting.River,
}

// ObserveTrace replays a hand's event trace into the tracker. Forced bets
// carry action names outside the voluntary set and are skipped.
func (t *Tracker) ObserveTrace(trace *events.Trace) {
	for _, event := range trace.Events() {
		if event.Type != events.TypeAction {
			continue
		}

		act, err := action.FromString(event.Action)
		if err != nil {
			// ante or blind
			continue
		}

		street, ok := streetsByName[event.Street]
		if !ok {
			continue
		}

		t.RecordAction(event.PlayerID, street, act)
	}
}
