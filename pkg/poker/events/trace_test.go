package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdempro/pkg/deck"
)

func TestTrace_Append(t *testing.T) {
	a := assert.New(t)
	trace := NewTrace()

	a.NotEmpty(trace.HandID())
	a.Equal(0, trace.Len())

	trace.Append(Event{Type: TypeDeal, PlayerID: 1, Cards: deck.Hand(deck.CardsFromString("14s,13s"))})
	trace.Append(Event{Type: TypeAction, PlayerID: 1, Action: "check", Street: "pre-flop"})
	trace.Append(Event{Type: TypeStreet, Street: "flop"})

	a.Equal(3, trace.Len())

	recorded := trace.Events()
	a.Equal(0, recorded[0].Seq)
	a.Equal(1, recorded[1].Seq)
	a.Equal(2, recorded[2].Seq)
	a.Equal(TypeDeal, recorded[0].Type)

	// mutating the returned slice must not affect the trace
	recorded[0] = nil
	a.Equal(TypeDeal, trace.Events()[0].Type)

	// two traces never share a hand ID
	a.NotEqual(trace.HandID(), NewTrace().HandID())
}

func TestEvent_json(t *testing.T) {
	a := assert.New(t)

	event := Event{
		Seq:      4,
		Type:     TypePotAward,
		PotIndex: 1,
		Amount:   300,
		Winners:  []int64{2},
		Payouts:  map[int64]int{2: 300},
	}

	data, err := json.Marshal(event)
	a.NoError(err)
	a.JSONEq(`{"seq":4,"type":"pot-award","potIndex":1,"amount":300,"winners":[2],"payouts":{"2":300}}`, string(data))
}
