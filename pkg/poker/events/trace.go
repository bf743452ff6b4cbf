package events

import (
	"github.com/google/uuid"
)

// Trace is the append-only, ordered event log for one hand. The engine only
// ever appends; collaborators replay the log, never the engine.
type Trace struct {
	handID uuid.UUID
	events []*Event
}

// NewTrace returns an empty trace with a fresh hand ID
func NewTrace() *Trace {
	return &Trace{
		handID: uuid.New(),
	}
}

// HandID returns the unique ID for the hand
func (t *Trace) HandID() string {
	return t.handID.String()
}

// Append adds an event to the trace, stamping its sequence number
func (t *Trace) Append(event Event) {
	event.Seq = len(t.events)
	t.events = append(t.events, &event)
}

// Events returns the recorded events in order
func (t *Trace) Events() []*Event {
	events := make([]*Event, len(t.events))
	copy(events, t.events)

	return events
}

// Len returns the number of recorded events
func (t *Trace) Len() int {
	return len(t.events)
}
