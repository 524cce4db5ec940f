package control

import "thermocode-go/types"

// EventKind discriminates controller events.
type EventKind uint8

const (
	EventReading EventKind = iota
	EventToggle
	EventFrame
)

// Event is one observation out of the control loop. Channel is 1 or 2
// for per-channel events and 0 for the blended reading and frames.
type Event struct {
	Kind    EventKind
	Channel int
	Reading types.Reading
	Enabled bool
	Frame   types.Frame
	TSms    int64
}

// Emitter receives controller events. Emit must not block; it returns
// false when the event was dropped.
type Emitter interface {
	Emit(ev Event) bool
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(ev Event) bool

func (f EmitterFunc) Emit(ev Event) bool { return f(ev) }
