package control

import "thermocode-go/types"

// Transient holds a short-lived status frame, such as the toggle
// flash, that overrides the normal display until it expires. Expiry
// is checked against the tick clock so nothing in the loop sleeps.
type Transient struct {
	frame   types.Frame
	untilMs int64
	active  bool
}

// Show displays frame until nowMs+durationMs. A new Show replaces any
// frame still pending.
func (t *Transient) Show(frame types.Frame, nowMs, durationMs int64) {
	t.frame = frame
	t.untilMs = nowMs + durationMs
	t.active = true
}

// Active reports whether the frame should still be on screen,
// clearing itself on expiry.
func (t *Transient) Active(nowMs int64) bool {
	if t.active && nowMs >= t.untilMs {
		t.active = false
	}
	return t.active
}

func (t *Transient) Frame() types.Frame { return t.frame }
