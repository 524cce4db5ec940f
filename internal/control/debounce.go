package control

// Button debounces an active-low input by tracking the last raw level
// change: a sample only commits once the level has sat still past the
// settle window, so contact chatter restarts the clock instead of
// leaking through.
type Button struct {
	stable   bool
	raw      bool
	flipMs   int64
	settleMs int64
	fell     bool
}

// NewButton starts released (high, pull-up idle).
func NewButton(settleMs int64) *Button {
	return &Button{stable: true, raw: true, settleMs: settleMs}
}

// Poll feeds one raw sample. It must be called every tick; Fell
// reports the result for the same tick.
func (b *Button) Poll(raw bool, nowMs int64) {
	b.fell = false
	if raw != b.raw {
		b.raw = raw
		b.flipMs = nowMs
		return
	}
	if b.stable != b.raw && nowMs-b.flipMs > b.settleMs {
		b.stable = b.raw
		if !b.stable {
			b.fell = true
		}
	}
}

// Fell reports whether the last Poll committed a press (stable
// high-to-low edge).
func (b *Button) Fell() bool { return b.fell }

// Pressed reports the debounced level, true while held down.
func (b *Button) Pressed() bool { return !b.stable }
