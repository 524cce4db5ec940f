package types

// ---- Loop state (retained) ----

type LoopState struct {
	Level  string `json:"level"`  // e.g. "ready", "stopped"
	Status string `json:"status"` // freeform short code
	TSms   int64  `json:"ts_ms"`
}

// ---- Readings ----

// Reading is one temperature sample in milli-degrees Celsius.
// Valid is false for an absent channel, a disconnected sensor, or
// before the first conversion cycle has completed.
type Reading struct {
	MilliC int32 `json:"milli_c"`
	Valid  bool  `json:"valid"`
}

// ChannelReadings is the reply payload for the "read" control verb.
type ChannelReadings struct {
	S1 Reading `json:"s1"`
	S2 Reading `json:"s2"`
}

// ---- Display ----

// Frame is the raw content of the 4-digit 7-segment display.
// Bits 0-6 of each byte are segments A-G, bit 7 is the decimal point.
type Frame [4]uint8

// ---- Events ----

// ToggleEvent is published when a channel's enable flag flips
// (confirmed button edge or bus control).
type ToggleEvent struct {
	Channel int   `json:"channel"` // 1 or 2
	Enabled bool  `json:"enabled"`
	TSms    int64 `json:"ts_ms"`
}

// ---- Control payloads ----

type Toggle struct {
	Channel int `json:"channel"` // 1 or 2
}

type BrightnessSet struct {
	Level uint8 `json:"level"` // 0..7
}

// ---- Generic replies ----

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// ---- Loop configuration ----

// Config carries the runtime knobs of the control loop. Pin assignment
// stays compile-time in the cmd packages.
type Config struct {
	SettleMs   int64 // button debounce window
	FlashMs    int64 // toggle confirmation hold
	ConvMs     int64 // worst-case sensor conversion latency
	TickMs     int64 // service loop cadence
	Brightness uint8 // 0..7
}

// DefaultConfig: 20 ms debounce, 250 ms status flash, 750 ms 12-bit
// conversion budget, 5 ms tick.
func DefaultConfig() Config {
	return Config{
		SettleMs:   20,
		FlashMs:    250,
		ConvMs:     750,
		TickMs:     5,
		Brightness: 7,
	}
}
