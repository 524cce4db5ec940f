// Package sensors schedules temperature conversions across two probe
// channels without blocking the control loop. A DS18B20 conversion at
// 12-bit resolution takes up to 750 ms; the scheduler kicks both
// channels off together and the caller polls Ready between ticks.
package sensors

import "thermocode-go/types"

const (
	// DisconnectedMilliC is reported by a probe whose bus transaction
	// succeeded but whose scratchpad reads back the power-on value,
	// which in practice means the sensor fell off the wire.
	DisconnectedMilliC = -127_000

	// ConversionBudgetMs covers a 12-bit conversion with margin.
	ConversionBudgetMs = 750
)

// Probe is a single temperature sensor. Request starts a conversion
// and returns immediately; ReadMilliC fetches the result once the
// conversion budget has elapsed.
type Probe interface {
	Request() error
	ReadMilliC() (int32, error)
}

// Channel wraps one probe with presence and the last good reading.
// A nil probe makes an absent channel that always reads invalid,
// which keeps the rest of the loop free of nil checks.
type Channel struct {
	name    string
	probe   Probe
	present bool
	last    types.Reading
}

func NewChannel(name string, probe Probe) *Channel {
	return &Channel{name: name, probe: probe, present: probe != nil}
}

func (c *Channel) Name() string        { return c.name }
func (c *Channel) Present() bool       { return c.present }
func (c *Channel) Last() types.Reading { return c.last }

func (c *Channel) request() {
	if !c.present {
		return
	}
	if err := c.probe.Request(); err != nil {
		c.last = types.Reading{}
	}
}

func (c *Channel) collect() {
	if !c.present {
		c.last = types.Reading{}
		return
	}
	mc, err := c.probe.ReadMilliC()
	if err != nil || mc <= DisconnectedMilliC {
		c.last = types.Reading{}
		return
	}
	c.last = types.Reading{MilliC: mc, Valid: true}
}

// Scheduler runs a shared conversion cycle over its channels: one
// Start covers all of them, so both sensors convert in parallel and
// the loop pays the 750 ms budget once per cycle.
type Scheduler struct {
	chans    []*Channel
	budgetMs int64
	startMs  int64
	inFlight bool
}

func NewScheduler(budgetMs int64, chans ...*Channel) *Scheduler {
	if budgetMs <= 0 {
		budgetMs = ConversionBudgetMs
	}
	return &Scheduler{chans: chans, budgetMs: budgetMs}
}

func (s *Scheduler) InFlight() bool { return s.inFlight }

// Start issues conversion requests on every present channel and marks
// the cycle in flight. Calling Start while in flight restarts the
// budget clock.
func (s *Scheduler) Start(nowMs int64) {
	for _, c := range s.chans {
		c.request()
	}
	s.startMs = nowMs
	s.inFlight = true
}

// Ready reports whether the in-flight conversion has had its full
// budget. It is false when no conversion is in flight.
func (s *Scheduler) Ready(nowMs int64) bool {
	return s.inFlight && nowMs-s.startMs >= s.budgetMs
}

// Collect reads every channel and ends the cycle. The caller is
// expected to have seen Ready first; collecting early just yields
// stale or invalid readings.
func (s *Scheduler) Collect() {
	for _, c := range s.chans {
		c.collect()
	}
	s.inFlight = false
}
