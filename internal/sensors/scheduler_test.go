package sensors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbe struct {
	milliC     int32
	readErr    error
	requestErr error
	requests   int
	reads      int
}

func (p *fakeProbe) Request() error {
	p.requests++
	return p.requestErr
}

func (p *fakeProbe) ReadMilliC() (int32, error) {
	p.reads++
	return p.milliC, p.readErr
}

func TestSchedulerTiming(t *testing.T) {
	p := &fakeProbe{milliC: 21_500}
	s := NewScheduler(750, NewChannel("s1", p))

	assert.False(t, s.InFlight())
	assert.False(t, s.Ready(0))

	s.Start(1000)
	require.True(t, s.InFlight())
	assert.Equal(t, 1, p.requests)

	assert.False(t, s.Ready(1000))
	assert.False(t, s.Ready(1749))
	assert.True(t, s.Ready(1750))
	assert.True(t, s.Ready(5000))

	s.Collect()
	assert.False(t, s.InFlight())
	assert.False(t, s.Ready(5000), "ready must clear once collected")
	assert.Equal(t, 1, p.reads)
}

func TestSchedulerCollectReadings(t *testing.T) {
	p1 := &fakeProbe{milliC: 20_000}
	p2 := &fakeProbe{milliC: 22_125}
	c1 := NewChannel("s1", p1)
	c2 := NewChannel("s2", p2)
	s := NewScheduler(750, c1, c2)

	s.Start(0)
	s.Collect()

	r1, r2 := c1.Last(), c2.Last()
	require.True(t, r1.Valid)
	require.True(t, r2.Valid)
	assert.Equal(t, int32(20_000), r1.MilliC)
	assert.Equal(t, int32(22_125), r2.MilliC)
}

func TestSchedulerDisconnectedSentinel(t *testing.T) {
	p := &fakeProbe{milliC: DisconnectedMilliC}
	c := NewChannel("s1", p)
	s := NewScheduler(750, c)

	s.Start(0)
	s.Collect()
	assert.False(t, c.Last().Valid, "sentinel temperature must read invalid")

	p.milliC = 18_500
	s.Start(800)
	s.Collect()
	assert.True(t, c.Last().Valid, "channel recovers on the next cycle")
	assert.Equal(t, int32(18_500), c.Last().MilliC)
}

func TestSchedulerReadError(t *testing.T) {
	p := &fakeProbe{milliC: 25_000, readErr: errors.New("crc mismatch")}
	c := NewChannel("s1", p)
	s := NewScheduler(750, c)

	s.Start(0)
	s.Collect()
	assert.False(t, c.Last().Valid)
}

func TestAbsentChannel(t *testing.T) {
	c := NewChannel("s2", nil)
	s := NewScheduler(750, c)

	assert.False(t, c.Present())
	s.Start(0)
	s.Collect()
	assert.False(t, c.Last().Valid)
}

func TestRequestErrorInvalidatesEarly(t *testing.T) {
	p := &fakeProbe{milliC: 20_000, requestErr: errors.New("no presence pulse")}
	c := NewChannel("s1", p)
	c.last.Valid = true
	s := NewScheduler(750, c)

	s.Start(0)
	assert.False(t, c.Last().Valid, "a failed request must not leave a stale valid reading")
}
