//go:build !rp2040 && !rp2350

package platform

import "thermocode-go/types"

// FakePin is a host stand-in for a GPIO line. Level defaults to true
// so an active-low button reads released until a test presses it.
type FakePin struct {
	Num        int
	Level      bool
	Configured bool
	LastPull   Pull
}

func NewFakePin(num int) *FakePin {
	return &FakePin{Num: num, Level: true}
}

func (p *FakePin) ConfigureInput(pull Pull) error {
	p.Configured = true
	p.LastPull = pull
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.Configured = true
	p.Level = initial
	return nil
}

func (p *FakePin) Set(level bool) { p.Level = level }
func (p *FakePin) Get() bool      { return p.Level }
func (p *FakePin) Number() int    { return p.Num }

// Press drives the pin low, as a button to ground would.
func (p *FakePin) Press() { p.Level = false }

// Release lets the pull-up take the pin high again.
func (p *FakePin) Release() { p.Level = true }

// FakeProbe is a scriptable temperature probe.
type FakeProbe struct {
	MilliC     int32
	ReadErr    error
	RequestErr error
	Requests   int
	Reads      int
}

func (p *FakeProbe) Request() error {
	p.Requests++
	return p.RequestErr
}

func (p *FakeProbe) ReadMilliC() (int32, error) {
	p.Reads++
	return p.MilliC, p.ReadErr
}

// FakeDisplay records every frame and brightness change.
type FakeDisplay struct {
	Frames     []types.Frame
	Brightness uint8
	Cleared    int
}

func (d *FakeDisplay) SetSegments(f types.Frame) {
	d.Frames = append(d.Frames, f)
}

func (d *FakeDisplay) SetBrightness(level uint8) {
	d.Brightness = level
}

func (d *FakeDisplay) Clear() {
	d.Cleared++
	d.Frames = append(d.Frames, types.Frame{})
}

// LastFrame returns the most recent frame, or a blank one.
func (d *FakeDisplay) LastFrame() types.Frame {
	if len(d.Frames) == 0 {
		return types.Frame{}
	}
	return d.Frames[len(d.Frames)-1]
}
