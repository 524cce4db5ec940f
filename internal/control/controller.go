// Package control is the firmware loop: debounced buttons toggle the
// two sensor channels, conversions run on the shared scheduler, and
// every tick renders one frame for the display. Nothing here blocks;
// the owner calls Tick at its own cadence.
package control

import (
	"thermocode-go/errcode"
	"thermocode-go/internal/platform"
	"thermocode-go/internal/render"
	"thermocode-go/internal/sensors"
	"thermocode-go/types"
)

type Controller struct {
	cfg types.Config

	pin1, pin2 platform.Pin
	btn1, btn2 *Button
	en1, en2   bool

	ch1, ch2 *sensors.Channel
	sched    *sensors.Scheduler

	disp  Display
	emit  Emitter
	flash Transient

	lastFrame types.Frame
	haveFrame bool
}

// NewController wires the loop together. Probes may be nil for absent
// channels; emit may be nil when nobody listens. Both channels boot
// disabled; the panel reads OFF until a button enables one.
func NewController(cfg types.Config, pin1, pin2 platform.Pin, p1, p2 sensors.Probe, disp Display, emit Emitter) (*Controller, error) {
	if err := pin1.ConfigureInput(platform.PullUp); err != nil {
		return nil, err
	}
	if err := pin2.ConfigureInput(platform.PullUp); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:  cfg,
		pin1: pin1,
		pin2: pin2,
		btn1: NewButton(cfg.SettleMs),
		btn2: NewButton(cfg.SettleMs),
		ch1:  sensors.NewChannel("s1", p1),
		ch2:  sensors.NewChannel("s2", p2),
		disp: disp,
		emit: emit,
	}
	c.sched = sensors.NewScheduler(cfg.ConvMs, c.ch1, c.ch2)
	disp.SetBrightness(cfg.Brightness)
	return c, nil
}

// Start kicks off the first conversion and paints the initial frame.
func (c *Controller) Start(nowMs int64) {
	c.sched.Start(nowMs)
	c.refresh(nowMs)
}

// Tick advances the loop by one step: sample buttons, harvest a
// finished conversion, restart the cycle, and refresh the display.
func (c *Controller) Tick(nowMs int64) {
	c.btn1.Poll(c.pin1.Get(), nowMs)
	c.btn2.Poll(c.pin2.Get(), nowMs)
	if c.btn1.Fell() {
		c.toggle(1, nowMs)
	}
	if c.btn2.Fell() {
		c.toggle(2, nowMs)
	}

	if c.sched.Ready(nowMs) {
		c.sched.Collect()
		c.publish(1, c.ch1.Last(), nowMs)
		c.publish(2, c.ch2.Last(), nowMs)
	}
	if !c.sched.InFlight() {
		c.sched.Start(nowMs)
	}

	c.refresh(nowMs)
}

// Toggle flips a channel enable flag, as the buttons do. It is also
// the entry point for remote toggle commands.
func (c *Controller) Toggle(channel int, nowMs int64) error {
	if channel != 1 && channel != 2 {
		return errcode.UnknownChannel
	}
	c.toggle(channel, nowMs)
	return nil
}

// SetBrightness forwards a 0..7 level to the display.
func (c *Controller) SetBrightness(level uint8) {
	c.disp.SetBrightness(level)
}

// Readings returns the latest per-channel readings.
func (c *Controller) Readings() types.ChannelReadings {
	return types.ChannelReadings{S1: c.ch1.Last(), S2: c.ch2.Last()}
}

// Enabled reports a channel enable flag; unknown channels read false.
func (c *Controller) Enabled(channel int) bool {
	switch channel {
	case 1:
		return c.en1
	case 2:
		return c.en2
	}
	return false
}

func (c *Controller) toggle(channel int, nowMs int64) {
	var enabled bool
	if channel == 1 {
		c.en1 = !c.en1
		enabled = c.en1
	} else {
		c.en2 = !c.en2
		enabled = c.en2
	}
	c.flash.Show(render.FlashFrame(channel, enabled), nowMs, c.cfg.FlashMs)
	c.send(Event{Kind: EventToggle, Channel: channel, Enabled: enabled, TSms: nowMs})
}

func (c *Controller) publish(channel int, r types.Reading, nowMs int64) {
	c.send(Event{Kind: EventReading, Channel: channel, Reading: r, TSms: nowMs})
}

// refresh computes the frame for this tick and pushes it only when it
// changed, keeping the bit-banged bus quiet between updates.
func (c *Controller) refresh(nowMs int64) {
	var frame types.Frame
	if c.flash.Active(nowMs) {
		frame = c.flash.Frame()
	} else {
		r, off := render.Select(c.en1, c.en2, c.ch1.Last(), c.ch2.Last())
		if off {
			frame = render.OffFrame
		} else {
			frame = render.Encode(r)
		}
	}

	if c.haveFrame && frame == c.lastFrame {
		return
	}
	c.lastFrame = frame
	c.haveFrame = true
	c.disp.SetSegments(frame)
	c.send(Event{Kind: EventFrame, Frame: frame, TSms: nowMs})
}

func (c *Controller) send(ev Event) {
	if c.emit != nil {
		c.emit.Emit(ev)
	}
}
