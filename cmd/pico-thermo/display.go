//go:build rp2040 || rp2350

package main

import (
	"thermocode-go/drivers/tm1637"
	"thermocode-go/internal/platform"
	"thermocode-go/types"
)

// display adapts the TM1637 driver to the control loop.
type display struct {
	dev *tm1637.Device
}

func newDisplay() *display {
	dev := tm1637.New(
		platform.NewTM1637Pin(pinDisplayCLK),
		platform.NewTM1637Pin(pinDisplayDIO),
	)
	dev.Configure()
	return &display{dev: dev}
}

func (d *display) SetSegments(frame types.Frame) { d.dev.SetSegments(frame) }
func (d *display) SetBrightness(level uint8)     { d.dev.SetBrightness(level) }
func (d *display) Clear()                        { d.dev.Clear() }
