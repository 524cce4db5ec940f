//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"tinygo.org/x/drivers/ds18b20"
	"tinygo.org/x/drivers/onewire"

	"thermocode-go/errcode"
)

// gpioPin binds Pin to a machine pin.
type gpioPin struct {
	pin machine.Pin
}

// GPIO wraps a machine pin number.
func GPIO(pin machine.Pin) Pin {
	return &gpioPin{pin: pin}
}

func (p *gpioPin) ConfigureInput(pull Pull) error {
	mode := machine.PinInput
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	}
	p.pin.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (p *gpioPin) ConfigureOutput(initial bool) error {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.pin.Set(initial)
	return nil
}

func (p *gpioPin) Set(level bool) { p.pin.Set(level) }
func (p *gpioPin) Get() bool      { return p.pin.Get() }
func (p *gpioPin) Number() int    { return int(p.pin) }

// TM1637Pin adapts a machine pin to the open-drain High/Low pair the
// display driver expects: High releases the line as an input so the
// pull-up can raise it, Low drives it.
type TM1637Pin struct {
	pin machine.Pin
}

func NewTM1637Pin(pin machine.Pin) *TM1637Pin {
	p := &TM1637Pin{pin: pin}
	p.High()
	return p
}

func (p *TM1637Pin) High() {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
}

func (p *TM1637Pin) Low() {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.pin.Low()
}

// DS18B20Probe drives one sensor on its own 1-Wire bus, addressed by
// the ROM discovered at startup.
type DS18B20Probe struct {
	dev ds18b20.Device
	rom []uint8
}

// NewDS18B20Probe searches the bus on pin and binds to the first
// sensor found. It fails when the bus is empty so the caller can mark
// the channel absent.
func NewDS18B20Probe(pin machine.Pin) (*DS18B20Probe, error) {
	ow := onewire.New(pin)
	roms, err := ow.Search(onewire.SEARCH_ROM)
	if err != nil {
		return nil, err
	}
	if len(roms) == 0 {
		return nil, errcode.SensorAbsent
	}
	return &DS18B20Probe{dev: ds18b20.New(ow), rom: roms[0]}, nil
}

func (p *DS18B20Probe) Request() error {
	return p.dev.RequestTemperature(p.rom)
}

func (p *DS18B20Probe) ReadMilliC() (int32, error) {
	return p.dev.ReadTemperature(p.rom)
}
