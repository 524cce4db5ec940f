// Package tm1637 drives a TM1637 4-digit 7-segment display over two
// open-drain lines. Both lines idle high via external pull-ups; a pin
// is "released" to output a 1 and driven low to output a 0, so the
// driver only needs High/Low on an injected pin pair and works the
// same over machine pins and host fakes.
package tm1637

import (
	"time"

	"thermocode-go/x/mathx"
)

// Pin is the subset of GPIO behaviour the driver needs.
type Pin interface {
	High() // release the line (floats high via pull-up)
	Low()  // drive the line low
}

const (
	cmdData    = 0x40 // write data, auto-increment address
	cmdAddress = 0xC0 // start at digit 0
	cmdDisplay = 0x80
	displayOn  = 0x08

	// DP is the decimal-point bit of a segment byte.
	DP = 0x80
)

// digitSegments is the standard 0-9 font, bits 0-6 = segments A-G.
var digitSegments = [10]uint8{
	0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F,
}

// EncodeDigit returns the segment byte for a decimal digit.
func EncodeDigit(d uint8) uint8 { return digitSegments[d%10] }

type Device struct {
	clk, dio   Pin
	brightness uint8
	bitDelay   func()
}

// New returns a device at full brightness. Configure must be called
// before the first write.
func New(clk, dio Pin) *Device {
	return &Device{
		clk:        clk,
		dio:        dio,
		brightness: 7,
		bitDelay:   func() { time.Sleep(100 * time.Microsecond) },
	}
}

// Configure releases both lines to the idle (high) state.
func (d *Device) Configure() {
	d.clk.High()
	d.dio.High()
}

// SetBrightness stores a 0..7 level; it takes effect on the next
// segment write, as the control byte is sent with every frame.
func (d *Device) SetBrightness(level uint8) {
	d.brightness = mathx.Clamp(level, 0, 7)
}

// SetSegments writes four raw segment bytes, leftmost digit first.
func (d *Device) SetSegments(segs [4]uint8) {
	d.start()
	d.writeByte(cmdData)
	d.stop()

	d.start()
	d.writeByte(cmdAddress)
	for _, s := range segs {
		d.writeByte(s)
	}
	d.stop()

	d.start()
	d.writeByte(cmdDisplay | displayOn | d.brightness)
	d.stop()
}

// Clear blanks all four digits.
func (d *Device) Clear() {
	d.SetSegments([4]uint8{})
}

// start: DIO falls while CLK is high.
func (d *Device) start() {
	d.dio.Low()
	d.bitDelay()
}

// stop: DIO rises while CLK is high.
func (d *Device) stop() {
	d.dio.Low()
	d.bitDelay()
	d.clk.High()
	d.bitDelay()
	d.dio.High()
	d.bitDelay()
}

// writeByte clocks out one byte LSB-first, then one ACK slot. The ACK
// level is not read back; a display is fire-and-forget.
func (d *Device) writeByte(b uint8) {
	for i := 0; i < 8; i++ {
		d.clk.Low()
		d.bitDelay()
		if b&1 != 0 {
			d.dio.High()
		} else {
			d.dio.Low()
		}
		d.bitDelay()
		d.clk.High()
		d.bitDelay()
		b >>= 1
	}
	// ACK slot: release DIO, clock once.
	d.clk.Low()
	d.dio.High()
	d.bitDelay()
	d.clk.High()
	d.bitDelay()
	d.clk.Low()
	d.bitDelay()
}
