// Package platform is the seam between the control loop and the
// hardware. The loop sees Pin and the sensor/display interfaces built
// on it; real boards bind them to machine pins, host builds get
// recording fakes so the whole loop runs under go test.
package platform

// Pull selects the input bias of a pin.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Pin is a single GPIO line.
type Pin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}
