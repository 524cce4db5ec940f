//go:build rp2040 || rp2350

package main

import "machine"

// Panel wiring. Buttons are active-low to ground; each sensor has its
// own 1-Wire line with a 4.7k pull-up; the display gets pull-ups on
// both lines.
const (
	pinButton1 = machine.GP14
	pinButton2 = machine.GP15

	pinSensor1 = machine.GP16
	pinSensor2 = machine.GP17

	pinDisplayCLK = machine.GP18
	pinDisplayDIO = machine.GP19
)
