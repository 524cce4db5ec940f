package control

import "thermocode-go/types"

// Display is the output device the controller writes frames to.
type Display interface {
	SetSegments(frame types.Frame)
	SetBrightness(level uint8)
	Clear()
}
