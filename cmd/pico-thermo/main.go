//go:build rp2040 || rp2350

package main

import (
	"context"
	"time"

	"thermocode-go/bus"
	"thermocode-go/internal/platform"
	"thermocode-go/internal/sensors"
	"thermocode-go/services/thermo"
	"thermocode-go/types"
)

func main() {
	time.Sleep(2 * time.Second) // let USB serial enumerate
	println("pico-thermo: starting")

	b := bus.NewBus(16)

	// A missing sensor leaves its channel absent rather than failing
	// the boot; the panel still works on one channel.
	var p1, p2 sensors.Probe
	if probe, err := platform.NewDS18B20Probe(pinSensor1); err == nil {
		p1 = probe
	} else {
		println("pico-thermo: sensor 1:", err.Error())
	}
	if probe, err := platform.NewDS18B20Probe(pinSensor2); err == nil {
		p2 = probe
	} else {
		println("pico-thermo: sensor 2:", err.Error())
	}

	disp := newDisplay()

	svc, err := thermo.New(types.DefaultConfig(), b.NewConnection("thermo"),
		platform.GPIO(pinButton1), platform.GPIO(pinButton2), p1, p2, disp)
	if err != nil {
		println("pico-thermo: init failed:", err.Error())
		return
	}

	go tracer(b)

	if err := svc.Run(context.Background()); err != nil {
		println("pico-thermo: loop exited:", err.Error())
	}
}

// tracer prints bus traffic over serial for bring-up.
func tracer(b *bus.Bus) {
	conn := b.NewConnection("tracer")
	sub := conn.Subscribe(bus.T("thermo", bus.WildcardAll))
	for msg := range sub.Channel() {
		if msg.Topic.Len() >= 2 && msg.Topic.At(1) == "display" {
			continue // frames are too chatty for serial
		}
		print("bus:")
		for i := 0; i < msg.Topic.Len(); i++ {
			print(" ")
			printToken(msg.Topic.At(i))
		}
		println()
	}
}

func printToken(tok any) {
	switch v := tok.(type) {
	case string:
		print(v)
	case int:
		print(v)
	default:
		print("?")
	}
}
