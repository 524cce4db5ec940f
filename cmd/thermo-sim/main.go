// thermo-sim runs the full control loop on the host against fake
// pins, probes, and display, and drives a short scripted scenario so
// the loop can be watched without hardware.
package main

import (
	"context"
	"fmt"
	"time"

	"thermocode-go/bus"
	"thermocode-go/internal/platform"
	"thermocode-go/services/thermo"
	"thermocode-go/types"
)

// segment patterns back to something printable.
var glyphs = map[uint8]rune{
	0x00: ' ', 0x3F: '0', 0x06: '1', 0x5B: '2', 0x4F: '3', 0x66: '4',
	0x6D: '5', 0x7D: '6', 0x07: '7', 0x7F: '8', 0x6F: '9',
	0x40: '-', 0x71: 'F', 0x79: 'E', 0x50: 'r',
}

func render(f types.Frame) string {
	out := make([]rune, 0, 8)
	for _, seg := range f {
		g, ok := glyphs[seg&0x7F]
		if !ok {
			g = '?'
		}
		out = append(out, g)
		if seg&0x80 != 0 {
			out = append(out, '.')
		}
	}
	return string(out)
}

func main() {
	b := bus.NewBus(32)

	btn1 := platform.NewFakePin(14)
	btn2 := platform.NewFakePin(15)
	p1 := &platform.FakeProbe{MilliC: 20_000}
	p2 := &platform.FakeProbe{MilliC: 22_000}
	disp := &platform.FakeDisplay{}

	cfg := types.DefaultConfig()
	svc, err := thermo.New(cfg, b.NewConnection("thermo"), btn1, btn2, p1, p2, disp)
	if err != nil {
		fmt.Println("init:", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = svc.Run(ctx)
	}()

	watcher := b.NewConnection("watcher")
	frames := watcher.Subscribe(bus.T("thermo", "display", "frame"))
	toggles := watcher.Subscribe(bus.T("thermo", "channel", bus.WildcardOne, "event", "toggle"))
	go func() {
		for {
			select {
			case msg, ok := <-frames.Channel():
				if !ok {
					return
				}
				fmt.Printf("display  [%s]\n", render(msg.Payload.(types.Frame)))
			case msg, ok := <-toggles.Channel():
				if !ok {
					return
				}
				ev := msg.Payload.(types.ToggleEvent)
				fmt.Printf("toggle   channel %d enabled=%v\n", ev.Channel, ev.Enabled)
			}
		}
	}()

	client := b.NewConnection("client")
	read := func() {
		rctx, rcancel := context.WithTimeout(ctx, time.Second)
		defer rcancel()
		reply, err := client.RequestWait(rctx, client.NewMessage(thermo.TopicControl("read"), nil, false))
		if err != nil {
			fmt.Println("read:", err)
			return
		}
		r := reply.Payload.(types.ChannelReadings)
		fmt.Printf("readings s1={%d %v} s2={%d %v}\n", r.S1.MilliC, r.S1.Valid, r.S2.MilliC, r.S2.Valid)
	}

	toggle := func(channel int) {
		rctx, rcancel := context.WithTimeout(ctx, time.Second)
		defer rcancel()
		if _, err := client.RequestWait(rctx, client.NewMessage(thermo.TopicControl("toggle"), types.Toggle{Channel: channel}, false)); err != nil {
			fmt.Println("toggle:", err)
		}
	}

	fmt.Println("-- boot: both channels off --")
	time.Sleep(time.Second)

	fmt.Println("-- button 1 pressed: channel 1 on --")
	btn1.Press()
	time.Sleep(100 * time.Millisecond)
	btn1.Release()
	time.Sleep(2 * time.Second)
	read()

	fmt.Println("-- channel 2 on over the bus: display shows the mean --")
	toggle(2)
	time.Sleep(2 * time.Second)

	fmt.Println("-- sensor 2 pulled off the wire --")
	p2.MilliC = -127_000
	time.Sleep(2 * time.Second)
	read()

	fmt.Println("-- both channels off again: display reads OFF --")
	toggle(1)
	toggle(2)
	time.Sleep(time.Second)

	cancel()
	<-done
	fmt.Println("done")
}
