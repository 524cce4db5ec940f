package thermo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermocode-go/bus"
	"thermocode-go/errcode"
	"thermocode-go/internal/platform"
	"thermocode-go/types"
)

// testConfig shrinks every window so a full conversion cycle fits in
// a few milliseconds of wall clock.
func testConfig() types.Config {
	return types.Config{SettleMs: 1, FlashMs: 10, ConvMs: 5, TickMs: 1, Brightness: 7}
}

type rig struct {
	bus    *bus.Bus
	client *bus.Connection
	disp   *platform.FakeDisplay
	p1, p2 *platform.FakeProbe
	cancel context.CancelFunc
	done   chan struct{}
}

func startRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		bus:  bus.NewBus(32),
		disp: &platform.FakeDisplay{},
		p1:   &platform.FakeProbe{MilliC: 20_000},
		p2:   &platform.FakeProbe{MilliC: 22_000},
		done: make(chan struct{}),
	}
	svc, err := New(testConfig(), r.bus.NewConnection("thermo"),
		platform.NewFakePin(14), platform.NewFakePin(15), r.p1, r.p2, r.disp)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	go func() {
		defer close(r.done)
		_ = svc.Run(ctx)
	}()

	r.client = r.bus.NewConnection("test-client")
	t.Cleanup(func() {
		cancel()
		<-r.done
		r.client.Disconnect()
	})

	// The service publishes the retained "ready" state only after its
	// control subscription exists, so waiting for it here guarantees a
	// request published next cannot be lost to the startup race.
	readySub := r.client.Subscribe(bus.T("thermo", "state"))
	defer readySub.Unsubscribe()
	deadline := time.After(time.Second)
	for {
		select {
		case msg := <-readySub.Channel():
			if state, ok := msg.Payload.(types.LoopState); ok && state.Level == "ready" {
				return r
			}
		case <-deadline:
			t.Fatal("service did not publish ready state")
		}
	}
}

func waitMsg(t *testing.T, sub *bus.Subscription, within time.Duration) *bus.Message {
	t.Helper()
	select {
	case msg := <-sub.Channel():
		return msg
	case <-time.After(within):
		t.Fatalf("no message on %v within %v", sub.Topic(), within)
		return nil
	}
}

func request(t *testing.T, r *rig, verb string, payload any) *bus.Message {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	reply, err := r.client.RequestWait(ctx, r.client.NewMessage(TopicControl(verb), payload, false))
	require.NoError(t, err)
	return reply
}

func TestServicePublishesReadings(t *testing.T) {
	r := startRig(t)

	sub := r.client.Subscribe(bus.T("thermo", "channel", 1, "value"))
	defer sub.Unsubscribe()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-sub.Channel():
			reading, ok := msg.Payload.(types.Reading)
			require.True(t, ok)
			if reading.Valid {
				assert.Equal(t, int32(20_000), reading.MilliC)
				return
			}
		case <-deadline:
			t.Fatal("no valid reading published")
		}
	}
}

func TestServiceRetainsState(t *testing.T) {
	r := startRig(t)

	// Give the service a moment to publish, then subscribe; the
	// retained message must arrive anyway.
	time.Sleep(50 * time.Millisecond)
	sub := r.client.Subscribe(bus.T("thermo", "state"))
	defer sub.Unsubscribe()

	msg := waitMsg(t, sub, time.Second)
	state, ok := msg.Payload.(types.LoopState)
	require.True(t, ok)
	assert.Equal(t, "ready", state.Level)
}

func TestServiceRetainsDisplayFrame(t *testing.T) {
	r := startRig(t)

	time.Sleep(100 * time.Millisecond) // at least one cycle
	sub := r.client.Subscribe(bus.T("thermo", "display", "frame"))
	defer sub.Unsubscribe()

	msg := waitMsg(t, sub, time.Second)
	_, ok := msg.Payload.(types.Frame)
	assert.True(t, ok)
}

func TestServiceControlRead(t *testing.T) {
	r := startRig(t)

	time.Sleep(100 * time.Millisecond) // let a conversion land
	reply := request(t, r, "read", nil)
	readings, ok := reply.Payload.(types.ChannelReadings)
	require.True(t, ok)
	assert.Equal(t, int32(20_000), readings.S1.MilliC)
	assert.Equal(t, int32(22_000), readings.S2.MilliC)
}

func TestServiceControlToggle(t *testing.T) {
	r := startRig(t)

	sub := r.client.Subscribe(bus.T("thermo", "channel", 2, "event", "toggle"))
	defer sub.Unsubscribe()

	reply := request(t, r, "toggle", types.Toggle{Channel: 2})
	_, ok := reply.Payload.(types.OKReply)
	require.True(t, ok, "got %#v", reply.Payload)

	msg := waitMsg(t, sub, time.Second)
	ev, ok := msg.Payload.(types.ToggleEvent)
	require.True(t, ok)
	assert.Equal(t, 2, ev.Channel)
	assert.True(t, ev.Enabled, "channels boot disabled; the first toggle enables")
}

func TestServiceControlToggleUnknownChannel(t *testing.T) {
	r := startRig(t)

	reply := request(t, r, "toggle", types.Toggle{Channel: 9})
	errReply, ok := reply.Payload.(types.ErrorReply)
	require.True(t, ok)
	assert.Equal(t, string(errcode.UnknownChannel), errReply.Error)
}

func TestServiceControlBadPayload(t *testing.T) {
	r := startRig(t)

	reply := request(t, r, "toggle", "not a toggle")
	errReply, ok := reply.Payload.(types.ErrorReply)
	require.True(t, ok)
	assert.Equal(t, string(errcode.InvalidPayload), errReply.Error)
}

func TestServiceControlUnknownVerb(t *testing.T) {
	r := startRig(t)

	reply := request(t, r, "reboot", nil)
	errReply, ok := reply.Payload.(types.ErrorReply)
	require.True(t, ok)
	assert.Equal(t, string(errcode.Unsupported), errReply.Error)
}

func TestServiceControlBrightness(t *testing.T) {
	r := startRig(t)

	reply := request(t, r, "brightness", types.BrightnessSet{Level: 3})
	_, ok := reply.Payload.(types.OKReply)
	require.True(t, ok)

	r.cancel()
	<-r.done
	assert.Equal(t, uint8(3), r.disp.Brightness)
}
