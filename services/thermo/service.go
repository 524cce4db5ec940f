// Package thermo runs the thermometer control loop as a bus service:
// it ticks the controller, publishes readings, toggle events, and
// display frames, and answers control requests.
package thermo

import (
	"context"
	"time"

	"thermocode-go/bus"
	"thermocode-go/errcode"
	"thermocode-go/internal/control"
	"thermocode-go/internal/platform"
	"thermocode-go/internal/sensors"
	"thermocode-go/types"
	"thermocode-go/x/timex"
)

type Service struct {
	cfg  types.Config
	conn *bus.Connection
	ctrl *control.Controller
	evCh chan control.Event
}

// New builds the controller around the given hardware and binds it to
// the bus connection. Probes may be nil for absent channels.
func New(cfg types.Config, conn *bus.Connection, pin1, pin2 platform.Pin, p1, p2 sensors.Probe, disp control.Display) (*Service, error) {
	s := &Service{
		cfg:  cfg,
		conn: conn,
		evCh: make(chan control.Event, 16),
	}
	ctrl, err := control.NewController(cfg, pin1, pin2, p1, p2, disp, s)
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	return s, nil
}

// Controller exposes the loop for direct host-side drivers (the
// simulator); firmware goes through the bus.
func (s *Service) Controller() *control.Controller { return s.ctrl }

// Emit queues a controller event for publication. It never blocks;
// events beyond the queue are dropped, the retained topics make the
// loss harmless.
func (s *Service) Emit(ev control.Event) bool {
	select {
	case s.evCh <- ev:
		return true
	default:
		return false
	}
}

// Run drives the loop until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	ctrlSub := s.conn.Subscribe(topicControlAll())
	defer ctrlSub.Unsubscribe()

	s.publishState("ready", "")
	s.ctrl.Start(timex.NowMs())

	ticker := time.NewTicker(time.Duration(s.cfg.TickMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.publishState("stopped", "")
			return nil
		case <-ticker.C:
			s.ctrl.Tick(timex.NowMs())
		case msg := <-ctrlSub.Channel():
			s.handleControl(msg)
		case ev := <-s.evCh:
			s.publishEvent(ev)
		}
	}
}

func (s *Service) handleControl(msg *bus.Message) {
	verb, _ := msg.Topic.At(2).(string)
	switch verb {
	case "toggle":
		p, ok := msg.Payload.(types.Toggle)
		if !ok {
			s.replyErr(msg, errcode.InvalidPayload)
			return
		}
		if err := s.ctrl.Toggle(p.Channel, timex.NowMs()); err != nil {
			s.replyErr(msg, errcode.Of(err))
			return
		}
		s.conn.Reply(msg, types.OKReply{OK: true}, false)
	case "brightness":
		p, ok := msg.Payload.(types.BrightnessSet)
		if !ok {
			s.replyErr(msg, errcode.InvalidPayload)
			return
		}
		s.ctrl.SetBrightness(p.Level)
		s.conn.Reply(msg, types.OKReply{OK: true}, false)
	case "read":
		s.conn.Reply(msg, s.ctrl.Readings(), false)
	default:
		s.replyErr(msg, errcode.Unsupported)
	}
}

func (s *Service) replyErr(msg *bus.Message, code errcode.Code) {
	s.conn.Reply(msg, types.ErrorReply{Error: string(code)}, false)
}

func (s *Service) publishEvent(ev control.Event) {
	switch ev.Kind {
	case control.EventReading:
		s.conn.Publish(s.conn.NewMessage(topicChannelValue(ev.Channel), ev.Reading, true))
	case control.EventToggle:
		payload := types.ToggleEvent{Channel: ev.Channel, Enabled: ev.Enabled, TSms: ev.TSms}
		s.conn.Publish(s.conn.NewMessage(topicChannelToggle(ev.Channel), payload, false))
	case control.EventFrame:
		s.conn.Publish(s.conn.NewMessage(topicDisplayFrame(), ev.Frame, true))
	}
}

func (s *Service) publishState(level, status string) {
	state := types.LoopState{Level: level, Status: status, TSms: timex.NowMs()}
	s.conn.Publish(s.conn.NewMessage(topicState(), state, true))
}
