package thermo

import "thermocode-go/bus"

// Topic layout:
//
//	thermo/state                      retained LoopState
//	thermo/channel/<1|2>/value        retained Reading, one per cycle
//	thermo/channel/<1|2>/event/toggle ToggleEvent, not retained
//	thermo/display/frame              retained Frame
//	thermo/control/<verb>             requests: toggle, brightness, read
func topicState() bus.Topic { return bus.T("thermo", "state") }

func topicChannelValue(channel int) bus.Topic {
	return bus.T("thermo", "channel", channel, "value")
}

func topicChannelToggle(channel int) bus.Topic {
	return bus.T("thermo", "channel", channel, "event", "toggle")
}

func topicDisplayFrame() bus.Topic { return bus.T("thermo", "display", "frame") }

func topicControlAll() bus.Topic { return bus.T("thermo", "control", bus.WildcardOne) }

// TopicControl addresses one control verb; exported for clients.
func TopicControl(verb string) bus.Topic { return bus.T("thermo", "control", verb) }
