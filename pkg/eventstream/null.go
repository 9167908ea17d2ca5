package eventstream

// NullStream discards every event published to it. Useful for
// headless operation and for code that takes an event sink but
// doesn't have a websocket server to hand it.
type NullStream struct{}

// NewNullStreamer hands back a null stream instance that discards
// everything.
func NewNullStreamer() *NullStream {
	return new(NullStream)
}

// PublishConfigEvent discards all config events.
func (ns *NullStream) PublishConfigEvent(_, _ string, _ interface{}) {}

// PublishLogLine discards all log lines.
func (ns *NullStream) PublishLogLine(_ string) {}
