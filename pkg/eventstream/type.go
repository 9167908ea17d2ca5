package eventstream

// EventType identifies what a wire envelope carries. The stream only
// ever carries two shapes: a Config Store event, and an advisory log
// line for clients that don't want to drive a websocket off of
// config.Topic values.
type EventType uint8

const (
	// EventTypeUnknown is the zero value; it should never cross the
	// wire.
	EventTypeUnknown EventType = iota

	// EventTypeConfig wraps a config.Event published by the Config
	// Store.
	EventTypeConfig

	// EventTypeLogLine carries a human-readable status message, mirroring
	// config.Store.PublishMessage's TopicStatusText events for clients
	// that only want to show a log, not parse config.Event values.
	EventTypeLogLine
)

// EventConfig is the wire envelope for a config.Event. It duplicates
// config.Event's fields rather than embedding the type so this package
// has no import of pkg/config; the JSON shape is intentionally
// identical.
type EventConfig struct {
	Type  EventType   `json:"type"`
	Topic string      `json:"topic"`
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

// EventLogLine carries a status message.
type EventLogLine struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
}
