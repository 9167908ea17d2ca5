package eventstream

import (
	"encoding/json"

	"github.com/hashicorp/go-hclog"
)

// Option configures an EventStream at construction time.
type Option func(*EventStream)

// WithLogger sets the logging instance used by the stream.
func WithLogger(l hclog.Logger) Option {
	return func(es *EventStream) { es.l = l.Named("eventstream") }
}

// WithMaxUndelivered bounds how many unread messages a slow subscriber
// may accumulate before it is disconnected. The default is 16.
func WithMaxUndelivered(n int) Option {
	return func(es *EventStream) { es.maxUndelivered = n }
}

// New returns a ready-to-use EventStream with no subscribers.
func New(opts ...Option) *EventStream {
	es := &EventStream{
		l:              hclog.NewNullLogger(),
		maxUndelivered: 16,
		subscribers:    make(map[*subscriber]struct{}),
	}
	for _, o := range opts {
		o(es)
	}
	return es
}

// PublishConfigEvent forwards a Config Store event to every connected
// subscriber. Topic and Field are carried as their string/JSON values
// so this package never needs to import pkg/config.
func (es *EventStream) PublishConfigEvent(topic, field string, value interface{}) {
	e := EventConfig{
		Type:  EventTypeConfig,
		Topic: topic,
		Field: field,
		Value: value,
	}

	bytes, err := json.Marshal(e)
	if err != nil {
		es.l.Warn("Error marshaling config event", "error", err)
		return
	}
	es.publish(bytes)
}

// PublishLogLine pushes an advisory status message into the event
// stream, mirroring config.Store.PublishMessage's TopicStatusText
// events for subscribers that only want a log view.
func (es *EventStream) PublishLogLine(msg string) {
	e := EventLogLine{
		Type:    EventTypeLogLine,
		Message: msg,
	}

	bytes, err := json.Marshal(e)
	if err != nil {
		es.l.Warn("Error marshaling log line", "error", err)
		return
	}
	es.publish(bytes)
}
