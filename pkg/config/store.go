package config

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Callback receives Events published on a Topic that has been
// subscribed to. Callbacks must not re-enter a setter for the field
// that triggered them; the Store makes no attempt to detect that and
// will deadlock if they do.
type Callback func(Event)

// Store is the process-wide, thread-safe record of Driver Station
// state. UI/CLI code and protocol code both read and write through it;
// it is the only shared mutable state in the kernel (see the
// concurrency model in SPEC_FULL.md §5).
type Store struct {
	l hclog.Logger

	mu sync.RWMutex

	teamNumber uint16
	alliance   Alliance
	position   Position
	mode       ControlMode
	enabled    bool
	estopped   bool

	robotVoltage float64
	robotHasCode bool

	fmsComms   bool
	radioComms bool
	robotComms bool

	robotCPUPct  int
	robotRAMPct  int
	robotDiskPct int
	robotCANPct  int

	fmsSent   uint32
	robotSent uint32

	protocolEra int

	subMu sync.Mutex
	subs  map[uuid.UUID]subscription
}

type subscription struct {
	topic Topic
	cb    Callback
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger sets the logging instance used by the Store.
func WithLogger(l hclog.Logger) Option {
	return func(s *Store) { s.l = l.Named("config") }
}

// New returns a Store with default field values (team 0, red/1,
// teleoperated, disabled, not e-stopped).
func New(opts ...Option) *Store {
	s := &Store{
		l:    hclog.NewNullLogger(),
		subs: make(map[uuid.UUID]subscription),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Subscribe registers cb to be called whenever an Event is published on
// topic. It returns a handle that can later be passed to Unsubscribe.
func (s *Store) Subscribe(topic Topic, cb Callback) uuid.UUID {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := uuid.New()
	s.subs[id] = subscription{topic: topic, cb: cb}
	return id
}

// Unsubscribe removes a previously registered subscription. It is a
// no-op if the handle is unknown.
func (s *Store) Unsubscribe(handle uuid.UUID) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	delete(s.subs, handle)
}

// publish fans an event out to every subscriber of its topic. Must be
// called with no Store lock held.
func (s *Store) publish(e Event) {
	s.subMu.Lock()
	cbs := make([]Callback, 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.topic == e.Topic {
			cbs = append(cbs, sub.cb)
		}
	}
	s.subMu.Unlock()

	for _, cb := range cbs {
		cb(e)
	}
}

// Snapshot returns a consistent, detached copy of every field.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		TeamNumber:   s.teamNumber,
		Alliance:     s.alliance,
		Position:     s.position,
		Mode:         s.mode,
		Enabled:      s.enabled,
		EStopped:     s.estopped,
		RobotVoltage: roundVoltage(s.robotVoltage),
		RobotHasCode: s.robotHasCode,
		FMSComms:     s.fmsComms,
		RadioComms:   s.radioComms,
		RobotComms:   s.robotComms,
		RobotCPUPct:  s.robotCPUPct,
		RobotRAMPct:  s.robotRAMPct,
		RobotDiskPct: s.robotDiskPct,
		RobotCANPct:  s.robotCANPct,
		FMSSent:      s.fmsSent,
		RobotSent:    s.robotSent,
		ProtocolEra:  s.protocolEra,
	}
}

func roundVoltage(v float64) float64 {
	// I3: robot_voltage is rounded to two decimals when exposed.
	return float64(int(v*100+0.5)) / 100
}
