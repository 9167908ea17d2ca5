package ds

import (
	"github.com/hashicorp/go-hclog"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/metrics"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
)

// WithLogger sets the logging instance used by the driver station and
// everything it constructs (peer tasks, watchdogs).
func WithLogger(l hclog.Logger) Option {
	return func(d *DriverStation) { d.l = l.Named("driver-station") }
}

// WithConfig supplies the Config Store this driver station reads and
// writes through. Callers that want to share a Store across the CLI,
// HTTP API, and metrics exporter construct one themselves and pass it
// here; New creates a private one if this option is omitted.
func WithConfig(s *config.Store) Option {
	return func(d *DriverStation) { d.store = s }
}

// WithProtocol sets the era installed on the first call to Run. It has
// no effect after Run has been called once; use SetProtocol for a
// live swap.
func WithProtocol(era protocol.Era) Option {
	return func(d *DriverStation) { d.initialEra = era }
}

// WithJoystickSource supplies the Joystick Source consulted when
// building outgoing robot packets. New defaults to joystick.NullSource.
func WithJoystickSource(js joystick.Source) Option {
	return func(d *DriverStation) { d.js = js }
}

// WithMetrics supplies the Prometheus exporter kept current from
// Config Store events. New creates a private one if this option is
// omitted.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *DriverStation) { d.metrics = m }
}
