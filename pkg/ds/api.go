package ds

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/httpapi"
)

// SetTeamNumber implements the Public API operation of the same name
// (SPEC_FULL.md §4.4).
func (d *DriverStation) SetTeamNumber(n uint16) { d.store.SetTeamNumber(n) }

// SetAlliance implements the Public API operation of the same name.
func (d *DriverStation) SetAlliance(a config.Alliance) { d.store.SetAlliance(a) }

// SetPosition implements the Public API operation of the same name.
func (d *DriverStation) SetPosition(p config.Position) { d.store.SetPosition(p) }

// SetControlMode implements the Public API operation of the same name.
func (d *DriverStation) SetControlMode(m config.ControlMode) { d.store.SetControlMode(m) }

// SetEnabled implements the Public API operation of the same name;
// invariant I1 is honored inside the Config Store.
func (d *DriverStation) SetEnabled(want bool) { d.store.SetEnabled(want) }

// RequestReboot sets a latch on the active descriptor that biases the
// next outgoing robot packet's request byte.
func (d *DriverStation) RequestReboot() { d.proto.RequestReboot() }

// RequestRestartCode sets a latch on the active descriptor that biases
// the next outgoing robot packet's request byte.
func (d *DriverStation) RequestRestartCode() { d.proto.RequestRestartCode() }

// SwitchToTeleoperated is sugar over SetControlMode(config.ControlTeleoperated).
func (d *DriverStation) SwitchToTeleoperated() { d.SetControlMode(config.ControlTeleoperated) }

// SwitchToAutonomous is sugar over SetControlMode(config.ControlAutonomous).
func (d *DriverStation) SwitchToAutonomous() { d.SetControlMode(config.ControlAutonomous) }

// SwitchToTest is sugar over SetControlMode(config.ControlTest).
func (d *DriverStation) SwitchToTest() { d.SetControlMode(config.ControlTest) }

// EmergencyStop sets the sticky emergency-stop flag (invariant I2).
func (d *DriverStation) EmergencyStop() { d.store.SetEmergencyStopped(true) }

// ClearEmergencyStop is the only operation that can clear the sticky
// emergency-stop flag.
func (d *DriverStation) ClearEmergencyStop() { d.store.ClearEmergencyStop() }

// Subscribe registers cb for Events published on topic; see
// config.Store.Subscribe.
func (d *DriverStation) Subscribe(topic config.Topic, cb config.Callback) uuid.UUID {
	return d.store.Subscribe(topic, cb)
}

// Unsubscribe removes a previously registered subscription.
func (d *DriverStation) Unsubscribe(handle uuid.UUID) {
	d.store.Unsubscribe(handle)
}

// Snapshot returns a consistent, detached copy of the Config Store,
// suitable for a renderer or metrics exporter.
func (d *DriverStation) Snapshot() config.Snapshot {
	return d.store.Snapshot()
}

// MetricsRegistry returns the Prometheus registry this driver
// station's metrics are exported through.
func (d *DriverStation) MetricsRegistry() *prometheus.Registry {
	return d.metrics.Registry()
}

// HTTPHandler wires pkg/httpapi's router to this driver station for
// embedding into a larger process.
func (d *DriverStation) HTTPHandler() http.Handler {
	return httpapi.New(httpapi.WithDriverStation(d), httpapi.WithLogger(d.l))
}
