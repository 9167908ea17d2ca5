package httpapi

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
)

// Controller is the subset of *ds.DriverStation the HTTP API drives.
// It is expressed as an interface, not a direct import of pkg/ds, so
// that pkg/ds can in turn expose an HTTPHandler() without the two
// packages import-cycling each other.
type Controller interface {
	Snapshot() config.Snapshot

	SetTeamNumber(uint16)
	SetAlliance(config.Alliance)
	SetPosition(config.Position)
	SetControlMode(config.ControlMode)
	SetEnabled(bool)

	RequestReboot()
	RequestRestartCode()
	EmergencyStop()
	ClearEmergencyStop()
	SetProtocol(protocol.Era) error

	Subscribe(config.Topic, config.Callback) uuid.UUID
	Unsubscribe(uuid.UUID)

	MetricsRegistry() *prometheus.Registry
}
