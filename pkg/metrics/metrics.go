package metrics

import (
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
)

// New returns an initialized instance of the metrics system, with
// every gauge registered against a fresh registry.
func New(opts ...Option) *Metrics {
	x := &Metrics{
		l: hclog.NewNullLogger(),
		r: prometheus.NewRegistry(),

		enabled: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Name:      "enabled",
			Help:      "Whether the robot is currently enabled.",
		}, []string{"team"}),

		estopped: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Name:      "emergency_stopped",
			Help:      "Whether the sticky emergency-stop flag is set.",
		}, []string{"team"}),

		mode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Name:      "control_mode",
			Help:      "Active control mode: 0=teleoperated, 1=autonomous, 2=test.",
		}, []string{"team"}),

		robotVoltage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Subsystem: "robot",
			Name:      "voltage",
			Help:      "Robot battery voltage as last reported by the robot peer.",
		}, []string{"team"}),

		robotHasCode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Subsystem: "robot",
			Name:      "has_code",
			Help:      "Whether the robot last reported user code running.",
		}, []string{"team"}),

		peerComms: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Name:      "peer_comms",
			Help:      "Whether a peer's comms flag is currently up.",
		}, []string{"team", "peer"}),

		robotCPUPct: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Subsystem: "robot",
			Name:      "cpu_pct",
			Help:      "Robot-reported CPU utilization percentage.",
		}, []string{"team"}),

		robotRAMPct: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Subsystem: "robot",
			Name:      "ram_pct",
			Help:      "Robot-reported RAM utilization percentage.",
		}, []string{"team"}),

		robotDiskPct: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Subsystem: "robot",
			Name:      "disk_pct",
			Help:      "Robot-reported disk utilization percentage.",
		}, []string{"team"}),

		robotCANPct: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Subsystem: "robot",
			Name:      "can_pct",
			Help:      "Robot-reported CAN bus utilization percentage.",
		}, []string{"team"}),

		fmsSent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Subsystem: "fms",
			Name:      "packets_sent",
			Help:      "Count of FMS packets sent since the last protocol swap.",
		}, []string{"team"}),

		robotSent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Subsystem: "robot",
			Name:      "packets_sent",
			Help:      "Count of robot packets sent since the last protocol swap.",
		}, []string{"team"}),

		protocolEra: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ds",
			Name:      "protocol_era",
			Help:      "Active protocol era identifier.",
		}, []string{"team"}),
	}

	x.r.MustRegister(
		x.enabled,
		x.estopped,
		x.mode,
		x.robotVoltage,
		x.robotHasCode,
		x.peerComms,
		x.robotCPUPct,
		x.robotRAMPct,
		x.robotDiskPct,
		x.robotCANPct,
		x.fmsSent,
		x.robotSent,
		x.protocolEra,
	)

	for _, o := range opts {
		o(x)
	}

	return x
}

// Registry provides access to the registry that this instance
// manages, for mounting under promhttp.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.r
}

// Refresh sets every gauge from a Config Store snapshot. Call it on a
// timer, or from a subscription on every topic, to keep the exported
// series current.
func (m *Metrics) Refresh(snap config.Snapshot) {
	team := strconv.Itoa(int(snap.TeamNumber))

	m.enabled.WithLabelValues(team).Set(boolToFloat(snap.Enabled))
	m.estopped.WithLabelValues(team).Set(boolToFloat(snap.EStopped))
	m.mode.WithLabelValues(team).Set(float64(snap.Mode))
	m.robotVoltage.WithLabelValues(team).Set(snap.RobotVoltage)
	m.robotHasCode.WithLabelValues(team).Set(boolToFloat(snap.RobotHasCode))

	m.peerComms.WithLabelValues(team, "fms").Set(boolToFloat(snap.FMSComms))
	m.peerComms.WithLabelValues(team, "radio").Set(boolToFloat(snap.RadioComms))
	m.peerComms.WithLabelValues(team, "robot").Set(boolToFloat(snap.RobotComms))

	m.robotCPUPct.WithLabelValues(team).Set(float64(snap.RobotCPUPct))
	m.robotRAMPct.WithLabelValues(team).Set(float64(snap.RobotRAMPct))
	m.robotDiskPct.WithLabelValues(team).Set(float64(snap.RobotDiskPct))
	m.robotCANPct.WithLabelValues(team).Set(float64(snap.RobotCANPct))

	m.fmsSent.WithLabelValues(team).Set(float64(snap.FMSSent))
	m.robotSent.WithLabelValues(team).Set(float64(snap.RobotSent))
	m.protocolEra.WithLabelValues(team).Set(float64(snap.ProtocolEra))
}

// DeleteTeam removes every series for a team, for when a Driver
// Station is torn down and should no longer appear in scrapes.
func (m *Metrics) DeleteTeam(teamNumber uint16) {
	team := strconv.Itoa(int(teamNumber))
	l := prometheus.Labels{"team": team}

	m.enabled.Delete(l)
	m.estopped.Delete(l)
	m.mode.Delete(l)
	m.robotVoltage.Delete(l)
	m.robotHasCode.Delete(l)
	m.robotCPUPct.Delete(l)
	m.robotRAMPct.Delete(l)
	m.robotDiskPct.Delete(l)
	m.robotCANPct.Delete(l)
	m.fmsSent.Delete(l)
	m.robotSent.Delete(l)
	m.protocolEra.Delete(l)

	m.peerComms.DeletePartialMatch(l)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
