package metrics

import (
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics binds the registry and the gauges one Driver Station
// process exports. Every gauge is labeled by team so one registry can
// back several DriverStation instances sharing a process, mirroring
// how the teacher's per-team GaugeVecs let one registry serve a whole
// field of robots.
type Metrics struct {
	l hclog.Logger

	r *prometheus.Registry

	enabled      *prometheus.GaugeVec
	estopped     *prometheus.GaugeVec
	mode         *prometheus.GaugeVec
	robotVoltage *prometheus.GaugeVec
	robotHasCode *prometheus.GaugeVec

	peerComms *prometheus.GaugeVec

	robotCPUPct  *prometheus.GaugeVec
	robotRAMPct  *prometheus.GaugeVec
	robotDiskPct *prometheus.GaugeVec
	robotCANPct  *prometheus.GaugeVec

	fmsSent     *prometheus.GaugeVec
	robotSent   *prometheus.GaugeVec
	protocolEra *prometheus.GaugeVec
}

// Option configures a Metrics instance at construction time.
type Option func(*Metrics)
