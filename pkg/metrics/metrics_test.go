package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
)

func TestRefreshSetsGaugesFromSnapshot(t *testing.T) {
	m := New()

	snap := config.Snapshot{
		TeamNumber:   254,
		Enabled:      true,
		EStopped:     false,
		Mode:         config.ControlAutonomous,
		RobotVoltage: 12.5,
		RobotHasCode: true,
		FMSComms:     true,
		RobotComms:   false,
		RobotCPUPct:  42,
	}
	m.Refresh(snap)

	if got := testutil.ToFloat64(m.enabled.WithLabelValues("254")); got != 1 {
		t.Fatalf("expected enabled=1, got %v", got)
	}
	if got := testutil.ToFloat64(m.mode.WithLabelValues("254")); got != float64(config.ControlAutonomous) {
		t.Fatalf("expected mode=%v, got %v", config.ControlAutonomous, got)
	}
	if got := testutil.ToFloat64(m.robotVoltage.WithLabelValues("254")); got != 12.5 {
		t.Fatalf("expected voltage=12.5, got %v", got)
	}
	if got := testutil.ToFloat64(m.peerComms.WithLabelValues("254", "fms")); got != 1 {
		t.Fatalf("expected fms peer comms=1, got %v", got)
	}
	if got := testutil.ToFloat64(m.peerComms.WithLabelValues("254", "robot")); got != 0 {
		t.Fatalf("expected robot peer comms=0, got %v", got)
	}
	if got := testutil.ToFloat64(m.robotCPUPct.WithLabelValues("254")); got != 42 {
		t.Fatalf("expected cpu pct=42, got %v", got)
	}
}

func TestDeleteTeamRemovesAllSeries(t *testing.T) {
	m := New()
	m.Refresh(config.Snapshot{TeamNumber: 1, Enabled: true, FMSComms: true})

	m.DeleteTeam(1)

	if got := testutil.CollectAndCount(m.enabled); got != 0 {
		t.Fatalf("expected 0 enabled series after DeleteTeam, got %d", got)
	}
	if got := testutil.CollectAndCount(m.peerComms); got != 0 {
		t.Fatalf("expected 0 peerComms series after DeleteTeam, got %d", got)
	}
}

func TestDeleteTeamLeavesOtherTeamsAlone(t *testing.T) {
	m := New()
	m.Refresh(config.Snapshot{TeamNumber: 1, Enabled: true})
	m.Refresh(config.Snapshot{TeamNumber: 2, Enabled: true})

	m.DeleteTeam(1)

	if got := testutil.ToFloat64(m.enabled.WithLabelValues("2")); got != 1 {
		t.Fatalf("expected team 2's series to survive, got %v", got)
	}
}
