package ds

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
)

func TestPublicAPIMutatesConfigStore(t *testing.T) {
	store := config.New()
	d := New(WithConfig(store), WithProtocol(protocol.Era2015))
	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	defer d.Stop()

	d.SetTeamNumber(1114)
	d.SetAlliance(config.AllianceBlue)
	d.SetPosition(config.Position3)
	d.SwitchToAutonomous()

	snap := d.Snapshot()
	if snap.TeamNumber != 1114 || snap.Alliance != config.AllianceBlue || snap.Position != config.Position3 {
		t.Fatalf("unexpected snapshot after Public API calls: %+v", snap)
	}
	if snap.Mode != config.ControlAutonomous {
		t.Fatalf("expected autonomous mode, got %v", snap.Mode)
	}

	d.EmergencyStop()
	if !d.Snapshot().EStopped {
		t.Fatal("expected EmergencyStop to set the sticky flag")
	}
	d.ClearEmergencyStop()
	if d.Snapshot().EStopped {
		t.Fatal("expected ClearEmergencyStop to clear the flag")
	}
}

func TestSubscribeUnsubscribeThroughPublicAPI(t *testing.T) {
	store := config.New()
	d := New(WithConfig(store), WithProtocol(protocol.Era2015))
	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	defer d.Stop()

	calls := 0
	h := d.Subscribe(config.TopicAllianceStation, func(config.Event) { calls++ })
	d.SetTeamNumber(254)
	if calls == 0 {
		t.Fatal("expected the subscription to fire on a team number change")
	}

	d.Unsubscribe(h)
	before := calls
	d.SetTeamNumber(255)
	if calls != before {
		t.Fatal("expected no further calls after Unsubscribe")
	}
}

func TestHTTPHandlerServesStatus(t *testing.T) {
	store := config.New()
	d := New(WithConfig(store), WithProtocol(protocol.Era2015))
	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	defer d.Stop()

	d.SetTeamNumber(4774)

	rr := httptest.NewRecorder()
	d.HTTPHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api/status, got %d", rr.Code)
	}
}
