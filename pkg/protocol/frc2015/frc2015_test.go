package frc2015

import (
	"testing"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
)

func TestVoltageCodecIsDeliberatelyAsymmetric(t *testing.T) {
	upper, lower := encodeVoltage(12.5)
	if upper != 12 {
		t.Fatalf("expected integer part 12, got %d", upper)
	}
	if lower != 50 {
		t.Fatalf("expected fractional byte 50 (12.5 * 100 scaled), got %d", lower)
	}

	// The decode side divides by 255, not 100: round-tripping the same
	// bytes through decodeVoltage does NOT reproduce 12.5. This
	// asymmetry is the documented wire contract (SPEC_FULL.md §9), not
	// a bug to fix.
	got := decodeVoltage(upper, lower)
	want := 12.0 + 50.0/255.0
	if got != want {
		t.Fatalf("decodeVoltage(%d,%d) = %v, want %v", upper, lower, got, want)
	}
}

func TestEncodeVoltageClampsNegative(t *testing.T) {
	upper, lower := encodeVoltage(-5)
	if upper != 0 || lower != 0 {
		t.Fatalf("expected negative voltage clamped to 0/0, got %d/%d", upper, lower)
	}
}

func TestStationCodeRoundTrip(t *testing.T) {
	cases := []struct {
		a config.Alliance
		p config.Position
	}{
		{config.AllianceRed, config.Position1},
		{config.AllianceRed, config.Position2},
		{config.AllianceRed, config.Position3},
		{config.AllianceBlue, config.Position1},
		{config.AllianceBlue, config.Position2},
		{config.AllianceBlue, config.Position3},
	}

	for _, c := range cases {
		b := stationCode(c.a, c.p)
		gotA, gotP := stationToAllianceStation(b)
		if gotA != c.a || gotP != c.p {
			t.Fatalf("stationCode(%v,%v)=%d roundtripped to (%v,%v)", c.a, c.p, b, gotA, gotP)
		}
	}
}

func TestBuildFMSPacketShape(t *testing.T) {
	snap := config.Snapshot{
		TeamNumber:   1234,
		Enabled:      true,
		Mode:         config.ControlAutonomous,
		RobotVoltage: 12.5,
		FMSSent:      7,
	}

	pkt := (&Descriptor{}).BuildFMSPacket(snap)
	if len(pkt) != 8 {
		t.Fatalf("expected 8-byte FMS packet, got %d", len(pkt))
	}
	if pkt[0] != 0 || pkt[1] != 7 {
		t.Fatalf("expected counter 7 in bytes 0-1, got %d %d", pkt[0], pkt[1])
	}
	if pkt[4] != 0x04 || pkt[5] != 0xd2 {
		t.Fatalf("expected team number 1234 in bytes 4-5, got %d %d", pkt[4], pkt[5])
	}
	if pkt[3]&bitAutonomous == 0 {
		t.Fatal("expected autonomous bit set in control byte")
	}
	if pkt[3]&bitEnabled == 0 {
		t.Fatal("expected enabled bit set in control byte")
	}
}

func TestReadFMSPacketAppliesControlAndStation(t *testing.T) {
	store := config.New()
	d := New()

	data := make([]byte, 8)
	data[3] = bitEnabled | bitAutonomous
	data[5] = stationBlue2

	if err := d.ReadFMSPacket(data, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.ControlMode() != config.ControlAutonomous {
		t.Fatalf("expected autonomous mode, got %v", store.ControlMode())
	}
	if store.Alliance() != config.AllianceBlue || store.Position() != config.Position2 {
		t.Fatalf("expected blue/2, got %v/%v", store.Alliance(), store.Position())
	}
}

func TestReadFMSPacketTooShort(t *testing.T) {
	d := New()
	if err := d.ReadFMSPacket([]byte{1, 2, 3}, config.New()); err == nil {
		t.Fatal("expected an error for a too-short FMS packet")
	}
}

func TestReadRobotPacketSetsEStopAndDemotesEnabled(t *testing.T) {
	store := config.New()
	store.SetRobotComms(true)
	store.SetRobotHasCode(true)
	store.SetEnabled(true)

	d := New()
	data := make([]byte, 8)
	data[3] = bitEmergencyStop
	data[4] = robotHasCodeBit
	data[5] = 12 // voltage upper
	data[6] = 0  // voltage lower
	data[7] = requestNormal

	if err := d.ReadRobotPacket(data, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !store.EmergencyStopped() {
		t.Fatal("expected e-stop to be set from the robot packet")
	}
	if store.Enabled() {
		t.Fatal("expected enabled to be forced false once e-stopped")
	}
	if got := store.RobotVoltage(); got != 12 {
		t.Fatalf("expected voltage 12, got %v", got)
	}
}

func TestRequestCodeLatchesAndClearsOnResetRobot(t *testing.T) {
	d := New()
	d.RequestReboot()

	if got := d.requestCode(true); got != requestReboot {
		t.Fatalf("expected reboot request code, got %#x", got)
	}

	d.ResetRobot()
	if got := d.requestCode(true); got != requestNormal {
		t.Fatalf("expected ResetRobot to clear the reboot latch, got %#x", got)
	}
}

func TestRequestCodeUnconnectedWithNoRobotComms(t *testing.T) {
	d := New()
	d.RequestReboot()

	if got := d.requestCode(false); got != requestUnconnected {
		t.Fatalf("expected unconnected request code regardless of latches, got %#x", got)
	}
}

func TestBuildRobotPacketSendsTimezoneOnlyWhenRequested(t *testing.T) {
	d := New()
	store := config.New()

	// A robot packet with requestTime set latches sendTimeData.
	data := make([]byte, 8)
	data[7] = requestTime
	if err := d.ReadRobotPacket(data, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := store.Snapshot()
	snap.RobotSent = 0
	out := d.BuildRobotPacket(snap, joystick.NullSource{})
	if len(out) <= 6 {
		t.Fatal("expected a timezone payload appended to the header")
	}
	if out[7] != tagDate {
		t.Fatalf("expected tagDate in the timezone payload, got %#x", out[7])
	}
}

func TestBuildRobotPacketAfterWarmupWithNoJoysticksIsBareHeader(t *testing.T) {
	d := New()
	snap := config.Snapshot{RobotSent: 6}

	out := d.BuildRobotPacket(snap, joystick.NullSource{})
	if len(out) != 6 {
		t.Fatalf("expected bare 6-byte header with no joysticks attached, got %d bytes", len(out))
	}
}
