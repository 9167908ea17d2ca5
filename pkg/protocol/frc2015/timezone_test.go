package frc2015

import (
	"testing"
	"time"
)

func TestBuildTimezoneBlockSizedUpFront(t *testing.T) {
	fixed := time.Date(2020, time.March, 15, 1, 2, 3, 0, time.UTC)
	old := now
	now = func() time.Time { return fixed }
	defer func() { now = old }()

	block := buildTimezoneBlock()
	zone, _ := fixed.Zone()

	if len(block) != 12+len(zone) {
		t.Fatalf("expected block length 12+%d=%d, got %d", len(zone), 12+len(zone), len(block))
	}
	if block[1] != tagDate {
		t.Fatalf("expected tagDate at offset 1, got %#x", block[1])
	}
	if block[11] != tagTimezone {
		t.Fatalf("expected tagTimezone at offset 11, got %#x", block[11])
	}
	if int(block[4]) != fixed.Second() || int(block[5]) != fixed.Minute() || int(block[6]) != fixed.Hour() {
		t.Fatalf("unexpected time bytes: %v", block[4:7])
	}
	if int(block[10]) != len(zone) {
		t.Fatalf("expected zone-length byte %d, got %d", len(zone), block[10])
	}
	for i := 0; i < len(zone); i++ {
		if block[12+i] != zone[i] {
			t.Fatalf("expected zone name copied byte-for-byte at offset %d", i)
		}
	}
}
