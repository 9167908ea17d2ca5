package frc2020

import (
	"testing"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
)

func TestEraIdentityOverridesEmbeddedDescriptor(t *testing.T) {
	d := New()
	if d.Era() != protocol.Era2020 {
		t.Fatalf("expected Era2020, got %v", d.Era())
	}
}

func TestRegisteredInRegistry(t *testing.T) {
	d, err := protocol.Get(protocol.Era2020)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Era() != protocol.Era2020 {
		t.Fatalf("expected registry to hand back an Era2020 descriptor, got %v", d.Era())
	}
}
