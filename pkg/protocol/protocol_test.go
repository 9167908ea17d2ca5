package protocol

import (
	"testing"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
)

type fakeDescriptor struct{ era Era }

func (f *fakeDescriptor) Era() Era                        { return f.era }
func (f *fakeDescriptor) FMSAddress(uint16) string        { return "" }
func (f *fakeDescriptor) RadioAddress(uint16) string      { return "" }
func (f *fakeDescriptor) RobotAddress(uint16) string      { return "" }
func (f *fakeDescriptor) BuildFMSPacket(config.Snapshot) []byte { return nil }
func (f *fakeDescriptor) BuildRadioPacket(config.Snapshot) []byte { return nil }
func (f *fakeDescriptor) BuildRobotPacket(config.Snapshot, joystick.Source) []byte { return nil }
func (f *fakeDescriptor) ReadFMSPacket([]byte, *config.Store) error   { return nil }
func (f *fakeDescriptor) ReadRadioPacket([]byte, *config.Store) error { return nil }
func (f *fakeDescriptor) ReadRobotPacket([]byte, *config.Store) error { return nil }
func (f *fakeDescriptor) ResetFMS()                        {}
func (f *fakeDescriptor) ResetRadio()                      {}
func (f *fakeDescriptor) ResetRobot()                      {}
func (f *fakeDescriptor) RequestReboot()                   {}
func (f *fakeDescriptor) RequestRestartCode()              {}
func (f *fakeDescriptor) Cadences() Cadences               { return Cadences{} }
func (f *fakeDescriptor) JoystickLimits() JoystickLimits   { return JoystickLimits{} }
func (f *fakeDescriptor) Sockets() SocketSet               { return SocketSet{} }

const testEra Era = 9999

func TestRegisterAndGetReturnsFreshInstances(t *testing.T) {
	Register(testEra, func() Descriptor { return &fakeDescriptor{era: testEra} })

	a, err := Get(testEra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Get(testEra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Fatal("expected Get to hand back distinct instances, not a shared one")
	}
}

func TestGetUnregisteredEra(t *testing.T) {
	_, err := Get(Era(123456))
	if err == nil {
		t.Fatal("expected an UnsupportedEraError for an unregistered era")
	}
	if _, ok := err.(*UnsupportedEraError); !ok {
		t.Fatalf("expected *UnsupportedEraError, got %T", err)
	}
}

func TestParseEra(t *testing.T) {
	cases := map[string]Era{"2014": Era2014, "2015": Era2015, "2016": Era2016, "2020": Era2020}
	for s, want := range cases {
		got, err := ParseEra(s)
		if err != nil {
			t.Fatalf("ParseEra(%q) unexpected error: %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseEra(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParseEraUnknown(t *testing.T) {
	_, err := ParseEra("2099")
	if err == nil {
		t.Fatal("expected an error for an unknown era string")
	}
}

func TestEraString(t *testing.T) {
	if Era2014.String() != "2014" {
		t.Fatalf("expected \"2014\", got %q", Era2014.String())
	}
	if Era2015.String() != "2015" {
		t.Fatalf("expected \"2015\", got %q", Era2015.String())
	}
}
