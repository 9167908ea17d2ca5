// Package protocol defines the pluggable Protocol Descriptor contract:
// packet layouts, cadences, addresses, and watchdog reset hooks for one
// era of the driver station/robot communication family. Exactly one
// descriptor is active at a time; installing a new one is a
// move-in/teardown operation performed by pkg/ds.
package protocol

import (
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
)

// Era identifies a supported protocol generation.
type Era int

const (
	// Era2014 is the legacy pre-2015 wire format.
	Era2014 Era = 2014
	// Era2015 is the reference encoding specified in full.
	Era2015 Era = 2015
	// Era2016 carries the 2015 wire format forward unchanged.
	Era2016 Era = 2016
	// Era2020 carries the 2015 wire format forward unchanged.
	Era2020 Era = 2020
)

// String implements fmt.Stringer.
func (e Era) String() string {
	switch e {
	case Era2014:
		return "2014"
	case Era2016:
		return "2016"
	case Era2020:
		return "2020"
	default:
		return "2015"
	}
}

// Cadences holds the send interval for each peer task, in
// milliseconds. A value of 0 disables that task entirely: no sends,
// its watchdog never expires, and its comms flag stays false.
type Cadences struct {
	FMSIntervalMS   int
	RadioIntervalMS int
	RobotIntervalMS int
}

// JoystickLimits bounds how much joystick state a descriptor's wire
// format can carry.
type JoystickLimits struct {
	MaxJoysticks int
	MaxAxes      int
	MaxButtons   int
	MaxHats      int
}

// Socket describes one peer's UDP ports. Disabled additionally
// suppresses the underlying bind, beyond whatever a zero interval
// already does for the send side.
type Socket struct {
	Disabled   bool
	InputPort  int
	OutputPort int
}

// SocketSet collects the four peer socket specs a descriptor defines.
type SocketSet struct {
	FMS        Socket
	Radio      Socket
	Robot      Socket
	Netconsole Socket
}

// Descriptor is the capability set one protocol era must implement.
// Constructing a Descriptor should not have side effects; per-instance
// mutable state (the reboot/restart/time latches) lives behind the
// interface, owned by the concrete implementation, and starts clear on
// every install because pkg/ds constructs a fresh instance. Packet
// counters are not descriptor state: they live in config.Store.
type Descriptor interface {
	Era() Era

	FMSAddress(team uint16) string
	RadioAddress(team uint16) string
	RobotAddress(team uint16) string

	// BuildFMSPacket, BuildRadioPacket, and BuildRobotPacket construct
	// the next outgoing datagram for their peer from a consistent
	// Snapshot of Config Store state plus the Joystick Source's
	// current values (joysticks are needed only for the robot packet;
	// implementations that don't use them may ignore the argument).
	BuildFMSPacket(snap config.Snapshot) []byte
	BuildRadioPacket(snap config.Snapshot) []byte
	BuildRobotPacket(snap config.Snapshot, js joystick.Source) []byte

	// ReadFMSPacket, ReadRadioPacket, and ReadRobotPacket parse an
	// inbound datagram and mutate store accordingly. They return an
	// error for malformed ingress; the caller must not feed the
	// corresponding watchdog when an error is returned.
	ReadFMSPacket(data []byte, store *config.Store) error
	ReadRadioPacket(data []byte, store *config.Store) error
	ReadRobotPacket(data []byte, store *config.Store) error

	// ResetFMS, ResetRadio, and ResetRobot are invoked by the matching
	// watchdog on timeout.
	ResetFMS()
	ResetRadio()
	ResetRobot()

	// RequestReboot and RequestRestartCode set latches that bias the
	// next robot packet's request code.
	RequestReboot()
	RequestRestartCode()

	Cadences() Cadences
	JoystickLimits() JoystickLimits
	Sockets() SocketSet
}

// Factory constructs a fresh Descriptor instance. Each call must
// return a descriptor with its own latches, all clear;
// Get() never hands back a shared instance.
type Factory func() Descriptor

var registry = map[Era]Factory{}

// Register adds a Factory for an Era to the package registry. Era
// implementation packages call this from an init function.
func Register(era Era, f Factory) {
	registry[era] = f
}

// Get constructs a fresh Descriptor for era. It returns an error if no
// implementation has registered itself for that era.
func Get(era Era) (Descriptor, error) {
	f, ok := registry[era]
	if !ok {
		return nil, &UnsupportedEraError{Era: era}
	}
	return f(), nil
}

// UnsupportedEraError is returned by Get for an era with no registered
// implementation.
type UnsupportedEraError struct {
	Era Era
}

func (e *UnsupportedEraError) Error() string {
	return "protocol: unsupported era " + e.Era.String()
}

// ParseEra converts a CLI/config string ("2014", "2015", "2016",
// "2020") into an Era. It returns UnsupportedEraError for anything
// else, without consulting the registry — a syntactically valid era
// with no registered Descriptor is reported by Get, not here.
func ParseEra(s string) (Era, error) {
	switch s {
	case "2014":
		return Era2014, nil
	case "2015":
		return Era2015, nil
	case "2016":
		return Era2016, nil
	case "2020":
		return Era2020, nil
	default:
		return 0, &UnsupportedEraError{Era: Era(0)}
	}
}
