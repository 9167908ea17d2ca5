// Package frc2014 implements a standalone, coarser legacy Protocol
// Descriptor. SPEC_FULL.md names 2014 as a distinct era without
// specifying its wire format; original_source/ only declares its
// constructor (DS_GetProtocolFRC_2014) without a body, so this
// implementation is modeled, not transcribed: fixed-width packets,
// single-byte battery voltage, and no extended telemetry tags, in
// contrast to frc2015's self-describing variable-length blocks.
package frc2014

import (
	"fmt"
	"sync"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/util"
)

const (
	bitTest          = 0x01
	bitAutonomous    = 0x02
	bitEnabled       = 0x04
	bitFMSAttached   = 0x08
	bitEmergencyStop = 0x80
	robotHasCodeBit  = 0x20

	requestNormal      = 0x10
	requestUnconnected = 0x00
	requestReboot      = 0x08
	requestRestart     = 0x04

	stationRed1  = 0x00
	stationRed2  = 0x01
	stationRed3  = 0x02
	stationBlue1 = 0x03
	stationBlue2 = 0x04
	stationBlue3 = 0x05

	maxJoysticks = 4
	maxAxes      = 6
	maxButtons   = 12
)

func init() {
	protocol.Register(protocol.Era2014, func() protocol.Descriptor { return New() })
}

// Descriptor implements protocol.Descriptor for the legacy 2014 era.
type Descriptor struct {
	mu          sync.Mutex
	reboot      bool
	restartCode bool
}

// New returns a fresh 2014-era descriptor with all latches clear.
func New() *Descriptor {
	return &Descriptor{}
}

// Era implements protocol.Descriptor.
func (d *Descriptor) Era() protocol.Era { return protocol.Era2014 }

// FMSAddress implements protocol.Descriptor.
func (d *Descriptor) FMSAddress(uint16) string { return "" }

// RadioAddress implements protocol.Descriptor.
func (d *Descriptor) RadioAddress(team uint16) string {
	te, am := util.TeamOctets(team)
	return fmt.Sprintf("10.%d.%d.1", te, am)
}

// RobotAddress implements protocol.Descriptor.
func (d *Descriptor) RobotAddress(team uint16) string {
	te, am := util.TeamOctets(team)
	return fmt.Sprintf("10.%d.%d.2", te, am)
}

// Cadences implements protocol.Descriptor.
func (d *Descriptor) Cadences() protocol.Cadences {
	return protocol.Cadences{
		FMSIntervalMS:   500,
		RadioIntervalMS: 0,
		RobotIntervalMS: 20,
	}
}

// JoystickLimits implements protocol.Descriptor: fewer joysticks, axes,
// and buttons than frc2015, and no hat support at all.
func (d *Descriptor) JoystickLimits() protocol.JoystickLimits {
	return protocol.JoystickLimits{
		MaxJoysticks: maxJoysticks,
		MaxAxes:      maxAxes,
		MaxButtons:   maxButtons,
		MaxHats:      0,
	}
}

// Sockets implements protocol.Descriptor.
func (d *Descriptor) Sockets() protocol.SocketSet {
	return protocol.SocketSet{
		FMS:        protocol.Socket{InputPort: 1120, OutputPort: 1160},
		Radio:      protocol.Socket{Disabled: true},
		Robot:      protocol.Socket{InputPort: 1150, OutputPort: 1110},
		Netconsole: protocol.Socket{InputPort: 6666, OutputPort: 6668},
	}
}

// RequestReboot implements protocol.Descriptor.
func (d *Descriptor) RequestReboot() {
	d.mu.Lock()
	d.reboot = true
	d.mu.Unlock()
}

// RequestRestartCode implements protocol.Descriptor.
func (d *Descriptor) RequestRestartCode() {
	d.mu.Lock()
	d.restartCode = true
	d.mu.Unlock()
}

// ResetFMS implements protocol.Descriptor: no latched FMS state.
func (d *Descriptor) ResetFMS() {}

// ResetRadio implements protocol.Descriptor: no latched radio state.
func (d *Descriptor) ResetRadio() {}

// ResetRobot implements protocol.Descriptor.
func (d *Descriptor) ResetRobot() {
	d.mu.Lock()
	d.reboot = false
	d.restartCode = false
	d.mu.Unlock()
}

func modeBits(m config.ControlMode) byte {
	switch m {
	case config.ControlTest:
		return bitTest
	case config.ControlAutonomous:
		return bitAutonomous
	default:
		return 0
	}
}

func controlCode(snap config.Snapshot, withFMSAttached bool) byte {
	var code byte
	code |= modeBits(snap.Mode)
	if snap.EStopped {
		code |= bitEmergencyStop
	}
	if snap.Enabled {
		code |= bitEnabled
	}
	if withFMSAttached && snap.FMSComms {
		code |= bitFMSAttached
	}
	return code
}

func (d *Descriptor) requestCode(robotComms bool) byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !robotComms {
		return requestUnconnected
	}
	if d.reboot {
		return requestReboot
	}
	if d.restartCode {
		return requestRestart
	}
	return requestNormal
}

func stationCode(a config.Alliance, p config.Position) byte {
	switch {
	case a == config.AllianceBlue && p == config.Position1:
		return stationBlue1
	case a == config.AllianceBlue && p == config.Position2:
		return stationBlue2
	case a == config.AllianceBlue && p == config.Position3:
		return stationBlue3
	case p == config.Position2:
		return stationRed2
	case p == config.Position3:
		return stationRed3
	default:
		return stationRed1
	}
}

func stationToAllianceStation(b byte) (config.Alliance, config.Position) {
	switch b {
	case stationBlue1:
		return config.AllianceBlue, config.Position1
	case stationBlue2:
		return config.AllianceBlue, config.Position2
	case stationBlue3:
		return config.AllianceBlue, config.Position3
	case stationRed2:
		return config.AllianceRed, config.Position2
	case stationRed3:
		return config.AllianceRed, config.Position3
	default:
		return config.AllianceRed, config.Position1
	}
}

// BuildFMSPacket implements protocol.Descriptor: a fixed 6-byte
// datagram, two bytes shorter than frc2015's since it carries no DS
// version byte and battery voltage is a single coarse byte rather
// than a two-byte fractional codec.
func (d *Descriptor) BuildFMSPacket(snap config.Snapshot) []byte {
	data := make([]byte, 6)

	count := snap.FMSSent
	data[0] = byte(count >> 8)
	data[1] = byte(count)
	data[2] = controlCode(snap, false)
	data[3] = byte(snap.TeamNumber >> 8)
	data[4] = byte(snap.TeamNumber)
	data[5] = byte(snap.RobotVoltage + 0.5)

	return data
}

// BuildRadioPacket implements protocol.Descriptor: this era does not
// talk to the radio at the application layer either.
func (d *Descriptor) BuildRadioPacket(config.Snapshot) []byte {
	return nil
}

// BuildRobotPacket implements protocol.Descriptor. Unlike frc2015's
// self-describing variable blocks, every joystick occupies a fixed-
// width slot: maxAxes axis bytes plus a 2-byte button mask, with no
// length prefix and no hat data.
func (d *Descriptor) BuildRobotPacket(snap config.Snapshot, js joystick.Source) []byte {
	header := make([]byte, 5)

	count := snap.RobotSent
	header[0] = byte(count >> 8)
	header[1] = byte(count)
	header[2] = controlCode(snap, true)
	header[3] = d.requestCode(snap.RobotComms)
	header[4] = stationCode(snap.Alliance, snap.Position)

	n := js.Count()
	if n > maxJoysticks {
		n = maxJoysticks
	}

	payload := make([]byte, 0, n*(maxAxes+2))
	for i := 0; i < n; i++ {
		axes := js.Axes(i)
		for a := 0; a < maxAxes; a++ {
			var v float64
			if a < len(axes) {
				v = axes[a]
			}
			payload = append(payload, encodeAxis(v))
		}
		buttons := js.Buttons(i)
		payload = append(payload, byte(buttons>>8), byte(buttons))
	}

	return append(header, payload...)
}

func encodeAxis(v float64) byte {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return byte(int8(v * 127))
}

// ReadFMSPacket implements protocol.Descriptor.
func (d *Descriptor) ReadFMSPacket(data []byte, store *config.Store) error {
	if len(data) < 4 {
		return fmt.Errorf("frc2014: FMS packet too short: %d bytes", len(data))
	}

	control := data[2]
	store.SetEnabled(control&bitEnabled != 0)

	switch {
	case control&bitAutonomous != 0:
		store.SetControlMode(config.ControlAutonomous)
	case control&bitTest != 0:
		store.SetControlMode(config.ControlTest)
	default:
		store.SetControlMode(config.ControlTeleoperated)
	}

	if len(data) >= 6 {
		alliance, position := stationToAllianceStation(data[5])
		store.SetAlliance(alliance)
		store.SetPosition(position)
	}

	return nil
}

// ReadRadioPacket implements protocol.Descriptor: radio ingress is not
// interpreted in this era either.
func (d *Descriptor) ReadRadioPacket([]byte, *config.Store) error {
	return fmt.Errorf("frc2014: radio ingress is not interpreted in this era")
}

// ReadRobotPacket implements protocol.Descriptor. This coarser era
// carries no extended telemetry tags at all: CPU/RAM/disk/CAN usage
// are not reported.
func (d *Descriptor) ReadRobotPacket(data []byte, store *config.Store) error {
	if len(data) < 4 {
		return fmt.Errorf("frc2014: robot packet too short: %d bytes", len(data))
	}

	control := data[2]
	status := data[3]

	store.SetRobotHasCode(status&robotHasCodeBit != 0)
	store.SetEmergencyStopped(control&bitEmergencyStop != 0)

	if len(data) >= 5 {
		store.SetRobotVoltage(float64(data[4]))
	}

	return nil
}
