// Package frc2015 implements the 2015-era Protocol Descriptor: the
// reference wire encoding specified in full by SPEC_FULL.md §4.2. Every
// byte offset, control/request/station code, and the voltage codec
// below is grounded directly on
// _examples/original_source/src/protocols/frc_2015.c and carried over
// byte-for-byte.
package frc2015

import (
	"fmt"
	"sync"
	"time"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/util"
)

// Control code bits, shared by the FMS-bound and robot-bound control
// bytes (§4.2.3).
const (
	bitTest            = 0x01
	bitAutonomous      = 0x02
	bitEnabled         = 0x04
	bitFMSAttached     = 0x08
	bitEmergencyStop   = 0x80
	bitFMSRobotPing    = 0x08
	bitFMSRadioPing    = 0x10
	bitFMSRobotComms   = 0x20
	fmsDSVersion       = 0x00
	tagGeneral         = 0x01
	tagJoystick        = 0x0c
	tagDate            = 0x0f
	tagTimezone        = 0x10
	requestNormal      = 0x80
	requestUnconnected = 0x00
	requestReboot      = 0x08
	requestRestart     = 0x04
	requestTime        = 0x01
	robotHasCodeBit    = 0x20

	stationRed1  = 0x00
	stationRed2  = 0x01
	stationRed3  = 0x02
	stationBlue1 = 0x03
	stationBlue2 = 0x04
	stationBlue3 = 0x05

	rtagCAN  = 0x0e
	rtagCPU  = 0x05
	rtagRAM  = 0x06
	rtagDisk = 0x04
)

func init() {
	protocol.Register(protocol.Era2015, func() protocol.Descriptor { return New() })
}

// Descriptor implements protocol.Descriptor for the 2015 era. Its
// latches (reboot, restart-code, send-time-data) live here — on the
// descriptor instance, not in process globals — per SPEC_FULL.md §9's
// resolution of the source's module-level statics. Packet counters
// are kept in config.Store and reset by pkg/ds on every protocol swap.
type Descriptor struct {
	mu sync.Mutex

	reboot       bool
	restartCode  bool
	sendTimeData bool
}

// New returns a fresh 2015-era descriptor with all latches clear.
func New() *Descriptor {
	return &Descriptor{}
}

// Era implements protocol.Descriptor.
func (d *Descriptor) Era() protocol.Era { return protocol.Era2015 }

// FMSAddress implements protocol.Descriptor. The FMS address is
// unknown in advance; it is assigned by the transport on first FMS
// ingress (§6), so the descriptor reports an empty host.
func (d *Descriptor) FMSAddress(uint16) string { return "" }

// RadioAddress implements protocol.Descriptor: the 2015 control
// system assigns the radio IP at 10.<te>.<am>.1.
func (d *Descriptor) RadioAddress(team uint16) string {
	te, am := util.TeamOctets(team)
	return fmt.Sprintf("10.%d.%d.1", te, am)
}

// RobotAddress implements protocol.Descriptor: the 2015 control
// system assigns the robot address at roboRIO-TEAM.local.
func (d *Descriptor) RobotAddress(team uint16) string {
	return fmt.Sprintf("roboRIO-%d.local", team)
}

// Cadences implements protocol.Descriptor.
func (d *Descriptor) Cadences() protocol.Cadences {
	return protocol.Cadences{
		FMSIntervalMS:   500,
		RadioIntervalMS: 0,
		RobotIntervalMS: 20,
	}
}

// JoystickLimits implements protocol.Descriptor.
func (d *Descriptor) JoystickLimits() protocol.JoystickLimits {
	return protocol.JoystickLimits{
		MaxJoysticks: 6,
		MaxAxes:      6,
		MaxButtons:   10,
		MaxHats:      1,
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

// ResetFMS implements protocol.Descriptor: the FMS link carries no
// latched state.
func (d *Descriptor) ResetFMS() {}

// ResetRadio implements protocol.Descriptor: the radio link carries no
// latched state in this era.
func (d *Descriptor) ResetRadio() {}

// ResetRobot implements protocol.Descriptor: clears every latch owned
// by the robot link, matching the source's reset_robot().
func (d *Descriptor) ResetRobot() {
	d.mu.Lock()
	d.reboot = false
	d.restartCode = false
	d.sendTimeData = false
	d.mu.Unlock()
}

// fmsControlCode builds the control byte sent to the FMS (§4.2.3): it
// carries the robot's mode/enable/e-stop state plus link-ping bits the
// robot-bound control byte does not need.
func fmsControlCode(snap config.Snapshot) byte {
	var code byte
	code |= modeBits(snap.Mode)
	if snap.EStopped {
		code |= bitEmergencyStop
	}
	if snap.Enabled {
		code |= bitEnabled
	}
	if snap.RadioComms {
		code |= bitFMSRadioPing
	}
	if snap.RobotComms {
		code |= bitFMSRobotComms
		code |= bitFMSRobotPing
	}
	return code
}

// robotControlCode builds the control byte sent to the robot.
func robotControlCode(snap config.Snapshot) byte {
	var code byte
	code |= modeBits(snap.Mode)
	if snap.FMSComms {
		code |= bitFMSAttached
	}
	if snap.EStopped {
		code |= bitEmergencyStop
	}
	if snap.Enabled {
		code |= bitEnabled
	}
	return code
}

func modeBits(m config.ControlMode) byte {
	switch m {
	case config.ControlTest:
		return bitTest
	case config.ControlAutonomous:
		return bitAutonomous
	default:
		return 0 // teleoperated, absence of other bits
	}
}

// requestCode builds the robot-bound request byte (§4.2.4).
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

// stationCode builds the team station byte (§4.2.5).
func stationCode(a config.Alliance, p config.Position) byte {
	switch {
	case a == config.AllianceRed && p == config.Position1:
		return stationRed1
	case a == config.AllianceRed && p == config.Position2:
		return stationRed2
	case a == config.AllianceRed && p == config.Position3:
		return stationRed3
	case a == config.AllianceBlue && p == config.Position1:
		return stationBlue1
	case a == config.AllianceBlue && p == config.Position2:
		return stationBlue2
	case a == config.AllianceBlue && p == config.Position3:
		return stationBlue3
	default:
		return stationRed1
	}
}

// stationToAllianceStation reverse-maps a station byte, used when
// parsing FMS ingress byte[5].
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

// encodeVoltage implements the §4.2.6 codec exactly: upper = floor(v),
// lower = round((v - floor(v)) * 100). This is deliberately asymmetric
// with decodeVoltage's /255 — SPEC_FULL.md §9 requires preserving that
// asymmetry as the wire contract with existing robot firmware.
func encodeVoltage(v float64) (upper, lower byte) {
	if v < 0 {
		v = 0
	}
	intPart := int(v)
	frac := v - float64(intPart)
	u := intPart
	l := int(frac*100 + 0.5)
	if u > 255 {
		u = 255
	}
	if l > 255 {
		l = 255
	}
	return byte(u), byte(l)
}

// decodeVoltage implements the §4.2.6 codec: v = upper + lower/255.0.
func decodeVoltage(upper, lower byte) float64 {
	return float64(upper) + float64(lower)/255.0
}

// BuildFMSPacket implements protocol.Descriptor (§4.2.1): a fixed
// 8-byte datagram.
func (d *Descriptor) BuildFMSPacket(snap config.Snapshot) []byte {
	data := make([]byte, 8)

	count := snap.FMSSent
	data[0] = byte(count >> 8)
	data[1] = byte(count)

	data[2] = fmsDSVersion
	data[3] = fmsControlCode(snap)

	data[4] = byte(snap.TeamNumber >> 8)
	data[5] = byte(snap.TeamNumber)

	upper, lower := encodeVoltage(snap.RobotVoltage)
	data[6] = upper
	data[7] = lower

	return data
}

// BuildRadioPacket implements protocol.Descriptor (§4.2.8): this era
// does not talk to the radio at the application layer, so outgoing
// radio packets are empty.
func (d *Descriptor) BuildRadioPacket(config.Snapshot) []byte {
	return nil
}

// BuildRobotPacket implements protocol.Descriptor (§4.2.2). The
// payload-selection rule, timezone block, and joystick block are all
// exactly as specified; see joystickblock.go and timezone.go in this
// package for their construction.
func (d *Descriptor) BuildRobotPacket(snap config.Snapshot, js joystick.Source) []byte {
	header := make([]byte, 6)

	count := snap.RobotSent
	header[0] = byte(count >> 8)
	header[1] = byte(count)
	header[2] = tagGeneral
	header[3] = robotControlCode(snap)
	header[4] = d.requestCode(snap.RobotComms)
	header[5] = stationCode(snap.Alliance, snap.Position)

	d.mu.Lock()
	wantTime := d.sendTimeData
	d.mu.Unlock()

	var payload []byte
	switch {
	case wantTime:
		payload = buildTimezoneBlock()
	case snap.RobotSent > 5:
		payload = buildJoystickBlocks(js)
	}

	return append(header, payload...)
}

// ReadFMSPacket implements protocol.Descriptor (§4.2.3's decode
// semantics, applied to byte[3] control and byte[5] station).
func (d *Descriptor) ReadFMSPacket(data []byte, store *config.Store) error {
	if len(data) < 6 {
		return fmt.Errorf("frc2015: FMS packet too short: %d bytes", len(data))
	}

	control := data[3]
	station := data[5]

	store.SetEnabled(control&bitEnabled != 0)

	// §4.2.3: decode order is TELEOP (bit value 0x00, so this check is
	// never taken — the absence of the other two bits is the default),
	// then AUTONOMOUS, then TEST.
	switch {
	case control&bitAutonomous != 0:
		store.SetControlMode(config.ControlAutonomous)
	case control&bitTest != 0:
		store.SetControlMode(config.ControlTest)
	default:
		store.SetControlMode(config.ControlTeleoperated)
	}

	alliance, position := stationToAllianceStation(station)
	store.SetAlliance(alliance)
	store.SetPosition(position)

	return nil
}

// ReadRadioPacket implements protocol.Descriptor: this era does not
// interpret radio ingress at all (§4.2.8).
func (d *Descriptor) ReadRadioPacket([]byte, *config.Store) error {
	return fmt.Errorf("frc2015: radio ingress is not interpreted in this era")
}

// ReadRobotPacket implements protocol.Descriptor (§4.2.7).
func (d *Descriptor) ReadRobotPacket(data []byte, store *config.Store) error {
	if len(data) < 8 {
		return fmt.Errorf("frc2015: robot packet too short: %d bytes", len(data))
	}

	control := data[3]
	status := data[4]
	upper := data[5]
	lower := data[6]
	request := data[7]

	store.SetRobotHasCode(status&robotHasCodeBit != 0)
	store.SetEmergencyStopped(control&bitEmergencyStop != 0)

	d.mu.Lock()
	d.sendTimeData = request == requestTime
	d.mu.Unlock()

	store.SetRobotVoltage(decodeVoltage(upper, lower))

	if len(data) > 9 {
		readExtended(data, 8, store)
	}

	return nil
}

// readExtended parses the extended telemetry block described in
// §4.2.7's tag table.
func readExtended(data []byte, offset int, store *config.Store) {
	if offset+1 >= len(data) {
		return
	}
	tag := data[offset+1]

	switch tag {
	case rtagCAN:
		if offset+10 < len(data) {
			store.SetRobotCANPct(int(data[offset+10]))
		}
	case rtagCPU:
		if offset+3 < len(data) {
			store.SetRobotCPUPct(int(data[offset+3]))
		}
	case rtagRAM:
		if offset+4 < len(data) {
			store.SetRobotRAMPct(int(data[offset+4]))
		}
	case rtagDisk:
		if offset+4 < len(data) {
			store.SetRobotDiskPct(int(data[offset+4]))
		}
	}
}

// now is overridable in tests so the timezone block's date/time bytes
// are deterministic.
var now = time.Now
