package config

// This file implements the per-field getter/setter contract described
// in SPEC_FULL.md §4.1: each setter acquires exclusive access, compares
// to the previous value, stores the new value, and — if the value
// actually changed — publishes an Event after releasing the lock.

// TeamNumber returns the configured team number.
func (s *Store) TeamNumber() uint16 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teamNumber
}

// SetTeamNumber sets the team number. There is no further validation
// here; a 16-bit field already bounds the value to a legal range.
func (s *Store) SetTeamNumber(n uint16) {
	s.mu.Lock()
	changed := s.teamNumber != n
	s.teamNumber = n
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicAllianceStation, Field: "team_number", Value: n})
	}
}

// Alliance returns the configured alliance.
func (s *Store) Alliance() Alliance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alliance
}

// SetAlliance sets the alliance.
func (s *Store) SetAlliance(a Alliance) {
	s.mu.Lock()
	changed := s.alliance != a
	s.alliance = a
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicAllianceStation, Field: "alliance", Value: a})
	}
}

// Position returns the configured station position.
func (s *Store) Position() Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

// SetPosition sets the station position.
func (s *Store) SetPosition(p Position) {
	s.mu.Lock()
	changed := s.position != p
	s.position = p
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicAllianceStation, Field: "position", Value: p})
	}
}

// ControlMode returns the active control mode.
func (s *Store) ControlMode() ControlMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetControlMode sets the active control mode.
func (s *Store) SetControlMode(m ControlMode) {
	s.mu.Lock()
	changed := s.mode != m
	s.mode = m
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicMode, Field: "control_mode", Value: m})
	}
}

// Enabled reports whether the robot is currently enabled.
func (s *Store) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// SetEnabled requests a change to the enabled flag. Per invariant I1, a
// request to enable is coerced to false unless robot comms are up, the
// robot reports code present, and the robot is not e-stopped. A refused
// enable publishes an advisory message on TopicStatusText in addition
// to the (unchanged-to-false) TopicEnabled event — this is the contract
// the UI relies on to explain why the enable button did nothing.
func (s *Store) SetEnabled(want bool) {
	s.mu.Lock()
	grant := want
	if want && !(s.robotComms && s.robotHasCode && !s.estopped) {
		grant = false
	}
	changed := s.enabled != grant
	s.enabled = grant
	s.mu.Unlock()

	if want && !grant {
		s.publish(Event{Topic: TopicStatusText, Value: "cannot enable: robot not connected, code not running, or emergency stopped"})
	}
	if changed || (want && !grant) {
		s.publish(Event{Topic: TopicEnabled, Field: "enabled", Value: grant})
	}
}

// EmergencyStopped reports the sticky e-stop flag.
func (s *Store) EmergencyStopped() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.estopped
}

// SetEmergencyStopped sets the e-stop flag. Per invariant I2 it is
// sticky: setting true always succeeds, and once true it remains true
// until ClearEmergencyStop is called explicitly. Setting true also
// forces enabled false, since I1 can no longer be satisfied.
func (s *Store) SetEmergencyStopped(v bool) {
	if !v {
		// Sticky: a plain "set false" from either side does not clear
		// it. Only ClearEmergencyStop may do that.
		return
	}

	s.mu.Lock()
	changed := !s.estopped
	s.estopped = true
	wasEnabled := s.enabled
	s.enabled = false
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicEStop, Field: "emergency_stopped", Value: true})
	}
	if wasEnabled {
		s.publish(Event{Topic: TopicEnabled, Field: "enabled", Value: false})
	}
}

// ClearEmergencyStop is the only operation that can un-stick the e-stop
// flag (invariant I2).
func (s *Store) ClearEmergencyStop() {
	s.mu.Lock()
	changed := s.estopped
	s.estopped = false
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicEStop, Field: "emergency_stopped", Value: false})
	}
}

// RobotVoltage returns the most recently reported battery voltage,
// rounded to two decimals per invariant I3.
func (s *Store) RobotVoltage() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return roundVoltage(s.robotVoltage)
}

// SetRobotVoltage records a voltage reading from robot ingress.
func (s *Store) SetRobotVoltage(v float64) {
	s.mu.Lock()
	changed := s.robotVoltage != v
	s.robotVoltage = v
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicVoltage, Field: "robot_voltage", Value: roundVoltage(v)})
	}
}

// RobotHasCode reports whether the robot last reported user code
// running.
func (s *Store) RobotHasCode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.robotHasCode
}

// SetRobotHasCode records the robot-code-present flag from robot
// ingress. If code disappears while enabled, invariant I1 is no longer
// satisfiable, so enabled is coerced false.
func (s *Store) SetRobotHasCode(v bool) {
	s.mu.Lock()
	changed := s.robotHasCode != v
	s.robotHasCode = v
	demoted := s.enabled && !v
	if demoted {
		s.enabled = false
	}
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicStatusText, Field: "robot_has_code", Value: v})
	}
	if demoted {
		s.publish(Event{Topic: TopicEnabled, Field: "enabled", Value: false})
	}
}

// FMSComms reports whether the FMS watchdog currently considers the
// FMS link alive.
func (s *Store) FMSComms() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fmsComms
}

// SetFMSComms is called by the FMS watchdog's edge transitions.
func (s *Store) SetFMSComms(v bool) {
	s.mu.Lock()
	changed := s.fmsComms != v
	s.fmsComms = v
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicComms, Field: "fms_comms", Value: v})
	}
}

// RadioComms reports whether the radio watchdog currently considers
// the radio link alive.
func (s *Store) RadioComms() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.radioComms
}

// SetRadioComms is called by the radio watchdog's edge transitions.
func (s *Store) SetRadioComms(v bool) {
	s.mu.Lock()
	changed := s.radioComms != v
	s.radioComms = v
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicComms, Field: "radio_comms", Value: v})
	}
}

// RobotComms reports whether the robot watchdog currently considers
// the robot link alive.
func (s *Store) RobotComms() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.robotComms
}

// SetRobotComms is called by the robot watchdog's edge transitions. A
// transition to false can no longer satisfy invariant I1, so enabled is
// coerced false along with it.
func (s *Store) SetRobotComms(v bool) {
	s.mu.Lock()
	changed := s.robotComms != v
	s.robotComms = v
	demoted := !v && s.enabled
	if demoted {
		s.enabled = false
	}
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicComms, Field: "robot_comms", Value: v})
	}
	if demoted {
		s.publish(Event{Topic: TopicEnabled, Field: "enabled", Value: false})
	}
}

// RobotTelemetry returns the most recently reported CPU/RAM/disk/CAN
// utilization percentages.
func (s *Store) RobotTelemetry() (cpu, ram, disk, can int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.robotCPUPct, s.robotRAMPct, s.robotDiskPct, s.robotCANPct
}

// SetRobotCPUPct records CPU utilization from an extended robot tag.
func (s *Store) SetRobotCPUPct(pct int) { s.setTelemetry(&s.robotCPUPct, clampPct(pct)) }

// SetRobotRAMPct records RAM utilization from an extended robot tag.
func (s *Store) SetRobotRAMPct(pct int) { s.setTelemetry(&s.robotRAMPct, clampPct(pct)) }

// SetRobotDiskPct records disk utilization from an extended robot tag.
func (s *Store) SetRobotDiskPct(pct int) { s.setTelemetry(&s.robotDiskPct, clampPct(pct)) }

// SetRobotCANPct records CAN bus utilization from an extended robot tag.
func (s *Store) SetRobotCANPct(pct int) { s.setTelemetry(&s.robotCANPct, clampPct(pct)) }

func (s *Store) setTelemetry(field *int, v int) {
	s.mu.Lock()
	changed := *field != v
	*field = v
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicTelemetry, Value: v})
	}
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// NextFMSCounter increments and returns the FMS packet counter
// (invariant I4: monotonic, reset only on protocol swap).
func (s *Store) NextFMSCounter() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.fmsSent
	s.fmsSent++
	return v
}

// NextRobotCounter increments and returns the robot packet counter.
func (s *Store) NextRobotCounter() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.robotSent
	s.robotSent++
	return v
}

// RobotSentCount returns the current robot packet counter without
// incrementing it.
func (s *Store) RobotSentCount() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.robotSent
}

// ResetCounters zeroes both packet counters. Only the protocol-swap
// path should call this (invariant I4).
func (s *Store) ResetCounters() {
	s.mu.Lock()
	s.fmsSent = 0
	s.robotSent = 0
	s.mu.Unlock()
}

// ProtocolEra returns the era value of the currently installed
// protocol descriptor.
func (s *Store) ProtocolEra() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.protocolEra
}

// SetProtocolEra records the era of a newly installed descriptor.
func (s *Store) SetProtocolEra(era int) {
	s.mu.Lock()
	changed := s.protocolEra != era
	s.protocolEra = era
	s.mu.Unlock()

	if changed {
		s.publish(Event{Topic: TopicProtocol, Field: "protocol_era", Value: era})
	}
}

// PublishMessage publishes an advisory human-readable message on
// TopicStatusText, for use by transport/protocol code reporting errors
// per the policy in SPEC_FULL.md §7 (kind 2: transport failure).
func (s *Store) PublishMessage(msg string) {
	s.publish(Event{Topic: TopicStatusText, Value: msg})
}
