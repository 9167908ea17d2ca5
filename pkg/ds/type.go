// Package ds implements the scheduler and watchdog core: three
// independent periodic peer tasks (FMS, radio, robot), their
// edge-triggered watchdogs, protocol-swap teardown/reinstall, and the
// Public API surface a UI or CLI drives. Grounded on the teacher's
// pkg/ds.DriverStation (Run/Stop/DieNow, ticker loops, functional
// options), restructured around UDP peers instead of MQTT topics.
package ds

import (
	"context"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/metrics"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/transport"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/watchdog"
)

// DriverStation binds the Config Store, Joystick Source, and the
// active Protocol Descriptor's three peer tasks together. It is the
// single point of entry the CLI and HTTP control surface drive.
type DriverStation struct {
	l hclog.Logger

	store   *config.Store
	js      joystick.Source
	metrics *metrics.Metrics

	initialEra protocol.Era

	// swapMu serializes SetProtocol against itself and against Stop,
	// ruling out the mid-swap races named in SPEC_FULL.md §7 kind 4 by
	// construction: only one goroutine may be tearing down/installing
	// at a time.
	swapMu sync.Mutex

	proto  protocol.Descriptor
	cancel context.CancelFunc
	wg     sync.WaitGroup

	fms        *peer
	radio      *peer
	robot      *peer
	netconsole *transport.Conn
}

// peer bundles one peer's transport connection and watchdog. All
// three of a DriverStation's peers are torn down and rebuilt together
// on every protocol swap.
type peer struct {
	name string
	conn *transport.Conn
	dog  *watchdog.Dog
}

// Option configures a DriverStation at construction time.
type Option func(*DriverStation)
