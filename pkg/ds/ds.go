package ds

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/metrics"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/transport"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/watchdog"
)

// New returns a driver station that has not yet bound any sockets or
// started any peer tasks; call Run to install the initial protocol and
// start the scheduler.
func New(opts ...Option) *DriverStation {
	d := &DriverStation{
		l:          hclog.NewNullLogger(),
		js:         joystick.NullSource{},
		initialEra: protocol.Era2015,
	}

	for _, o := range opts {
		o(d)
	}

	if d.store == nil {
		d.store = config.New(config.WithLogger(d.l))
	}
	if d.metrics == nil {
		d.metrics = metrics.New(metrics.WithLogger(d.l))
	}

	d.wireMetrics()

	return d
}

// wireMetrics subscribes to every Config Store topic and refreshes
// the metrics exporter's gauges from a fresh snapshot on each one, so
// scrapes never lag more than one event behind the Store.
func (d *DriverStation) wireMetrics() {
	topics := []config.Topic{
		config.TopicStatusText,
		config.TopicVoltage,
		config.TopicEnabled,
		config.TopicMode,
		config.TopicEStop,
		config.TopicComms,
		config.TopicTelemetry,
		config.TopicAllianceStation,
		config.TopicProtocol,
	}

	for _, topic := range topics {
		d.store.Subscribe(topic, func(config.Event) {
			d.metrics.Refresh(d.store.Snapshot())
		})
	}
}

// Store returns the Config Store this driver station reads and writes
// through, for callers that want to subscribe or snapshot directly.
func (d *DriverStation) Store() *config.Store { return d.store }

// Run installs the initial protocol (from WithProtocol, or 2015 by
// default) and starts all three peer tasks. It returns once the
// initial install succeeds; the tasks themselves keep running in the
// background until Stop is called.
func (d *DriverStation) Run() error {
	return d.SetProtocol(d.initialEra)
}

// Stop cancels every running peer task, waits for them to exit, and
// releases their transport handles. It is safe to call more than
// once.
func (d *DriverStation) Stop() {
	d.swapMu.Lock()
	defer d.swapMu.Unlock()
	d.teardown()
}

// DieNow forces an immediate exit without cleaning up references.
// Peer watchdogs are not wired to it: their bite function is
// peerExpired, which marks the peer down and keeps the process alive.
func (d *DriverStation) DieNow() {
	d.l.Error("Told to die!")
	os.Exit(2)
}

// SetProtocol implements the Public API's set_protocol operation
// (SPEC_FULL.md §4.4): it tears down every task and transport handle
// for the previously active descriptor, resets the packet counters
// (invariant I4 — counters reset only on protocol swap), installs a
// freshly constructed descriptor for era, and starts new tasks bound
// to it. swapMu serializes this against itself and against Stop, so
// no task ever observes a mid-swap descriptor.
func (d *DriverStation) SetProtocol(era protocol.Era) error {
	proto, err := protocol.Get(era)
	if err != nil {
		return err
	}

	d.swapMu.Lock()
	defer d.swapMu.Unlock()

	d.teardown()

	d.store.ResetCounters()
	d.store.SetProtocolEra(int(era))
	d.proto = proto

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	sockets := proto.Sockets()
	cadences := proto.Cadences()

	var err2 error
	d.fms, err2 = d.bindPeer("fms", sockets.FMS, cadences.FMSIntervalMS)
	if err2 != nil {
		return err2
	}
	d.radio, err2 = d.bindPeer("radio", sockets.Radio, cadences.RadioIntervalMS)
	if err2 != nil {
		return err2
	}
	d.robot, err2 = d.bindPeer("robot", sockets.Robot, cadences.RobotIntervalMS)
	if err2 != nil {
		return err2
	}
	d.netconsole, err2 = d.bindNetconsole(sockets.Netconsole)
	if err2 != nil {
		return err2
	}

	d.startTasks(ctx)

	d.l.Info("Protocol installed", "era", era.String())
	return nil
}

// bindPeer binds a peer's UDP socket unless its spec disables it, and
// builds the watchdog that will mark it down on expiry. A disabled
// socket, or an interval of zero, still gets a peer struct with a nil
// conn/dog so the task loop can treat it uniformly as "never runs".
func (d *DriverStation) bindPeer(name string, spec protocol.Socket, intervalMS int) (*peer, error) {
	p := &peer{name: name}

	if spec.Disabled || intervalMS == 0 {
		return p, nil
	}

	conn, err := transport.Bind(spec.InputPort,
		transport.WithLogger(d.l),
		transport.WithName(name),
	)
	if err != nil {
		return nil, fmt.Errorf("ds: binding %s socket: %w", name, err)
	}
	p.conn = conn

	p.dog = watchdog.New(
		watchdog.WithName(name),
		watchdog.WithFoodDuration(watchdogDuration(intervalMS)),
		watchdog.WithHandFunction(d.peerExpired(name)),
		watchdog.WithLogger(d.l),
	)

	return p, nil
}

// bindNetconsole binds the netconsole socket unless the descriptor
// disables it. Netconsole is receive-only and carries no comms flag
// or watchdog of its own — it is a log stream, not a control peer.
func (d *DriverStation) bindNetconsole(spec protocol.Socket) (*transport.Conn, error) {
	if spec.Disabled || spec.InputPort == 0 {
		return nil, nil
	}

	conn, err := transport.Bind(spec.InputPort,
		transport.WithLogger(d.l),
		transport.WithName("netconsole"),
	)
	if err != nil {
		return nil, fmt.Errorf("ds: binding netconsole socket: %w", err)
	}
	return conn, nil
}

// peerExpired returns the watchdog bite handler for a named peer: it
// flips that peer's comms flag false and invokes the descriptor's
// matching reset hook, per SPEC_FULL.md §4.3. It deliberately does not
// call DieNow — a missed peer should not kill the whole process.
func (d *DriverStation) peerExpired(name string) func() {
	return func() {
		switch name {
		case "fms":
			d.store.SetFMSComms(false)
			d.proto.ResetFMS()
		case "radio":
			d.store.SetRadioComms(false)
			d.proto.ResetRadio()
		case "robot":
			d.store.SetRobotComms(false)
			d.proto.ResetRobot()
		}
		d.l.Warn("Peer watchdog expired", "peer", name)
	}
}

func (d *DriverStation) teardown() {
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()

	for _, p := range []*peer{d.fms, d.radio, d.robot} {
		if p == nil {
			continue
		}
		if p.dog != nil {
			// Stop the watchdog's armed timer before the descriptor it
			// targets is replaced: an un-stopped Dog can still fire
			// after the swap and run peerExpired against the new
			// descriptor, per SPEC_FULL.md §5's happens-before
			// guarantee.
			p.dog.Stop()
		}
		if p.conn != nil {
			p.conn.Close()
		}
	}
	if d.netconsole != nil {
		d.netconsole.Close()
	}

	d.fms, d.radio, d.robot, d.netconsole = nil, nil, nil, nil
}
