package ds

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/transport"
)

// watchdogDuration turns a descriptor's send interval into a watchdog
// timeout: 3x the interval, the minimum leeway SPEC_FULL.md §4.3
// requires before a peer is declared down.
func watchdogDuration(intervalMS int) time.Duration {
	return 3 * time.Duration(intervalMS) * time.Millisecond
}

const recvPollInterval = 200 * time.Millisecond

// inbound is one datagram handed from a peer's recvLoop to its task
// goroutine, paired with the sender's address so a task can resolve an
// unknown remote (§6's "assigned on first ingress" addresses) without
// a second socket call.
type inbound struct {
	data []byte
	addr *net.UDPAddr
}

// startTasks launches a goroutine per peer whose socket is bound. A
// peer with a disabled socket or a zero interval has no conn and
// never gets a task, per SPEC_FULL.md §4.3's "interval=0 disables that
// task entirely."
func (d *DriverStation) startTasks(ctx context.Context) {
	if d.fms.conn != nil {
		d.wg.Add(1)
		go d.runFMSTask(ctx)
	}
	if d.radio.conn != nil {
		d.wg.Add(1)
		go d.runRadioTask(ctx)
	}
	if d.robot.conn != nil {
		d.wg.Add(1)
		go d.runRobotTask(ctx)
	}
	if d.netconsole != nil {
		d.wg.Add(1)
		go d.runNetconsoleTask(ctx)
	}
}

// runFMSTask is the FMS peer's send/receive loop: a periodic send at
// the descriptor's FMS cadence, and a receive path that feeds the FMS
// watchdog on every successfully parsed datagram. Send and the
// ingress handler run on the same goroutine, so they can never race
// on the FMS watchdog or the FMS comms flag.
func (d *DriverStation) runFMSTask(ctx context.Context) {
	defer d.wg.Done()

	p := d.fms
	sockets := d.proto.Sockets()
	cadences := d.proto.Cadences()
	ticker := time.NewTicker(time.Duration(cadences.FMSIntervalMS) * time.Millisecond)
	defer ticker.Stop()

	recv := make(chan inbound, 4)
	go recvLoop(ctx, p.conn, recv)

	addrSet := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := d.store.Snapshot()
			pkt := d.proto.BuildFMSPacket(snap)
			if err := p.conn.Send(pkt); err != nil {
				d.store.PublishMessage("fms send error: " + err.Error())
			}
			d.store.NextFMSCounter()
		case in := <-recv:
			if err := d.proto.ReadFMSPacket(in.data, d.store); err != nil {
				continue // malformed ingress: drop, don't feed the watchdog
			}
			if !addrSet && in.addr != nil {
				// §6: the FMS address is unknown in advance; it is
				// assigned from the sender IP of the first datagram
				// that parses successfully, on the descriptor's
				// well-known FMS output port.
				if err := p.conn.SetRemote(in.addr.IP.String(), sockets.FMS.OutputPort); err == nil {
					addrSet = true
				}
			}
			p.dog.Feed()
			if !d.store.FMSComms() {
				d.store.SetFMSComms(true)
			}
		}
	}
}

// runRadioTask mirrors runFMSTask for the radio peer. In the 2015 era
// this socket is disabled and the task never starts; it exists for
// eras where a radio link is actually exercised.
func (d *DriverStation) runRadioTask(ctx context.Context) {
	defer d.wg.Done()

	p := d.radio
	cadences := d.proto.Cadences()
	ticker := time.NewTicker(time.Duration(cadences.RadioIntervalMS) * time.Millisecond)
	defer ticker.Stop()

	recv := make(chan inbound, 4)
	go recvLoop(ctx, p.conn, recv)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := d.store.Snapshot()
			pkt := d.proto.BuildRadioPacket(snap)
			if err := p.conn.Send(pkt); err != nil {
				d.store.PublishMessage("radio send error: " + err.Error())
			}
		case in := <-recv:
			if err := d.proto.ReadRadioPacket(in.data, d.store); err != nil {
				continue
			}
			p.dog.Feed()
			if !d.store.RadioComms() {
				d.store.SetRadioComms(true)
			}
		}
	}
}

// runRobotTask mirrors runFMSTask for the robot peer, additionally
// consulting the Joystick Source when building outgoing packets and
// resolving the robot's address from the descriptor on the first
// send.
func (d *DriverStation) runRobotTask(ctx context.Context) {
	defer d.wg.Done()

	p := d.robot
	sockets := d.proto.Sockets()
	cadences := d.proto.Cadences()
	ticker := time.NewTicker(time.Duration(cadences.RobotIntervalMS) * time.Millisecond)
	defer ticker.Stop()

	recv := make(chan inbound, 4)
	go recvLoop(ctx, p.conn, recv)

	addrSet := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !addrSet {
				host := d.proto.RobotAddress(d.store.TeamNumber())
				if err := p.conn.SetRemote(host, sockets.Robot.OutputPort); err == nil {
					addrSet = true
				}
			}
			snap := d.store.Snapshot()
			pkt := d.proto.BuildRobotPacket(snap, d.js)
			if err := p.conn.Send(pkt); err != nil {
				d.store.PublishMessage("robot send error: " + err.Error())
			}
			d.store.NextRobotCounter()
		case in := <-recv:
			if err := d.proto.ReadRobotPacket(in.data, d.store); err != nil {
				continue
			}
			p.dog.Feed()
			if !d.store.RobotComms() {
				d.store.SetRobotComms(true)
			}
		}
	}
}

// runNetconsoleTask forwards every inbound netconsole datagram to the
// Config Store's message topic, one line at a time. Per spec.md §6 the
// stream is newline-delimited human-readable text forwarded verbatim,
// with no further parsing.
func (d *DriverStation) runNetconsoleTask(ctx context.Context) {
	defer d.wg.Done()

	recv := make(chan inbound, 4)
	go recvLoop(ctx, d.netconsole, recv)

	for {
		select {
		case <-ctx.Done():
			return
		case in := <-recv:
			for _, line := range strings.Split(string(in.data), "\n") {
				line = strings.TrimRight(line, "\r")
				if line == "" {
					continue
				}
				d.store.PublishMessage(line)
			}
		}
	}
}

// recvLoop polls conn for inbound datagrams and forwards copies to out
// until ctx is cancelled. It runs on its own goroutine so a blocking
// read never delays the peer task's sends; recvPollInterval bounds
// how long a read can block so cancellation is observed promptly, per
// SPEC_FULL.md §5's suspension-point contract.
func recvLoop(ctx context.Context, conn *transport.Conn, out chan<- inbound) {
	buf := make([]byte, 1500)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, addr, err := conn.ReadFrom(buf, recvPollInterval)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			continue
		}

		cp := make([]byte, n)
		copy(cp, buf[:n])

		select {
		case out <- inbound{data: cp, addr: addr}:
		case <-ctx.Done():
			return
		}
	}
}
