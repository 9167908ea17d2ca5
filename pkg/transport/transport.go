// Package transport implements the UDP datagram transport named in
// §6: per-peer sockets bound from a protocol.Socket spec, with
// bind failures retried under backoff rather than aborting the
// process (a transport failure is an §7 kind-2 error — log and
// retry, never fatal).
package transport

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"
)

// Conn is a bound UDP peer link: it receives on one local port and
// sends to a remote host/port pair that may change (e.g. once an FMS
// or robot address becomes known).
type Conn struct {
	l hclog.Logger

	name string
	conn *net.UDPConn

	remoteMu sync.RWMutex
	remote   *net.UDPAddr
}

// Option configures a Conn at construction time.
type Option func(*Conn)

// WithLogger sets the logging instance used by the connection.
func WithLogger(l hclog.Logger) Option {
	return func(c *Conn) { c.l = l }
}

// WithName labels the connection for logging, e.g. "fms", "robot".
func WithName(n string) Option {
	return func(c *Conn) { c.name = n }
}

// Bind opens a UDP socket on localPort, retrying under exponential
// backoff if the bind fails (address in use, interface not yet up,
// etc.) rather than returning an error immediately. Grounded on the
// teacher's ds.go use of backoff.Retry around MQTT connect/subscribe,
// generalized here to a socket bind.
func Bind(localPort int, opts ...Option) (*Conn, error) {
	c := &Conn{l: hclog.NewNullLogger(), name: "conn"}
	for _, o := range opts {
		o(c)
	}

	bindFunc := func() error {
		udp, err := net.ListenUDP("udp", &net.UDPAddr{Port: localPort})
		if err != nil {
			c.l.Warn("Bind failed, retrying", "name", c.name, "port", localPort, "error", err)
			return err
		}
		c.conn = udp
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0 // retry forever; a kind-2 failure must never abort the process
	if err := backoff.Retry(bindFunc, b); err != nil {
		return nil, fmt.Errorf("transport: permanent bind failure on port %d: %w", localPort, err)
	}

	c.l.Info("Bound UDP socket", "name", c.name, "port", localPort)
	return c, nil
}

// SetRemote updates the address datagrams are sent to. It is safe to
// call concurrently with Send.
func (c *Conn) SetRemote(host string, port int) error {
	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return err
	}
	c.remoteMu.Lock()
	c.remote = addr
	c.remoteMu.Unlock()
	return nil
}

// Send writes data to the current remote address. It is a no-op if no
// remote address has been set yet (e.g. the FMS address is unknown
// until the first FMS datagram arrives).
func (c *Conn) Send(data []byte) error {
	c.remoteMu.RLock()
	remote := c.remote
	c.remoteMu.RUnlock()

	if remote == nil {
		return nil
	}
	_, err := c.conn.WriteToUDP(data, remote)
	return err
}

// ReadFrom blocks until a datagram arrives or deadline elapses,
// returning the payload and the sender's address. Callers feed the
// peer's watchdog only on a nil error.
func (c *Conn) ReadFrom(buf []byte, deadline time.Duration) (int, *net.UDPAddr, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(deadline)); err != nil {
		return 0, nil, err
	}
	n, addr, err := c.conn.ReadFromUDP(buf)
	return n, addr, err
}

// RemoteHost returns the host portion of the currently configured
// remote address, or "" if none has been set yet.
func (c *Conn) RemoteHost() string {
	c.remoteMu.RLock()
	defer c.remoteMu.RUnlock()
	if c.remote == nil {
		return ""
	}
	return c.remote.IP.String()
}

// Close releases the underlying socket.
func (c *Conn) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
