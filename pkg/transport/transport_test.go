package transport

import (
	"net"
	"testing"
	"time"
)

func TestBindSendReceiveRoundTrip(t *testing.T) {
	server, err := Bind(0, WithName("server"))
	if err != nil {
		t.Fatalf("bind server: %v", err)
	}
	defer server.Close()

	client, err := Bind(0, WithName("client"))
	if err != nil {
		t.Fatalf("bind client: %v", err)
	}
	defer client.Close()

	serverPort := server.conn.LocalAddr().(*net.UDPAddr).Port
	if err := client.SetRemote("127.0.0.1", serverPort); err != nil {
		t.Fatalf("SetRemote: %v", err)
	}

	if err := client.Send([]byte("hello")); err != nil {
		t.Fatalf("Send: %v", err)
	}

	buf := make([]byte, 64)
	n, addr, err := server.ReadFrom(buf, time.Second)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if string(buf[:n]) != "hello" {
		t.Fatalf("expected \"hello\", got %q", buf[:n])
	}
	if addr == nil {
		t.Fatal("expected a non-nil sender address")
	}
}

func TestSendWithNoRemoteIsNoOp(t *testing.T) {
	c, err := Bind(0)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	defer c.Close()

	if err := c.Send([]byte("x")); err != nil {
		t.Fatalf("expected a no-op Send with no remote set, got error: %v", err)
	}
	if c.RemoteHost() != "" {
		t.Fatalf("expected empty RemoteHost before SetRemote, got %q", c.RemoteHost())
	}
}

func TestReadFromRespectsDeadline(t *testing.T) {
	c, err := Bind(0)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	defer c.Close()

	buf := make([]byte, 16)
	start := time.Now()
	_, _, err = c.ReadFrom(buf, 50*time.Millisecond)
	if err == nil {
		t.Fatal("expected a timeout error with nothing sent")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected a fast deadline-bound return, took %v", elapsed)
	}
}

func TestSetRemoteUpdatesRemoteHost(t *testing.T) {
	c, err := Bind(0)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	defer c.Close()

	if err := c.SetRemote("10.1.2.1", 1160); err != nil {
		t.Fatalf("SetRemote: %v", err)
	}
	if c.RemoteHost() != "10.1.2.1" {
		t.Fatalf("expected RemoteHost 10.1.2.1, got %q", c.RemoteHost())
	}
}
