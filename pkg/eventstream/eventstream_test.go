package eventstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func TestPublishConfigEventDeliveredToSubscriber(t *testing.T) {
	es := New()
	srv := httptest.NewServer(http.HandlerFunc(es.Handler))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, wsURL(srv.URL), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.CloseNow()

	// Give the subscriber time to register before publishing.
	time.Sleep(50 * time.Millisecond)
	es.PublishConfigEvent("mode", "control_mode", "AUTONOMOUS")

	_, data, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got EventConfig
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Type != EventTypeConfig || got.Topic != "mode" || got.Field != "control_mode" {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestPublishLogLineDeliveredToSubscriber(t *testing.T) {
	es := New()
	srv := httptest.NewServer(http.HandlerFunc(es.Handler))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, wsURL(srv.URL), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.CloseNow()

	time.Sleep(50 * time.Millisecond)
	es.PublishLogLine("hello")

	_, data, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got EventLogLine
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Type != EventTypeLogLine || got.Message != "hello" {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestPublishWithNoSubscribersDoesNotBlock(t *testing.T) {
	es := New()
	es.PublishConfigEvent("mode", "control_mode", "TEST")
}

func wsURL(httpURL string) string {
	return "ws" + httpURL[len("http"):]
}
