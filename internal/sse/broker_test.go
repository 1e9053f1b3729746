package sse

import (
	"strings"
	"testing"
	"time"
)

func TestSubscribeAndPublish(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	waitForClients(t, b, 1)

	b.Publish(ContentEvent{Resource: "projects", Action: "saved", Title: "Folio"})

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: content.saved") {
			t.Errorf("missing event line: %q", s)
		}
		if !strings.Contains(s, `"resource":"projects"`) {
			t.Errorf("missing payload: %q", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	waitForClients(t, b, 1)

	b.Unsubscribe(ch)
	waitForClients(t, b, 0)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
}

func TestCloseStopsBroker(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	waitForClients(t, b, 1)

	b.Close()

	if _, ok := <-ch; ok {
		t.Error("client channel should be closed after Close")
	}
	// Calls after Close must be safe no-ops.
	b.Publish(ContentEvent{Resource: "blogs", Action: "deleted"})
	b.Unsubscribe(ch)
	if n := b.ClientCount(); n != 0 {
		t.Errorf("ClientCount after Close = %d", n)
	}
	b.Close()
}

func TestSubscribeAfterClose(t *testing.T) {
	b := NewBroker()
	b.Close()

	ch := b.Subscribe()
	if _, ok := <-ch; ok {
		t.Error("subscribe after close should return a closed channel")
	}
}

func waitForClients(t *testing.T, b *Broker, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if b.ClientCount() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("client count never reached %d", want)
		case <-time.After(10 * time.Millisecond):
		}
	}
}
