package hub

import (
	"errors"
	"stickerDesk/internal/models/socket"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeConn struct {
	mu         sync.Mutex
	events     []socket.OutboundEvent
	deadlines  []time.Time
	failWrites bool
	closed     bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWrites {
		return errors.New("write failed")
	}
	c.events = append(c.events, v.(socket.OutboundEvent))
	return nil
}

func (c *fakeConn) SetWriteDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadlines = append(c.deadlines, t)
	return nil
}

func (c *fakeConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() []socket.OutboundEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]socket.OutboundEvent(nil), c.events...)
}

func newClient() (*socket.SocketClient, *fakeConn) {
	conn := &fakeConn{}
	return socket.NewSocketClient(conn, uuid.New()), conn
}

func TestRegisterIsIdempotent(t *testing.T) {
	h := NewDeskHub(time.Second)
	deskID := uuid.New()
	client, _ := newClient()

	h.Register(deskID, client)
	h.Register(deskID, client)

	if got := h.Count(deskID); got != 1 {
		t.Errorf("Count(%v) = %d, want 1", deskID, got)
	}
}

func TestUnregisterPrunesEmptyDesk(t *testing.T) {
	h := NewDeskHub(time.Second)
	deskID := uuid.New()
	client, _ := newClient()

	h.Register(deskID, client)
	h.Unregister(deskID, client)

	if got := h.DeskCount(); got != 0 {
		t.Errorf("DeskCount() = %d, want 0 after last member left", got)
	}

	// Idempotent: a second unregister of the same client is a no-op
	h.Unregister(deskID, client)
}

func TestSnapshotIsIsolated(t *testing.T) {
	h := NewDeskHub(time.Second)
	deskID := uuid.New()
	first, _ := newClient()
	h.Register(deskID, first)

	snapshot := h.Snapshot(deskID)

	second, _ := newClient()
	h.Register(deskID, second)

	if len(snapshot) != 1 {
		t.Errorf("snapshot taken before second register has %d members, want 1", len(snapshot))
	}
	if got := h.Count(deskID); got != 2 {
		t.Errorf("Count(%v) = %d, want 2", deskID, got)
	}
}

func TestBroadcastDeliversToAllInOrder(t *testing.T) {
	h := NewDeskHub(time.Second)
	deskID := uuid.New()
	clientA, connA := newClient()
	clientB, connB := newClient()
	h.Register(deskID, clientA)
	h.Register(deskID, clientB)

	first := socket.NewStickerDeletedEvent(uuid.New())
	second := socket.NewStickerDeletedEvent(uuid.New())
	h.Broadcast(deskID, first, nil)
	h.Broadcast(deskID, second, nil)

	for name, conn := range map[string]*fakeConn{"a": connA, "b": connB} {
		events := conn.received()
		if len(events) != 2 {
			t.Fatalf("client %s received %d events, want 2", name, len(events))
		}
		if events[0].Data != first.Data || events[1].Data != second.Data {
			t.Errorf("client %s received events out of order", name)
		}
	}
}

func TestBroadcastSkipsExcluded(t *testing.T) {
	h := NewDeskHub(time.Second)
	deskID := uuid.New()
	sender, senderConn := newClient()
	other, otherConn := newClient()
	h.Register(deskID, sender)
	h.Register(deskID, other)

	h.Broadcast(deskID, socket.NewStickerDeletedEvent(uuid.New()), sender)

	if got := len(senderConn.received()); got != 0 {
		t.Errorf("excluded client received %d events, want 0", got)
	}
	if got := len(otherConn.received()); got != 1 {
		t.Errorf("other client received %d events, want 1", got)
	}
}

func TestBroadcastDropsFailedConnection(t *testing.T) {
	h := NewDeskHub(time.Second)
	deskID := uuid.New()
	healthy, healthyConn := newClient()
	broken, brokenConn := newClient()
	brokenConn.failWrites = true
	h.Register(deskID, healthy)
	h.Register(deskID, broken)

	h.Broadcast(deskID, socket.NewStickerDeletedEvent(uuid.New()), nil)

	if got := len(healthyConn.received()); got != 1 {
		t.Errorf("healthy client received %d events, want 1 despite peer failure", got)
	}
	if !brokenConn.closed {
		t.Error("failed connection was not closed")
	}
	if got := h.Count(deskID); got != 1 {
		t.Errorf("Count(%v) = %d after failed broadcast, want 1", deskID, got)
	}
}

func TestBroadcastSetsBoundedWriteDeadline(t *testing.T) {
	timeout := 250 * time.Millisecond
	h := NewDeskHub(timeout)
	deskID := uuid.New()
	client, conn := newClient()
	h.Register(deskID, client)

	before := time.Now()
	h.Broadcast(deskID, socket.NewStickerDeletedEvent(uuid.New()), nil)

	conn.mu.Lock()
	deadlines := append([]time.Time(nil), conn.deadlines...)
	conn.mu.Unlock()
	if len(deadlines) != 1 {
		t.Fatalf("SetWriteDeadline called %d times, want 1", len(deadlines))
	}
	if deadlines[0].Before(before) || deadlines[0].After(before.Add(timeout+time.Second)) {
		t.Errorf("write deadline %v not within the configured timeout window", deadlines[0])
	}
}

func TestBroadcastOnUnknownDeskIsNoop(t *testing.T) {
	h := NewDeskHub(time.Second)
	h.Broadcast(uuid.New(), socket.NewStickerDeletedEvent(uuid.New()), nil)
}

func TestConcurrentRegistryAccess(t *testing.T) {
	h := NewDeskHub(time.Second)
	deskA := uuid.New()
	deskB := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		deskID := deskA
		if i%2 == 0 {
			deskID = deskB
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			client, _ := newClient()
			h.Register(deskID, client)
			h.Broadcast(deskID, socket.NewStickerDeletedEvent(uuid.New()), nil)
			h.Unregister(deskID, client)
		}()
	}
	wg.Wait()

	if got := h.DeskCount(); got != 0 {
		t.Errorf("DeskCount() = %d after all members left, want 0", got)
	}
}
