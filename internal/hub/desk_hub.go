package hub

import (
	"log"
	"stickerDesk/internal/models/socket"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DeskHub keeps the desk -> live connections map. All membership
// mutations go through the hub mutex; broadcast iterates a snapshot so
// a connection closing mid-pass is either delivered to or skipped,
// never corrupts the set.
type DeskHub struct {
	mu           sync.Mutex
	desks        map[uuid.UUID]map[*socket.SocketClient]struct{}
	writeTimeout time.Duration
}

func NewDeskHub(writeTimeout time.Duration) *DeskHub {
	return &DeskHub{
		desks:        make(map[uuid.UUID]map[*socket.SocketClient]struct{}),
		writeTimeout: writeTimeout,
	}
}

func (h *DeskHub) WriteTimeout() time.Duration {
	return h.writeTimeout
}

func (h *DeskHub) Register(deskID uuid.UUID, client *socket.SocketClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.desks[deskID]
	if !ok {
		clients = make(map[*socket.SocketClient]struct{})
		h.desks[deskID] = clients
	}
	clients[client] = struct{}{}
}

func (h *DeskHub) Unregister(deskID uuid.UUID, client *socket.SocketClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.desks[deskID]
	if !ok {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.desks, deskID)
	}
}

// Snapshot returns an isolated copy of the desk's membership, safe to
// iterate while other handlers mutate the registry
func (h *DeskHub) Snapshot(deskID uuid.UUID) []*socket.SocketClient {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := make([]*socket.SocketClient, 0, len(h.desks[deskID]))
	for client := range h.desks[deskID] {
		clients = append(clients, client)
	}
	return clients
}

func (h *DeskHub) Count(deskID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.desks[deskID])
}

func (h *DeskHub) DeskCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.desks)
}

// Broadcast delivers event to every connection registered for the desk,
// except exclude if given. A failed or timed-out send never aborts
// delivery to the rest; dead connections are collected during the pass
// and unregistered only after iteration completes.
func (h *DeskHub) Broadcast(deskID uuid.UUID, event socket.OutboundEvent, exclude *socket.SocketClient) {
	var dead []*socket.SocketClient
	for _, client := range h.Snapshot(deskID) {
		if client == exclude {
			continue
		}
		if err := client.Send(event, h.writeTimeout); err != nil {
			log.Printf("Broadcast / error writing to desk %v client: %v", deskID, err)
			_ = client.Conn.Close()
			dead = append(dead, client)
		}
	}
	for _, client := range dead {
		h.Unregister(deskID, client)
	}
}

// CloseAll drops every connection, used on server shutdown
func (h *DeskHub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for deskID, clients := range h.desks {
		for client := range clients {
			_ = client.Conn.Close()
		}
		delete(h.desks, deskID)
	}
}
