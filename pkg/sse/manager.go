package sse

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Event is a single server-sent event addressed to a user connection
type Event struct {
	Name string
	Data interface{}
}

type client struct {
	userID string
	send   chan Event
}

// Manager fans out server-sent events to connected clients per user.
// One user may hold several connections (multiple tabs/devices).
type Manager struct {
	register   chan *client
	unregister chan *client
	outbound   chan targetedEvent
	clients    map[string]map[*client]bool
}

type targetedEvent struct {
	userID string // empty means broadcast
	event  Event
}

func NewManager() *Manager {
	return &Manager{
		register:   make(chan *client),
		unregister: make(chan *client),
		outbound:   make(chan targetedEvent, 256),
		clients:    make(map[string]map[*client]bool),
	}
}

// Run owns the client map; must run in its own goroutine
func (m *Manager) Run() {
	for {
		select {
		case c := <-m.register:
			if m.clients[c.userID] == nil {
				m.clients[c.userID] = make(map[*client]bool)
			}
			m.clients[c.userID][c] = true
			log.Printf("[SSE] Client connected for user %s (%d total)", c.userID, len(m.clients[c.userID]))

		case c := <-m.unregister:
			if conns, ok := m.clients[c.userID]; ok {
				if conns[c] {
					delete(conns, c)
					close(c.send)
					if len(conns) == 0 {
						delete(m.clients, c.userID)
					}
				}
			}

		case te := <-m.outbound:
			if te.userID == "" {
				for _, conns := range m.clients {
					for c := range conns {
						m.deliver(c, te.event)
					}
				}
				continue
			}
			for c := range m.clients[te.userID] {
				m.deliver(c, te.event)
			}
		}
	}
}

// deliver drops the event if the client's buffer is full rather than blocking the loop
func (m *Manager) deliver(c *client, ev Event) {
	select {
	case c.send <- ev:
	default:
		log.Printf("[SSE] Dropping event %q for slow client (user %s)", ev.Name, c.userID)
	}
}

// SendToUser queues an event for every connection of the given user
func (m *Manager) SendToUser(userID, event string, data interface{}) {
	select {
	case m.outbound <- targetedEvent{userID: userID, event: Event{Name: event, Data: data}}:
	default:
		log.Printf("[SSE] Outbound queue full, dropping event %q for user %s", event, userID)
	}
}

// Broadcast queues an event for every connected client
func (m *Manager) Broadcast(event string, data interface{}) {
	select {
	case m.outbound <- targetedEvent{event: Event{Name: event, Data: data}}:
	default:
		log.Printf("[SSE] Outbound queue full, dropping broadcast %q", event)
	}
}

// ServeHTTP streams events to a single connection until the client goes away
func (m *Manager) ServeHTTP(c *gin.Context, userID string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	cl := &client{userID: userID, send: make(chan Event, 16)}
	m.register <- cl
	defer func() { m.unregister <- cl }()

	// Initial comment keeps some proxies from buffering the stream
	fmt.Fprint(c.Writer, ": connected\n\n")
	flusher.Flush()

	notify := c.Request.Context().Done()
	for {
		select {
		case ev, open := <-cl.send:
			if !open {
				return
			}
			payload, err := json.Marshal(ev.Data)
			if err != nil {
				log.Printf("[SSE] Marshal error for event %q: %v", ev.Name, err)
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Name, payload)
			flusher.Flush()
		case <-notify:
			return
		}
	}
}
