package eventws

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	websocket "github.com/gofiber/contrib/websocket"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

// Hub fans gamification events out to the connected sessions of the user
// they belong to. Events are fire and forget; a slow client is dropped
// rather than allowed to back the hub up.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	events     chan *Event
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

type Event struct {
	Type      string        `json:"type"`
	UserID    string        `json:"user_id"`
	Level     int           `json:"level,omitempty"`
	Badge     *models.Badge `json:"badge,omitempty"`
	Timestamp string        `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan *Event, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.clients[client.userID]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				close(client.send)
			}
			if len(set) == 0 {
				delete(h.clients, client.userID)
			}
		case event := <-h.events:
			h.deliver(event)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// NotifyLevelUp and NotifyBadgeEarned satisfy the gamification service's
// notifier contract. Both enqueue without blocking; when the event buffer
// is full the event is logged and dropped.

func (h *Hub) NotifyLevelUp(userID int64, level int) {
	h.enqueue(&Event{
		Type:      "level_up",
		UserID:    strconv.FormatInt(userID, 10),
		Level:     level,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Hub) NotifyBadgeEarned(userID int64, badge models.Badge) {
	h.enqueue(&Event{
		Type:      "badge_earned",
		UserID:    strconv.FormatInt(userID, 10),
		Badge:     &badge,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Hub) enqueue(event *Event) {
	select {
	case h.events <- event:
	default:
		log.Printf("event hub buffer full, dropping %s for user %s", event.Type, event.UserID)
	}
}

func (h *Hub) deliver(event *Event) {
	encoded, err := json.Marshal(event)
	if err != nil {
		log.Printf("event hub encode event: %v", err)
		return
	}
	h.sendToUser(event.UserID, encoded)
}

func (h *Hub) sendToUser(userID string, payload []byte) {
	set, ok := h.clients[userID]
	if !ok {
		return
	}

	for client := range set {
		select {
		case client.send <- payload:
		default:
			delete(set, client)
			close(client.send)
		}
	}
	if len(set) == 0 {
		delete(h.clients, userID)
	}
}

// ReadPump drains the connection so pings and closes are processed. The
// event feed is one way; inbound frames are discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
