// Package telemetry streams trajectory samples to websocket clients and
// accepts new setpoints from them.
//
// Server to client, one JSON object per sample:
//
//	{"tick":12,"time":"2024-05-01T12:00:00.24Z","position":0.1,"velocity":0.5,"setpoint":1}
//
// Client to server:
//
//	{"setpoint":2.5}
//
// A malformed request is answered with {"error":"..."}.
package telemetry

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cwbudde/algo-motion/motion/driver"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 256
)

var errMissingSetpoint = errors.New("missing or non-finite setpoint")

type sampleMessage struct {
	Tick     uint64  `json:"tick"`
	Time     string  `json:"time"`
	Position float64 `json:"position"`
	Velocity float64 `json:"velocity"`
	Setpoint float64 `json:"setpoint"`
}

type setpointRequest struct {
	Setpoint *float64 `json:"setpoint"`
}

type errorMessage struct {
	Error string `json:"error"`
}

// Hub is an http.Handler that upgrades requests to websockets and a
// driver.Sink that broadcasts every sample to the connected clients.
type Hub struct {
	upgrader   websocket.Upgrader
	onSetpoint func(float64)

	mu      sync.RWMutex
	clients map[int64]*client
	nextID  int64
}

// NewHub returns a hub that passes client setpoints to onSetpoint. A nil
// onSetpoint makes the hub broadcast-only.
func NewHub(onSetpoint func(float64)) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		onSetpoint: onSetpoint,
		clients:    make(map[int64]*client),
	}
}

// ServeHTTP upgrades the connection and serves the client until it goes
// away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("telemetry: websocket upgrade error: %v", err)
		return
	}

	c := &client{
		id:     atomic.AddInt64(&h.nextID, 1),
		conn:   conn,
		hub:    h,
		sendCh: make(chan any, sendBuffer),
		done:   make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	log.Printf("telemetry: client %d connected from %s", c.id, r.RemoteAddr)

	go c.writePump()
	c.readPump()
}

// Publish broadcasts s to every client. Clients whose send buffer is full
// miss the sample.
func (h *Hub) Publish(s driver.Sample) error {
	msg := sampleMessage{
		Tick:     s.Tick,
		Time:     s.Time.UTC().Format(time.RFC3339Nano),
		Position: s.Position,
		Velocity: s.Velocity,
		Setpoint: s.Setpoint,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		c.send(msg)
	}

	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[int64]*client)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	log.Printf("telemetry: client %d disconnected", c.id)
}

func (h *Hub) handleMessage(c *client, data []byte) {
	var req setpointRequest
	if err := json.Unmarshal(data, &req); err != nil {
		c.send(errorMessage{Error: "parse error: " + err.Error()})
		return
	}
	if req.Setpoint == nil || math.IsNaN(*req.Setpoint) || math.IsInf(*req.Setpoint, 0) {
		c.send(errorMessage{Error: errMissingSetpoint.Error()})
		return
	}

	if h.onSetpoint != nil {
		h.onSetpoint(*req.Setpoint)
	}
}

type client struct {
	id     int64
	conn   *websocket.Conn
	hub    *Hub
	sendCh chan any
	done   chan struct{}
	once   sync.Once
}

func (c *client) send(msg any) {
	select {
	case c.sendCh <- msg:
	case <-c.done:
	default:
		// Slow client: drop rather than stall the control loop.
	}
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("telemetry: websocket read error: %v", err)
			}
			return
		}

		c.hub.handleMessage(c, message)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case msg := <-c.sendCh:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("telemetry: websocket write error: %v", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}
