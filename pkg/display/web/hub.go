// Package web streams emulator frames to browsers over websockets.
package web

import (
	"encoding/binary"
	"net/http"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// frameCacheSize is the number of frames clients are expected to keep.
const frameCacheSize = 32

// Hub fans frames out to every connected client. Run must be running
// for clients to be served.
type Hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client
	done                 chan struct{}
	closeOnce            sync.Once

	frames    *cache
	lastHash  uint64
	hasFrame  bool
	currentID uint8

	log log.Logger
	mu  sync.Mutex
}

// NewHub returns a new Hub.
func NewHub(l log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		frames:     newCache(frameCacheSize),
		log:        l,
	}
}

// Run handles client registration and broadcasting until Close is
// called.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.log.Infof("web: client %d connected from %s", c.ID, c.RemoteAddr)
		case c := <-h.unregister:
			// is this client still registered
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
				h.log.Infof("web: client %d disconnected", c.ID)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					// too slow to keep up
					close(c.Send)
					delete(h.clients, c)
				}
			}
		case <-h.done:
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return
		}
	}
}

// Close stops the hub and disconnects every client.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// ServeHTTP upgrades the connection to a websocket and registers the
// client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// upgrade the connection to a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("web: upgrading connection: %v", err)
		return
	}

	c := h.newClient(conn, r)

	// queued before registering, so it is always the first message
	c.Send <- []byte{ClientInfo, c.ID}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.ReadPump()
	go c.WritePump()
}

// PushFrame encodes a buffer of packed 0x00RRGGBB pixels and sends it to
// every client. Unchanged frames are sent as FrameSkip, frames still in
// the cache as FrameCache.
func (h *Hub) PushFrame(pixels []uint32) {
	data := make([]byte, 3, 3+len(pixels)*3)
	data[0] = Frame
	for _, p := range pixels {
		data = append(data, uint8(p>>16), uint8(p>>8), uint8(p))
	}
	hash := xxhash.Sum64(data[3:])

	h.mu.Lock()
	var msg []byte
	switch idx := h.frames.index(hash); {
	case h.hasFrame && hash == h.lastHash:
		msg = []byte{FrameSkip}
	case idx != -1:
		msg = []byte{FrameCache, 0, 0}
		binary.LittleEndian.PutUint16(msg[1:], uint16(idx))
	default:
		binary.LittleEndian.PutUint16(data[1:], uint16(h.frames.add(hash)))
		msg = data
	}
	h.lastHash, h.hasFrame = hash, true
	h.mu.Unlock()

	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// newClient creates a new client for the hub.
func (h *Hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.currentID++

	return &Client{
		hub:        h,
		conn:       conn,
		Send:       make(chan []byte, 256),
		ID:         h.currentID,
		RemoteAddr: r.RemoteAddr,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
