// Package network bridges engine events to websocket peers and forwards their input.
package network

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lixenwraith/crystal-snake/engine"
	"github.com/lixenwraith/crystal-snake/input"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("network")

// ErrHubClosed rejects connections arriving after Close
var ErrHubClosed = errors.New("hub closed")

// Path is where peers connect
const Path = "/ws"

// Hub accepts websocket peers, broadcasts events to them and forwards their actions
type Hub struct {
	config   *Config
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	closed bool // set by Close; no peer is registered afterwards
	nextID atomic.Uint32

	onAction func(PeerID, input.Action)

	server   *http.Server
	listener net.Listener
	running  atomic.Bool
	wg       sync.WaitGroup
}

// NewHub creates a hub; onAction receives every decoded inbound action and may be nil
func NewHub(cfg *Config, onAction func(PeerID, input.Action)) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Hub{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		peers:    make(map[PeerID]*Peer),
		onAction: onAction,
	}
}

// Handler returns a mux serving the websocket endpoint
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, h.ServeWS)
	return mux
}

// ServeWS upgrades one request to a peer
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	if h.isClosed() {
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	}
	if h.PeerCount() >= h.config.MaxPeers {
		http.Error(w, ErrMaxPeers.Error(), http.StatusServiceUnavailable)
		log.Warningf("rejecting %s: %v", r.RemoteAddr, ErrMaxPeers)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		log.Errorf("could not create websocket: %v", err)
		return
	}

	id := PeerID(h.nextID.Add(1))
	peer := newPeer(id, conn, h.config)

	// Registration and wg.Add happen under mu so Close never waits while peers are added
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		log.Warningf("rejecting %s: %v", r.RemoteAddr, ErrHubClosed)
		return
	}
	h.peers[id] = peer
	h.wg.Add(3)
	h.mu.Unlock()
	log.Infof("peer %d connected from %s", id, peer.Addr)

	go func() {
		defer h.wg.Done()
		peer.readLoop(h.onAction)
	}()
	go func() {
		defer h.wg.Done()
		peer.writeLoop()
	}()
	go func() {
		defer h.wg.Done()
		h.monitorPeer(peer)
	}()
}

// monitorPeer removes the peer once it closes
func (h *Hub) monitorPeer(peer *Peer) {
	<-peer.Done()

	h.mu.Lock()
	delete(h.peers, peer.ID)
	h.mu.Unlock()

	log.Infof("peer %d disconnected (dropped %d)", peer.ID, peer.Dropped.Load())
}

// Start binds the configured address and serves in the background
func (h *Hub) Start() error {
	if !h.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", h.config.Address)
	if err != nil {
		h.running.Store(false)
		return err
	}
	h.listener = ln
	h.server = &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("serve: %v", err)
		}
	}()
	log.Infof("listening on %s%s", ln.Addr(), Path)
	return nil
}

// Addr returns the bound address, or nil before Start
func (h *Hub) Addr() net.Addr {
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

// Close stops serving and disconnects all peers
func (h *Hub) Close() error {
	var err error
	if h.running.CompareAndSwap(true, false) && h.server != nil {
		err = h.server.Close()
	}

	h.mu.Lock()
	h.closed = true
	peers := make([]*Peer, 0, len(h.peers))
	for _, peer := range h.peers {
		peers = append(peers, peer)
	}
	h.mu.Unlock()

	for _, peer := range peers {
		peer.Close()
	}
	h.wg.Wait()
	return err
}

// Broadcast queues data on every peer and returns how many accepted it
func (h *Hub) Broadcast(data []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for _, peer := range h.peers {
		if peer.Send(data) {
			sent++
		}
	}
	return sent
}

func (h *Hub) isClosed() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.closed
}

// PeerCount returns current connected peer count
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// HandleEvent implements engine.EventHandler
func (h *Hub) HandleEvent(ev engine.GameEvent) {
	if h.PeerCount() == 0 {
		return
	}
	data, err := EncodeEvent(ev)
	if err != nil {
		log.Errorf("encode %s: %v", ev.Type, err)
		return
	}
	h.Broadcast(data)
}

// EventTypes implements engine.EventHandler
func (h *Hub) EventTypes() []engine.EventType {
	return engine.AllEventTypes
}
