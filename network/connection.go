package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lixenwraith/crystal-snake/input"
)

// PeerID uniquely identifies a connected peer
type PeerID uint32

// Peer is one websocket client
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64 // UnixNano
	Dropped  atomic.Uint64

	conn         *websocket.Conn
	writeTimeout time.Duration

	// Send queue
	sendCh chan []byte

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

// newPeer creates a peer from an upgraded connection
func newPeer(id PeerID, conn *websocket.Conn, cfg *Config) *Peer {
	p := &Peer{
		ID:           id,
		Addr:         conn.RemoteAddr().String(),
		conn:         conn,
		writeTimeout: cfg.WriteTimeout,
		sendCh:       make(chan []byte, cfg.SendQueueSize),
		closeCh:      make(chan struct{}),
	}
	if cfg.ReadLimit > 0 {
		conn.SetReadLimit(cfg.ReadLimit)
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues an encoded message
// Returns false if the peer is closed or its queue is full
func (p *Peer) Send(data []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- data:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close initiates shutdown
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close()
	})
}

// Done is closed once the peer shuts down
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop decodes inbound messages until the connection fails
func (p *Peer) readLoop(handler func(PeerID, input.Action)) {
	defer p.Close()

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warningf("peer %d read: %v", p.ID, err)
			}
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())

		a, err := DecodeClientMessage(data)
		if err != nil {
			log.Debugf("peer %d: ignoring message %q: %v", p.ID, data, err)
			continue
		}
		if handler != nil {
			handler(p.ID, a)
		}
	}
}

// writeLoop sends queued messages
func (p *Peer) writeLoop() {
	defer p.Close()

	for {
		select {
		case <-p.closeCh:
			return
		case data := <-p.sendCh:
			if p.writeTimeout > 0 {
				_ = p.conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
			}
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Warningf("peer %d write: %v", p.ID, err)
				return
			}
		}
	}
}
