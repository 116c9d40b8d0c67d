package network

import "time"

// Config holds websocket bridge configuration
type Config struct {
	// Address to bind, e.g. ":7777"
	Address string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout time.Duration

	// ReadLimit caps the size of one inbound message in bytes
	ReadLimit int64

	// SendQueueSize bounds the per-peer outbound queue; events beyond it are dropped
	SendQueueSize int
}

// DefaultConfig returns defaults suitable for a local spectator page
func DefaultConfig() *Config {
	return &Config{
		Address:       ":7777",
		MaxPeers:      16,
		WriteTimeout:  5 * time.Second,
		ReadLimit:     4 * 1024,
		SendQueueSize: 256,
	}
}
