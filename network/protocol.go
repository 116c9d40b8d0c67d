package network

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/lixenwraith/crystal-snake/engine"
	"github.com/lixenwraith/crystal-snake/input"
)

var (
	ErrMaxPeers       = errors.New("max peers reached")
	ErrUnknownMessage = errors.New("unknown message")
)

// Envelope is one outbound JSON message
type Envelope struct {
	Type    string `json:"type"`
	Frame   int64  `json:"frame"`
	Session string `json:"session"`
	Payload any    `json:"payload,omitempty"`
}

// wireNames maps event types to the names peers see
var wireNames = map[engine.EventType]string{
	engine.EventStarted:      "started",
	engine.EventRender:       "render",
	engine.EventScoreChanged: "score_changed",
	engine.EventFoodEaten:    "food_eaten",
	engine.EventGameOver:     "game_over",
	engine.EventBoardFull:    "board_full",
	engine.EventStopped:      "stopped",
}

// WireName returns the JSON type name of t
func WireName(t engine.EventType) string {
	if name, ok := wireNames[t]; ok {
		return name
	}
	return strings.ToLower(t.String())
}

// EncodeEvent marshals ev into an envelope
func EncodeEvent(ev engine.GameEvent) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:    WireName(ev.Type),
		Frame:   ev.Frame,
		Session: ev.Session,
		Payload: ev.Payload,
	})
}

// ClientMessage is one inbound JSON message; exactly one field is expected
type ClientMessage struct {
	Direction string `json:"direction,omitempty"`
	Command   string `json:"command,omitempty"`
}

// DecodeClientMessage resolves an inbound message to a player action
func DecodeClientMessage(data []byte) (input.Action, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return input.ActionNone, err
	}

	if msg.Direction != "" {
		if a := input.ParseDirectionMessage(msg.Direction); a != input.ActionNone {
			return a, nil
		}
		return input.ActionNone, ErrUnknownMessage
	}
	if a := input.ParseAction(msg.Command); a != input.ActionNone {
		return a, nil
	}
	return input.ActionNone, ErrUnknownMessage
}
