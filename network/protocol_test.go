package network

import (
	"encoding/json"
	"testing"

	"github.com/lixenwraith/crystal-snake/engine"
	"github.com/lixenwraith/crystal-snake/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRender(t *testing.T) {
	data, err := EncodeEvent(engine.GameEvent{
		Type:    engine.EventRender,
		Frame:   9,
		Session: "s1",
		Payload: engine.RenderPayload{
			Segments: []engine.Point{{X: 40, Y: 20}, {X: 20, Y: 20}},
			Food:     engine.Point{X: 100, Y: 60},
			Active:   true,
		},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "render",
		"frame": 9,
		"session": "s1",
		"payload": {"segments": [{"x": 40, "y": 20}, {"x": 20, "y": 20}], "food": {"x": 100, "y": 60}, "active": true}
	}`, string(data))
}

func TestEncodeGameOver(t *testing.T) {
	data, err := EncodeEvent(engine.GameEvent{
		Type:    engine.EventGameOver,
		Payload: engine.GameOverPayload{Cause: engine.CauseWall, Reason: engine.CauseWall.String(), Score: 4, Length: 5},
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "game_over", m["type"])
	payload := m["payload"].(map[string]any)
	assert.Equal(t, engine.CauseWall.String(), payload["cause"])
	assert.Equal(t, float64(4), payload["score"])
}

func TestEncodeWithoutPayload(t *testing.T) {
	data, err := EncodeEvent(engine.GameEvent{Type: engine.EventStarted, Session: "s2"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"started","frame":0,"session":"s2"}`, string(data))
}

func TestWireNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, et := range engine.AllEventTypes {
		name := WireName(et)
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate wire name %s", name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", WireName(engine.EventType(99)))
}

func TestDecodeClientMessage(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		want    input.Action
		wantErr bool
	}{
		{"direction", `{"direction":"up"}`, input.ActionUp, false},
		{"direction case", `{"direction":"RIGHT"}`, input.ActionRight, false},
		{"start", `{"command":"start"}`, input.ActionStart, false},
		{"pause", `{"command":"pause"}`, input.ActionPause, false},
		{"difficulty", `{"command":"hard"}`, input.ActionHard, false},
		{"bad direction", `{"direction":"north"}`, input.ActionNone, true},
		{"bad command", `{"command":"fly"}`, input.ActionNone, true},
		{"empty", `{}`, input.ActionNone, true},
		{"malformed", `{"direction":`, input.ActionNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeClientMessage([]byte(tt.msg))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
