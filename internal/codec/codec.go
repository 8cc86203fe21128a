package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"campus-crisis/crisis"
)

// Client event types.
const (
	EventJoin        = "join"
	EventPlayCard    = "play_card"
	EventRestartGame = "restart_game"
)

// Server event types.
const (
	EventPlayerConnected = "player_connected"
	EventGameState       = "game_state"
	EventError           = "error"
)

// ClientEnvelope is an inbound message from a browser client.
type ClientEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinRequest optionally reclaims a previous seat within the grace period.
type JoinRequest struct {
	PlayerID    string `json:"player_id,omitempty"`
	ResumeToken string `json:"resume_token,omitempty"`
}

type PlayCardRequest struct {
	PlayerID  string `json:"player_id"`
	CardIndex int    `json:"card_index"`
}

// ServerEnvelope wraps every outbound message with ordering metadata.
// Seq orders frames within a single emitter's stream: game frames carry
// the room's sequence, while transport-level error frames (decode
// failures, server not ready) carry the gateway's own counter. Clients
// must treat Seq as per-stream ordering, not a globally unique id.
type ServerEnvelope struct {
	Type    string `json:"type"`
	Seq     uint64 `json:"seq"`
	TsMs    int64  `json:"ts_ms"`
	Payload any    `json:"payload"`
}

// PlayerConnected reports occupancy. PlayerID and ResumeToken are set only
// on the message addressed to the joining player itself.
type PlayerConnected struct {
	PlayerID     string `json:"player_id,omitempty"`
	ResumeToken  string `json:"resume_token,omitempty"`
	TotalPlayers int    `json:"total_players"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

func DecodeClient(data []byte) (ClientEnvelope, error) {
	var env ClientEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ClientEnvelope{}, fmt.Errorf("decode client envelope: %w", err)
	}
	if env.Type == "" {
		return ClientEnvelope{}, fmt.Errorf("client envelope missing type")
	}
	return env, nil
}

func DecodeJoin(env ClientEnvelope) (JoinRequest, error) {
	var req JoinRequest
	if len(env.Payload) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(env.Payload, &req); err != nil {
		return JoinRequest{}, fmt.Errorf("decode join payload: %w", err)
	}
	return req, nil
}

func DecodePlayCard(env ClientEnvelope) (PlayCardRequest, error) {
	var req PlayCardRequest
	if err := json.Unmarshal(env.Payload, &req); err != nil {
		return PlayCardRequest{}, fmt.Errorf("decode play_card payload: %w", err)
	}
	return req, nil
}

func wrap(eventType string, seq uint64, payload any) ([]byte, error) {
	return json.Marshal(ServerEnvelope{
		Type:    eventType,
		Seq:     seq,
		TsMs:    time.Now().UnixMilli(),
		Payload: payload,
	})
}

func EncodePlayerConnected(seq uint64, msg PlayerConnected) ([]byte, error) {
	return wrap(EventPlayerConnected, seq, msg)
}

func EncodeGameState(seq uint64, view crisis.PlayerView) ([]byte, error) {
	return wrap(EventGameState, seq, view)
}

func EncodeError(seq uint64, message string) ([]byte, error) {
	return wrap(EventError, seq, ErrorMessage{Message: message})
}
