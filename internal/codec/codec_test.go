package codec

import (
	"encoding/json"
	"testing"
)

func TestDecodeClientRejectsMissingType(t *testing.T) {
	if _, err := DecodeClient([]byte(`{"payload":{}}`)); err == nil {
		t.Fatal("expected error for envelope without type")
	}
	if _, err := DecodeClient([]byte(`not json`)); err == nil {
		t.Fatal("expected error for malformed envelope")
	}
}

func TestDecodePlayCard(t *testing.T) {
	env, err := DecodeClient([]byte(`{"type":"play_card","payload":{"player_id":"1234","card_index":2}}`))
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Type != EventPlayCard {
		t.Fatalf("type = %q, want %q", env.Type, EventPlayCard)
	}
	req, err := DecodePlayCard(env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if req.PlayerID != "1234" || req.CardIndex != 2 {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodeJoinEmptyPayload(t *testing.T) {
	env, err := DecodeClient([]byte(`{"type":"join"}`))
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	req, err := DecodeJoin(env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if req.PlayerID != "" || req.ResumeToken != "" {
		t.Fatalf("expected empty join request, got %+v", req)
	}
}

func TestEncodePlayerConnectedOmitsEmptyCredentials(t *testing.T) {
	data, err := EncodePlayerConnected(3, PlayerConnected{TotalPlayers: 2})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var env struct {
		Type    string          `json:"type"`
		Seq     uint64          `json:"seq"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Type != EventPlayerConnected || env.Seq != 3 {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	var payload map[string]any
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if _, ok := payload["resume_token"]; ok {
		t.Fatal("resume_token should be omitted for broadcast occupancy messages")
	}
	if payload["total_players"].(float64) != 2 {
		t.Fatalf("total_players = %v, want 2", payload["total_players"])
	}
}
