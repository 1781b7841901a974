package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeRegister     = "register"
	InboundTypeHealthUpdate = "health_update"
	InboundTypeQueryState   = "query_state"
	InboundTypeNavigation   = "navigation"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventRegisterOK    = "register_ok"
	EventRoomSnapshot  = "room_snapshot"
	EventHealthChanged = "health_changed"
	EventSystemNotice  = "system_notice"
)

// RegisterData binds the connection to a player in a room.
// Pages other than the lobby register with FromLobby unset.
type RegisterData struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
	Character  string `json:"character,omitempty"`
	FromLobby  bool   `json:"fromLobby,omitempty"`
}

// HealthUpdateData applies a signed delta to a player's health.
type HealthUpdateData struct {
	PlayerName string `json:"playerName"`
	Delta      int    `json:"delta"`
}

// QueryStateData requests the current snapshot of a room.
type QueryStateData struct {
	RoomID string `json:"roomId"`
}

// NavigationData announces the page a player moved to.
type NavigationData struct {
	PlayerName string `json:"playerName"`
	RoomID     string `json:"roomId"`
	Page       string `json:"page"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Player is a room member as seen by clients.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Health    int    `json:"health"`
	RoomID    string `json:"roomId"`
	Connected bool   `json:"connected"`
}

// EventRegisterOKData answers a successful registration.
type EventRegisterOKData struct {
	RoomID  string   `json:"roomId"`
	Health  int      `json:"health"`
	Players []Player `json:"players"`
}

// EventRoomSnapshotData is the full ordered player list of a room.
type EventRoomSnapshotData struct {
	RoomID  string   `json:"roomId"`
	Players []Player `json:"players"`
}

// EventHealthChangedData lets clients animate a single health change.
type EventHealthChangedData struct {
	PlayerName string `json:"playerName"`
	NewHealth  int    `json:"newHealth"`
	Delta      int    `json:"delta"`
}

// EventSystemNoticeData is a free-text room announcement.
type EventSystemNoticeData struct {
	RoomID string `json:"roomId"`
	Text   string `json:"text"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
