package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRegisterOK confirms a registration to the registering connection.
	EventRegisterOK EventKind = iota
	// EventRoomSnapshot carries the full ordered player list of a room.
	EventRoomSnapshot
	// EventHealthChanged notifies a room that one player's health changed.
	EventHealthChanged
	// EventSystemNotice is a free-text announcement to a room.
	EventSystemNotice
	// EventError notifies a client about a domain error.
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventRegisterOK:
		return "register_ok"
	case EventRoomSnapshot:
		return "room_snapshot"
	case EventHealthChanged:
		return "health_changed"
	case EventSystemNotice:
		return "system_notice"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is sent to clients to describe what happened in the system.
// Events are shared between recipients and must not be modified after dispatch.
type Event struct {
	Kind    EventKind
	Room    string
	Players []PlayerView // EventRegisterOK, EventRoomSnapshot
	Player  string       // EventHealthChanged
	Health  int          // EventRegisterOK, EventHealthChanged
	Delta   int          // EventHealthChanged
	Text    string       // EventSystemNotice
	Error   *CoreError
}
