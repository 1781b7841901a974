package core

const (
	// MinHealth and MaxHealth bound Player.Health.
	MinHealth = 0
	MaxHealth = 100

	// DefaultCharacter is used when a player registers without choosing one.
	DefaultCharacter = "ps1.png"
)

// PresenceState describes where a player is in its connection lifecycle.
type PresenceState int

const (
	// StateJoining is held only while a registration is being applied.
	StateJoining PresenceState = iota
	// StateConnected means the player has a live connection.
	StateConnected
	// StateDisconnectedPending means the connection dropped and a grace timer is armed.
	StateDisconnectedPending
	// StateEvicted is terminal; the player is no longer in any room.
	StateEvicted
)

func (s PresenceState) String() string {
	switch s {
	case StateJoining:
		return "joining"
	case StateConnected:
		return "connected"
	case StateDisconnectedPending:
		return "disconnected_pending"
	case StateEvicted:
		return "evicted"
	default:
		return "unknown"
	}
}

// Player is a room participant. Records are owned by the Registry.
type Player struct {
	// Key is a stable surrogate identity; ConnID changes on every reconnect.
	Key       string
	ConnID    string
	Name      string
	Character string
	Health    int
	RoomID    string
	Connected bool
	State     PresenceState
}

// PlayerView is an immutable copy of a player, safe to hand to other goroutines.
type PlayerView struct {
	ID        string
	Name      string
	Character string
	Health    int
	RoomID    string
	Connected bool
}

// View copies the player's public fields.
func (p *Player) View() PlayerView {
	return PlayerView{
		ID:        p.ConnID,
		Name:      p.Name,
		Character: p.Character,
		Health:    p.Health,
		RoomID:    p.RoomID,
		Connected: p.Connected,
	}
}

func clampHealth(v int) int {
	return max(MinHealth, min(MaxHealth, v))
}
