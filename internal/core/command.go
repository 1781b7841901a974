package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandRegister binds the connection to a named player in a room.
	CommandRegister CommandKind = iota
	// CommandHealthUpdate applies a health delta to a player.
	CommandHealthUpdate
	// CommandQueryState asks for the current room snapshot.
	CommandQueryState
	// CommandNavigate announces which page a player is on.
	CommandNavigate
)

// Command represents an action requested by a client.
type Command struct {
	Kind      CommandKind
	Room      string
	Player    string
	Character string
	FromLobby bool
	Delta     int
	Page      string
}
