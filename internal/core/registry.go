package core

import "slices"

// DefaultMaxPlayers is the room capacity used when none is configured.
const DefaultMaxPlayers = 4

// Room is an ordered group of players sharing a broadcast scope.
type Room struct {
	ID      string
	players []*Player
}

// Len returns the number of players in the room.
func (r *Room) Len() int {
	return len(r.players)
}

// Registry maps room ids to rooms. Rooms are never kept empty.
// It is not safe for concurrent use; the Hub goroutine owns it.
type Registry struct {
	rooms      map[string]*Room
	order      []string // creation order, used for cross-room name lookups
	maxPlayers int
}

// NewRegistry creates an empty registry with the given room capacity.
func NewRegistry(maxPlayers int) *Registry {
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}
	return &Registry{
		rooms:      make(map[string]*Room),
		maxPlayers: maxPlayers,
	}
}

// MaxPlayers returns the room capacity.
func (r *Registry) MaxPlayers() int {
	return r.maxPlayers
}

// EnsureRoom returns the room with the given id, creating it if absent.
func (r *Registry) EnsureRoom(roomID string) *Room {
	if room, ok := r.rooms[roomID]; ok {
		return room
	}
	room := &Room{ID: roomID}
	r.rooms[roomID] = room
	r.order = append(r.order, roomID)
	return room
}

// Room returns the room with the given id, if any.
func (r *Registry) Room(roomID string) (*Room, bool) {
	room, ok := r.rooms[roomID]
	return room, ok
}

// AddPlayer appends p to the room, enforcing capacity.
func (r *Registry) AddPlayer(roomID string, p *Player) error {
	room := r.EnsureRoom(roomID)
	if room.Len() >= r.maxPlayers {
		return ErrRoomFull
	}
	p.RoomID = roomID
	room.players = append(room.players, p)
	return nil
}

// FindPlayerByName returns the player called name in roomID, or nil.
func (r *Registry) FindPlayerByName(roomID, name string) *Player {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	for _, p := range room.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindPlayerByConnection returns the player currently bound to connID in roomID, or nil.
func (r *Registry) FindPlayerByConnection(roomID, connID string) *Player {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	for _, p := range room.players {
		if p.ConnID == connID {
			return p
		}
	}
	return nil
}

// FindPlayerAnywhere returns the first player called name, scanning rooms in creation order.
// Names are not globally unique, so the first match wins.
func (r *Registry) FindPlayerAnywhere(name string) (*Player, string) {
	for _, roomID := range r.order {
		if p := r.FindPlayerByName(roomID, name); p != nil {
			return p, roomID
		}
	}
	return nil, ""
}

// RemovePlayer removes the player bound to connID from roomID and returns it.
// The room is deleted once it becomes empty.
func (r *Registry) RemovePlayer(roomID, connID string) *Player {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	idx := slices.IndexFunc(room.players, func(p *Player) bool { return p.ConnID == connID })
	if idx < 0 {
		return nil
	}
	removed := room.players[idx]
	room.players = slices.Delete(room.players, idx, idx+1)
	if room.Len() == 0 {
		r.deleteRoom(roomID)
	}
	return removed
}

func (r *Registry) deleteRoom(roomID string) {
	delete(r.rooms, roomID)
	if idx := slices.Index(r.order, roomID); idx >= 0 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
}

// Snapshot returns copies of the room's players in order, or nil if the room is absent.
func (r *Registry) Snapshot(roomID string) []PlayerView {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	views := make([]PlayerView, 0, len(room.players))
	for _, p := range room.players {
		views = append(views, p.View())
	}
	return views
}

// RoomCount returns the number of live rooms.
func (r *Registry) RoomCount() int {
	return len(r.rooms)
}

// PlayerCount returns the number of players across all rooms.
func (r *Registry) PlayerCount() int {
	total := 0
	for _, room := range r.rooms {
		total += room.Len()
	}
	return total
}
