package core

// Session ties a live connection to the player it registered.
type Session struct {
	PlayerName string
	RoomID     string
}

// Sessions is the reverse index from connection id to (player, room).
// It never owns players; lookups always go back through the Registry.
type Sessions struct {
	byConn map[string]Session
}

// NewSessions creates an empty session directory.
func NewSessions() *Sessions {
	return &Sessions{byConn: make(map[string]Session)}
}

// Set binds connID to a player, replacing any earlier binding.
func (s *Sessions) Set(connID string, session Session) {
	s.byConn[connID] = session
}

// Get returns the session for connID.
func (s *Sessions) Get(connID string) (Session, bool) {
	session, ok := s.byConn[connID]
	return session, ok
}

// Delete drops the session for connID.
func (s *Sessions) Delete(connID string) {
	delete(s.byConn, connID)
}

// Len returns the number of tracked connections.
func (s *Sessions) Len() int {
	return len(s.byConn)
}
