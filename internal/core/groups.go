package core

import "github.com/rs/zerolog"

// Gateway is the delivery surface the core broadcasts through.
type Gateway interface {
	SendTo(connID string, event *Event)
	SendToRoom(roomID string, event *Event)
	JoinRoomGroup(connID, roomID string)
}

// group is the set of connections subscribed to a room's broadcasts.
type group struct {
	clients map[*Client]struct{}
}

func newGroup() *group {
	return &group{clients: make(map[*Client]struct{})}
}

// ClientGateway delivers events to in-process clients grouped by room.
// It is owned by the Hub goroutine and is not safe for concurrent use.
type ClientGateway struct {
	clients map[string]*Client
	groups  map[string]*group
	log     *zerolog.Logger
}

// NewClientGateway creates a gateway with no clients.
func NewClientGateway(logger *zerolog.Logger) *ClientGateway {
	return &ClientGateway{
		clients: make(map[string]*Client),
		groups:  make(map[string]*group),
		log:     logger,
	}
}

// Add makes the client addressable by its id.
func (g *ClientGateway) Add(c *Client) {
	g.clients[c.ID] = c
}

// Remove forgets the client and drops it from every group.
func (g *ClientGateway) Remove(c *Client) {
	delete(g.clients, c.ID)
	for roomID, grp := range g.groups {
		delete(grp.clients, c)
		if len(grp.clients) == 0 {
			delete(g.groups, roomID)
		}
	}
}

// SendTo delivers an event to a single connection.
func (g *ClientGateway) SendTo(connID string, event *Event) {
	c, ok := g.clients[connID]
	if !ok {
		return
	}
	g.deliver(c, event)
}

// SendToRoom delivers an event to every connection in the room's group.
func (g *ClientGateway) SendToRoom(roomID string, event *Event) {
	grp, ok := g.groups[roomID]
	if !ok {
		return
	}
	for c := range grp.clients {
		g.deliver(c, event)
	}
}

// JoinRoomGroup subscribes a connection to a room's broadcasts. Joining twice is a no-op.
func (g *ClientGateway) JoinRoomGroup(connID, roomID string) {
	c, ok := g.clients[connID]
	if !ok {
		return
	}
	grp, ok := g.groups[roomID]
	if !ok {
		grp = newGroup()
		g.groups[roomID] = grp
	}
	grp.clients[c] = struct{}{}
}

// GroupSize returns the number of connections subscribed to roomID.
func (g *ClientGateway) GroupSize(roomID string) int {
	if grp, ok := g.groups[roomID]; ok {
		return len(grp.clients)
	}
	return 0
}

func (g *ClientGateway) deliver(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
		// Drop if slow consumer.
		g.log.Warn().Str("conn_id", c.ID).Stringer("event", event.Kind).Msg("event dropped, client buffer full")
	}
}
