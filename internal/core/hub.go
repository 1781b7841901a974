package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Options tune a Hub. Zero values fall back to defaults.
type Options struct {
	MaxPlayers  int
	GracePeriod time.Duration
	// Scheduler arms grace timers; TimerScheduler is used when nil.
	Scheduler Scheduler
}

// Stats is a read-only view of the hub's bookkeeping.
type Stats struct {
	Rooms    int
	Players  int
	Sessions int
	Clients  int
}

// inbound is a command or, when leave is set, the end of a client's connection.
type inbound struct {
	client *Client
	cmd    *Command
	leave  bool
	reason string
}

// Hub owns all presence state and serializes every mutation on the goroutine running Run.
type Hub struct {
	registry *Registry
	sessions *Sessions
	gateway  *ClientGateway
	presence *Presence
	log      *zerolog.Logger

	register chan *Client
	commands chan inbound
	tasks    chan func()
	stats    chan chan Stats
	done     chan struct{}
}

// NewHub creates a hub. Call Run to start processing.
func NewHub(opts Options, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = TimerScheduler{}
	}

	h := &Hub{
		registry: NewRegistry(opts.MaxPlayers),
		sessions: NewSessions(),
		gateway:  NewClientGateway(logger),
		log:      logger,
		register: make(chan *Client, 64),
		commands: make(chan inbound, 256),
		tasks:    make(chan func(), 64),
		stats:    make(chan chan Stats),
		done:     make(chan struct{}),
	}
	h.presence = NewPresence(h.registry, h.sessions, h.gateway, hubScheduler{base: sched, hub: h}, opts.GracePeriod, logger)
	return h
}

// Run processes client lifecycle, commands and timers until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	h.log.Info().
		Int("max_players", h.registry.MaxPlayers()).
		Dur("grace", h.presence.grace).
		Msg("hub started")

	for {
		select {
		case <-ctx.Done():
			h.log.Info().Msg("hub stopped")
			return
		case c := <-h.register:
			h.gateway.Add(c)
			go h.pump(c)
			h.log.Debug().Str("conn_id", c.ID).Msg("client connected")
		case in := <-h.commands:
			if in.leave {
				h.gateway.Remove(in.client)
				h.presence.Disconnect(in.client.ID, in.reason)
				continue
			}
			h.handle(in.client, in.cmd)
		case fn := <-h.tasks:
			fn()
		case reply := <-h.stats:
			reply <- Stats{
				Rooms:    h.registry.RoomCount(),
				Players:  h.registry.PlayerCount(),
				Sessions: h.sessions.Len(),
				Clients:  len(h.gateway.clients),
			}
		}
	}
}

// RegisterClient makes a new connection known to the hub.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient reports that a connection ended. Commands already sent are
// processed first; then the player bound to the connection, if any, enters its
// grace period. The caller must not send on c.Commands afterwards.
func (h *Hub) UnregisterClient(c *Client, reason string) {
	c.close(reason)
}

// Stats returns current counts. It is safe to call from any goroutine.
func (h *Hub) Stats(ctx context.Context) (Stats, error) {
	reply := make(chan Stats, 1)
	select {
	case h.stats <- reply:
	case <-h.done:
		return Stats{}, ErrHubStopped
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

// pump forwards a client's commands into the hub, in order, followed by its departure.
func (h *Hub) pump(c *Client) {
	for {
		select {
		case cmd, ok := <-c.Commands:
			if !ok {
				h.send(inbound{client: c, leave: true, reason: c.reason})
				return
			}
			if !h.send(inbound{client: c, cmd: cmd}) {
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) send(in inbound) bool {
	select {
	case h.commands <- in:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) enqueue(fn func()) {
	select {
	case h.tasks <- fn:
	case <-h.done:
	}
}

func (h *Hub) handle(c *Client, cmd *Command) {
	if cmd == nil {
		return
	}
	switch cmd.Kind {
	case CommandRegister:
		if _, err := h.presence.Register(c.ID, cmd.Room, cmd.Player, cmd.Character, cmd.FromLobby); err != nil {
			h.log.Debug().Err(err).Str("conn_id", c.ID).Str("room", cmd.Room).Msg("register rejected")
		}
	case CommandHealthUpdate:
		h.presence.HealthUpdate(cmd.Player, cmd.Delta)
	case CommandQueryState:
		h.presence.QueryState(c.ID, cmd.Room)
	case CommandNavigate:
		h.presence.Navigate(cmd.Player, cmd.Room, cmd.Page)
	default:
		h.gateway.SendTo(c.ID, &Event{
			Kind:  EventError,
			Error: coreError(ErrCodeBadRequest, "unknown command", nil),
		})
	}
}
