package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Presence is the per-player lifecycle state machine.
// It is not safe for concurrent use; all calls must be serialized by the caller.
type Presence struct {
	reg      *Registry
	sessions *Sessions
	gw       Gateway
	disp     *Dispatcher
	sched    Scheduler
	grace    time.Duration
	log      *zerolog.Logger
}

// NewPresence wires the state machine to its registries and delivery gateway.
func NewPresence(reg *Registry, sessions *Sessions, gw Gateway, sched Scheduler, grace time.Duration, logger *zerolog.Logger) *Presence {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Presence{
		reg:      reg,
		sessions: sessions,
		gw:       gw,
		disp:     NewDispatcher(gw, reg),
		sched:    sched,
		grace:    grace,
		log:      logger,
	}
}

// Register binds connID to the player called name in roomID, creating the player if needed.
// A new player is rejected with ErrRoomFull when the room is at capacity; an existing one
// only has its connection refreshed.
func (p *Presence) Register(connID, roomID, name, character string, fromLobby bool) (PlayerView, error) {
	p.reg.EnsureRoom(roomID)

	player := p.reg.FindPlayerByName(roomID, name)
	if player != nil {
		previous := player.ConnID
		player.ConnID = connID
		player.Connected = true
		player.State = StateConnected
		if previous != connID {
			p.dropSupersededSession(previous, roomID, name)
		}
		p.log.Info().
			Str("room_id", roomID).
			Str("player", name).
			Str("old_conn_id", previous).
			Str("conn_id", connID).
			Msg("player reconnected")
	} else {
		if character == "" {
			character = DefaultCharacter
		}
		player = &Player{
			Key:       uuid.NewString(),
			ConnID:    connID,
			Name:      name,
			Character: character,
			Health:    MaxHealth,
			State:     StateJoining,
		}
		if err := p.reg.AddPlayer(roomID, player); err != nil {
			cerr := roomFullError(roomID, p.reg.MaxPlayers())
			p.disp.Error(connID, cerr)
			p.log.Info().Str("room_id", roomID).Str("player", name).Msg("registration rejected, room full")
			return PlayerView{}, cerr
		}
		player.Connected = true
		player.State = StateConnected
		p.log.Info().Str("room_id", roomID).Str("player", name).Str("conn_id", connID).Msg("player joined")
	}

	p.sessions.Set(connID, Session{PlayerName: name, RoomID: roomID})
	p.gw.JoinRoomGroup(connID, roomID)

	// Registrations from in-game pages are navigation only and stay quiet.
	if fromLobby {
		p.disp.RoomSnapshot(roomID)
	}
	p.disp.RegisterOK(connID, roomID, player.Health)

	return player.View(), nil
}

// dropSupersededSession removes the session of a connection the player has moved away from.
func (p *Presence) dropSupersededSession(connID, roomID, name string) {
	session, ok := p.sessions.Get(connID)
	if ok && session.RoomID == roomID && session.PlayerName == name {
		p.sessions.Delete(connID)
	}
}

// Disconnect marks the player bound to connID as pending eviction and arms its grace timer.
// Nothing is broadcast; a reconnect inside the grace period is invisible to the room.
func (p *Presence) Disconnect(connID, reason string) {
	session, ok := p.sessions.Get(connID)
	if !ok {
		return
	}
	player := p.reg.FindPlayerByConnection(session.RoomID, connID)
	if player == nil {
		return
	}

	player.Connected = false
	player.State = StateDisconnectedPending
	p.log.Info().
		Str("room_id", session.RoomID).
		Str("player", player.Name).
		Str("conn_id", connID).
		Str("reason", reason).
		Dur("grace", p.grace).
		Msg("player disconnected, awaiting reconnect")

	exp := graceExpiry{key: player.Key, roomID: session.RoomID, connID: connID}
	p.sched.AfterFunc(p.grace, func() { p.expire(exp) })
}

// expire evicts the player if it is still waiting on the same disconnect.
func (p *Presence) expire(exp graceExpiry) {
	player := p.reg.FindPlayerByConnection(exp.roomID, exp.connID)
	if player == nil || player.Key != exp.key || player.State != StateDisconnectedPending {
		return
	}

	p.reg.RemovePlayer(exp.roomID, exp.connID)
	p.sessions.Delete(exp.connID)
	player.State = StateEvicted
	p.log.Info().Str("room_id", exp.roomID).Str("player", player.Name).Msg("player evicted after grace period")

	if _, ok := p.reg.Room(exp.roomID); !ok {
		p.log.Info().Str("room_id", exp.roomID).Msg("room removed, no players left")
		return
	}
	p.disp.RoomSnapshot(exp.roomID)
	p.disp.PlayerLeft(exp.roomID, player.Name)
}

// HealthUpdate applies delta to the first player called name, clamped to [MinHealth, MaxHealth].
// Unknown players are ignored.
func (p *Presence) HealthUpdate(name string, delta int) {
	player, roomID := p.reg.FindPlayerAnywhere(name)
	if player == nil {
		p.log.Debug().Str("player", name).Int("delta", delta).Msg("health update for unknown player ignored")
		return
	}

	previous := player.Health
	player.Health = clampHealth(player.Health + delta)
	p.log.Info().
		Str("room_id", roomID).
		Str("player", name).
		Int("from", previous).
		Int("to", player.Health).
		Int("delta", delta).
		Msg("health updated")

	p.disp.RoomSnapshot(roomID)
	p.disp.HealthChanged(roomID, name, player.Health, delta)
}

// QueryState sends the room snapshot to connID only. Unknown rooms produce nothing.
func (p *Presence) QueryState(connID, roomID string) {
	p.disp.SnapshotTo(connID, roomID)
}

// Navigate announces which page a player moved to. State is not touched.
func (p *Presence) Navigate(name, roomID, page string) {
	if _, ok := p.reg.Room(roomID); !ok {
		return
	}
	p.log.Debug().Str("room_id", roomID).Str("player", name).Str("page", page).Msg("player navigating")
	p.disp.PlayerNavigating(roomID, name, page)
}
