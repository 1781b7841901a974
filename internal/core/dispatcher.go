package core

import "fmt"

const (
	noticeLeftRoom   = "%s abandonó la sala"
	noticeNavigation = "%s está en %s"
)

// Dispatcher turns state changes into events and fans them out through a Gateway.
type Dispatcher struct {
	gw  Gateway
	reg *Registry
}

// NewDispatcher creates a dispatcher reading membership from reg.
func NewDispatcher(gw Gateway, reg *Registry) *Dispatcher {
	return &Dispatcher{gw: gw, reg: reg}
}

// RoomSnapshot broadcasts the room's full player list to its group.
func (d *Dispatcher) RoomSnapshot(roomID string) {
	players := d.reg.Snapshot(roomID)
	if players == nil {
		return
	}
	d.gw.SendToRoom(roomID, &Event{Kind: EventRoomSnapshot, Room: roomID, Players: players})
}

// SnapshotTo sends the room's player list to a single connection.
func (d *Dispatcher) SnapshotTo(connID, roomID string) {
	players := d.reg.Snapshot(roomID)
	if players == nil {
		return
	}
	d.gw.SendTo(connID, &Event{Kind: EventRoomSnapshot, Room: roomID, Players: players})
}

// RegisterOK confirms a registration to the registering connection.
func (d *Dispatcher) RegisterOK(connID, roomID string, health int) {
	d.gw.SendTo(connID, &Event{
		Kind:    EventRegisterOK,
		Room:    roomID,
		Health:  health,
		Players: d.reg.Snapshot(roomID),
	})
}

// HealthChanged tells the room about a single player's new health.
func (d *Dispatcher) HealthChanged(roomID, player string, health, delta int) {
	d.gw.SendToRoom(roomID, &Event{
		Kind:   EventHealthChanged,
		Room:   roomID,
		Player: player,
		Health: health,
		Delta:  delta,
	})
}

// SystemNotice broadcasts free text to the room.
func (d *Dispatcher) SystemNotice(roomID, text string) {
	d.gw.SendToRoom(roomID, &Event{Kind: EventSystemNotice, Room: roomID, Text: text})
}

// PlayerLeft announces an eviction to the remaining members.
func (d *Dispatcher) PlayerLeft(roomID, player string) {
	d.SystemNotice(roomID, fmt.Sprintf(noticeLeftRoom, player))
}

// PlayerNavigating announces which page a player is on.
func (d *Dispatcher) PlayerNavigating(roomID, player, page string) {
	d.SystemNotice(roomID, fmt.Sprintf(noticeNavigation, player, page))
}

// Error reports a domain error to a single connection.
func (d *Dispatcher) Error(connID string, err *CoreError) {
	d.gw.SendTo(connID, &Event{Kind: EventError, Error: err})
}
