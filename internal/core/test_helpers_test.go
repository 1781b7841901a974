package core

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// sent is one delivery observed by recordingGateway.
type sent struct {
	connID string
	roomID string
	event  *Event
}

// recordingGateway captures deliveries instead of sending them.
type recordingGateway struct {
	direct []sent
	room   []sent
	joins  []sent
}

func (g *recordingGateway) SendTo(connID string, event *Event) {
	g.direct = append(g.direct, sent{connID: connID, event: event})
}

func (g *recordingGateway) SendToRoom(roomID string, event *Event) {
	g.room = append(g.room, sent{roomID: roomID, event: event})
}

func (g *recordingGateway) JoinRoomGroup(connID, roomID string) {
	g.joins = append(g.joins, sent{connID: connID, roomID: roomID})
}

func (g *recordingGateway) roomEvents(kind EventKind) []*Event {
	var out []*Event
	for _, s := range g.room {
		if s.event.Kind == kind {
			out = append(out, s.event)
		}
	}
	return out
}

func (g *recordingGateway) directEvents(connID string, kind EventKind) []*Event {
	var out []*Event
	for _, s := range g.direct {
		if s.connID == connID && s.event.Kind == kind {
			out = append(out, s.event)
		}
	}
	return out
}

func (g *recordingGateway) reset() {
	g.direct, g.room, g.joins = nil, nil, nil
}

// manualScheduler holds callbacks until the test advances its clock.
type manualScheduler struct {
	now     time.Duration
	pending []scheduled
}

type scheduled struct {
	at time.Duration
	fn func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, scheduled{at: s.now + d, fn: fn})
}

// Advance moves time forward and runs every callback that became due, in schedule order.
func (s *manualScheduler) Advance(d time.Duration) {
	s.now += d
	var keep []scheduled
	var due []scheduled
	for _, item := range s.pending {
		if item.at <= s.now {
			due = append(due, item)
		} else {
			keep = append(keep, item)
		}
	}
	s.pending = keep
	for _, item := range due {
		item.fn()
	}
}
