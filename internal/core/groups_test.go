package core

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGatewayGroupDelivery(t *testing.T) {
	logger := zerolog.Nop()
	gw := NewClientGateway(&logger)

	a := NewClient("a", 4)
	b := NewClient("b", 4)
	outsider := NewClient("x", 4)
	gw.Add(a)
	gw.Add(b)
	gw.Add(outsider)

	gw.JoinRoomGroup("a", "R1")
	gw.JoinRoomGroup("b", "R1")
	gw.JoinRoomGroup("b", "R1")
	gw.JoinRoomGroup("ghost", "R1")
	assert.Equal(t, 2, gw.GroupSize("R1"))

	gw.SendToRoom("R1", &Event{Kind: EventSystemNotice, Text: "hi"})
	assert.Len(t, a.Events, 1)
	assert.Len(t, b.Events, 1)
	assert.Empty(t, outsider.Events)

	gw.SendTo("x", &Event{Kind: EventRoomSnapshot})
	require.Len(t, outsider.Events, 1)

	gw.SendToRoom("nowhere", &Event{Kind: EventSystemNotice})
	gw.SendTo("ghost", &Event{Kind: EventSystemNotice})
}

func TestClientGatewayRemoveLeavesGroups(t *testing.T) {
	logger := zerolog.Nop()
	gw := NewClientGateway(&logger)

	a := NewClient("a", 4)
	gw.Add(a)
	gw.JoinRoomGroup("a", "R1")
	gw.JoinRoomGroup("a", "R2")

	gw.Remove(a)
	assert.Zero(t, gw.GroupSize("R1"))
	assert.Zero(t, gw.GroupSize("R2"))

	gw.SendTo("a", &Event{Kind: EventSystemNotice})
	assert.Empty(t, a.Events)
}

func TestClientGatewayDropsWhenBufferFull(t *testing.T) {
	logger := zerolog.Nop()
	gw := NewClientGateway(&logger)

	a := NewClient("a", 1)
	gw.Add(a)

	gw.SendTo("a", &Event{Kind: EventSystemNotice, Text: "first"})
	gw.SendTo("a", &Event{Kind: EventSystemNotice, Text: "second"})

	require.Len(t, a.Events, 1)
	assert.Equal(t, "first", (<-a.Events).Text)
}
