package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryEnsureRoomIsIdempotent(t *testing.T) {
	reg := NewRegistry(4)

	first := reg.EnsureRoom("R1")
	second := reg.EnsureRoom("R1")

	assert.Same(t, first, second)
	assert.Equal(t, 1, reg.RoomCount())
}

func TestRegistryAddPlayerEnforcesCapacity(t *testing.T) {
	reg := NewRegistry(2)

	require.NoError(t, reg.AddPlayer("R1", &Player{Name: "a", ConnID: "c1"}))
	require.NoError(t, reg.AddPlayer("R1", &Player{Name: "b", ConnID: "c2"}))

	err := reg.AddPlayer("R1", &Player{Name: "c", ConnID: "c3"})
	require.ErrorIs(t, err, ErrRoomFull)

	room, ok := reg.Room("R1")
	require.True(t, ok)
	assert.Equal(t, 2, room.Len())
}

func TestRegistryLookups(t *testing.T) {
	reg := NewRegistry(4)
	require.NoError(t, reg.AddPlayer("R1", &Player{Name: "alice", ConnID: "c1"}))

	p := reg.FindPlayerByName("R1", "alice")
	require.NotNil(t, p)
	assert.Equal(t, "R1", p.RoomID)

	assert.Same(t, p, reg.FindPlayerByConnection("R1", "c1"))
	assert.Nil(t, reg.FindPlayerByName("R1", "bob"))
	assert.Nil(t, reg.FindPlayerByName("ghost", "alice"))
	assert.Nil(t, reg.FindPlayerByConnection("R1", "c2"))
}

func TestRegistryRemoveLastPlayerDeletesRoom(t *testing.T) {
	reg := NewRegistry(4)
	require.NoError(t, reg.AddPlayer("R1", &Player{Name: "alice", ConnID: "c1"}))
	require.NoError(t, reg.AddPlayer("R1", &Player{Name: "bob", ConnID: "c2"}))

	removed := reg.RemovePlayer("R1", "c1")
	require.NotNil(t, removed)
	assert.Equal(t, "alice", removed.Name)
	assert.Equal(t, 1, reg.RoomCount())

	reg.RemovePlayer("R1", "c2")
	_, ok := reg.Room("R1")
	assert.False(t, ok)
	assert.Zero(t, reg.RoomCount())
	assert.Nil(t, reg.Snapshot("R1"))

	assert.Nil(t, reg.RemovePlayer("R1", "c2"))
}

func TestRegistrySnapshotPreservesOrderAndCopies(t *testing.T) {
	reg := NewRegistry(4)
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, reg.AddPlayer("R1", &Player{Name: name, ConnID: "conn-" + name, Health: 100}))
	}

	snap := reg.Snapshot("R1")
	require.Len(t, snap, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{snap[0].Name, snap[1].Name, snap[2].Name})

	reg.FindPlayerByName("R1", "a").Health = 10
	assert.Equal(t, 100, snap[0].Health)
}

func TestRegistryFindPlayerAnywhereFirstMatchWins(t *testing.T) {
	reg := NewRegistry(4)
	require.NoError(t, reg.AddPlayer("zeta", &Player{Name: "alice", ConnID: "c1"}))
	require.NoError(t, reg.AddPlayer("alpha", &Player{Name: "alice", ConnID: "c2"}))

	p, roomID := reg.FindPlayerAnywhere("alice")
	require.NotNil(t, p)
	assert.Equal(t, "zeta", roomID)
	assert.Equal(t, "c1", p.ConnID)

	reg.RemovePlayer("zeta", "c1")
	p, roomID = reg.FindPlayerAnywhere("alice")
	require.NotNil(t, p)
	assert.Equal(t, "alpha", roomID)

	p, roomID = reg.FindPlayerAnywhere("nobody")
	assert.Nil(t, p)
	assert.Empty(t, roomID)
}
