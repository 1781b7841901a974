package core

import (
	"context"
	"fmt"
	"testing"
)

func benchmarkHealthBroadcast(b *testing.B, players int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(Options{MaxPlayers: players}, nil)
	go hub.Run(ctx)

	clients := make([]*Client, 0, players)
	for i := range players {
		c := NewClient(fmt.Sprintf("c%d", i), 64)
		hub.RegisterClient(c)
		c.Commands <- &Command{Kind: CommandRegister, Room: "bench", Player: fmt.Sprintf("p%d", i)}
		<-c.Events
		clients = append(clients, c)
	}

	// Drain events for all but the first player to avoid channel backpressure.
	target := clients[0]
	for _, c := range clients[1:] {
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		target.Commands <- &Command{Kind: CommandHealthUpdate, Player: "p0", Delta: 1 - 2*(i%2)}
		for {
			if ev := <-target.Events; ev.Kind == EventHealthChanged {
				break
			}
		}
	}
}

func BenchmarkHealthBroadcast_2(b *testing.B) { benchmarkHealthBroadcast(b, 2) }
func BenchmarkHealthBroadcast_4(b *testing.B) { benchmarkHealthBroadcast(b, 4) }
