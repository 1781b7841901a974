package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/lobbysync-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3000/ws", "WebSocket address")
	room := flag.String("room", "R1", "room id")
	player := flag.String("player", "tester", "player name to register")
	character := flag.String("character", "", "character sprite")
	delta := flag.Int("delta", -10, "health delta to apply after registering")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(typ string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", typ, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", typ, err)
		}
		return nil
	}

	if err := send(proto.InboundTypeRegister, proto.RegisterData{
		RoomID:     *room,
		PlayerName: *player,
		Character:  *character,
		FromLobby:  true,
	}); err != nil {
		return err
	}

	for {
		var outbound struct {
			Type  string          `json:"type"`
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
			Error *proto.Error    `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		if outbound.Type == proto.OutboundTypeError && outbound.Error != nil {
			return fmt.Errorf("server error %s: %s", outbound.Error.Code, outbound.Error.Msg)
		}

		switch outbound.Event {
		case proto.EventRegisterOK:
			var evt proto.EventRegisterOKData
			if err := json.Unmarshal(outbound.Data, &evt); err != nil {
				return fmt.Errorf("unmarshal register_ok: %w", err)
			}
			fmt.Printf("Registered: room=%s health=%d players=%d\n", evt.RoomID, evt.Health, len(evt.Players))
			if err := send(proto.InboundTypeHealthUpdate, proto.HealthUpdateData{PlayerName: *player, Delta: *delta}); err != nil {
				return err
			}
		case proto.EventRoomSnapshot:
			var evt proto.EventRoomSnapshotData
			if err := json.Unmarshal(outbound.Data, &evt); err == nil {
				for _, p := range evt.Players {
					fmt.Printf("  %s health=%d connected=%t\n", p.Name, p.Health, p.Connected)
				}
			}
		case proto.EventSystemNotice:
			var evt proto.EventSystemNoticeData
			if err := json.Unmarshal(outbound.Data, &evt); err == nil {
				fmt.Printf("Notice: %s\n", evt.Text)
			}
		case proto.EventHealthChanged:
			var evt proto.EventHealthChangedData
			if err := json.Unmarshal(outbound.Data, &evt); err != nil {
				return fmt.Errorf("unmarshal health_changed: %w", err)
			}
			fmt.Printf("Health: player=%s health=%d delta=%+d\n", evt.PlayerName, evt.NewHealth, evt.Delta)
			return nil
		}
	}
}
