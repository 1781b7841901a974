package http

import (
	"encoding/json"

	"github.com/vovakirdan/lobbysync-server/internal/core"
	"github.com/vovakirdan/lobbysync-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeRegister:
		var reg proto.RegisterData
		if err := json.Unmarshal(inbound.Data, &reg); err != nil {
			return nil, nil, err
		}
		if reg.RoomID == "" || reg.PlayerName == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId and playerName are required"}, nil
		}
		return &core.Command{
			Kind:      core.CommandRegister,
			Room:      reg.RoomID,
			Player:    reg.PlayerName,
			Character: reg.Character,
			FromLobby: reg.FromLobby,
		}, nil, nil
	case proto.InboundTypeHealthUpdate:
		var upd proto.HealthUpdateData
		if err := json.Unmarshal(inbound.Data, &upd); err != nil {
			return nil, nil, err
		}
		if upd.PlayerName == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "playerName is required"}, nil
		}
		return &core.Command{
			Kind:   core.CommandHealthUpdate,
			Player: upd.PlayerName,
			Delta:  upd.Delta,
		}, nil, nil
	case proto.InboundTypeQueryState:
		var query proto.QueryStateData
		if err := json.Unmarshal(inbound.Data, &query); err != nil {
			return nil, nil, err
		}
		if query.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandQueryState,
			Room: query.RoomID,
		}, nil, nil
	case proto.InboundTypeNavigation:
		var nav proto.NavigationData
		if err := json.Unmarshal(inbound.Data, &nav); err != nil {
			return nil, nil, err
		}
		if nav.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		return &core.Command{
			Kind:   core.CommandNavigate,
			Room:   nav.RoomID,
			Player: nav.PlayerName,
			Page:   nav.Page,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRegisterOK:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRegisterOK,
			Data: proto.EventRegisterOKData{
				RoomID:  event.Room,
				Health:  event.Health,
				Players: playersToProto(event.Players),
			},
		}
	case core.EventRoomSnapshot:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomSnapshot,
			Data: proto.EventRoomSnapshotData{
				RoomID:  event.Room,
				Players: playersToProto(event.Players),
			},
		}
	case core.EventHealthChanged:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventHealthChanged,
			Data: proto.EventHealthChangedData{
				PlayerName: event.Player,
				NewHealth:  event.Health,
				Delta:      event.Delta,
			},
		}
	case core.EventSystemNotice:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventSystemNotice,
			Data: proto.EventSystemNoticeData{
				RoomID: event.Room,
				Text:   event.Text,
			},
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func playersToProto(players []core.PlayerView) []proto.Player {
	out := make([]proto.Player, 0, len(players))
	for _, p := range players {
		out = append(out, proto.Player{
			ID:        p.ID,
			Name:      p.Name,
			Character: p.Character,
			Health:    p.Health,
			RoomID:    p.RoomID,
			Connected: p.Connected,
		})
	}
	return out
}
