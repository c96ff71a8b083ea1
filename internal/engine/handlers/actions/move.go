package actions

import (
	"craft-server/internal/domain"
	"craft-server/internal/engine/handlers"
	"craft-server/pkg/api"
)

// HandleUpdatePosition принимает позицию от клиента-владельца и ретранслирует
// остальным. Поток last-write-wins: никакой валидации физики, последнее
// слово за клиентом.
func HandleUpdatePosition(ctx handlers.Context, p api.UpdatePositionPayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	player, ok := room.Players[p.WalletAddress]
	if !ok {
		return handlers.EmptyResult(), nil
	}

	player.Position = domain.Vec3(p.Position)
	player.Rotation = domain.Vec3(p.Rotation)

	ctx.Hub.RoomExcept(p.RoomName, p.WalletAddress, api.ServerEvent{
		Event: api.EvtPlayerMoved,
		Payload: api.PlayerMovedView{
			WalletAddress: p.WalletAddress,
			Position:      p.Position,
			Rotation:      p.Rotation,
		},
	})

	return handlers.EmptyResult(), nil
}

// HandlePlayerAction ретранслирует подсказку анимации (walking, attacking,
// idle). Сервер значение не интерпретирует.
func HandlePlayerAction(ctx handlers.Context, p api.PlayerActionPayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	if _, ok := room.Players[p.WalletAddress]; !ok {
		return handlers.EmptyResult(), nil
	}

	ctx.Hub.RoomExcept(p.RoomName, p.WalletAddress, api.ServerEvent{
		Event: api.EvtPlayerAction,
		Payload: api.PlayerActionView{
			WalletAddress: p.WalletAddress,
			Action:        p.Action,
		},
	})

	return handlers.EmptyResult(), nil
}
