package actions

import (
	"craft-server/internal/domain"
	"craft-server/internal/engine/handlers"
	"craft-server/pkg/api"
)

// HandleSetUsername меняет отображаемое имя и вещает его всей комнате,
// включая инициатора.
func HandleSetUsername(ctx handlers.Context, p api.SetUsernamePayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	player, ok := room.Players[p.WalletAddress]
	if !ok {
		return handlers.EmptyResult(), nil
	}

	player.Username = domain.ClampUsername(p.Username)

	ctx.Hub.Room(p.RoomName, api.ServerEvent{
		Event: api.EvtUsernameUpdate,
		Payload: api.UsernameUpdateView{
			WalletAddress: p.WalletAddress,
			Username:      player.Username,
		},
	})

	return handlers.EmptyResult(), nil
}
