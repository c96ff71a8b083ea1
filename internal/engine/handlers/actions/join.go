package actions

import (
	"errors"

	"craft-server/internal/domain"
	"craft-server/internal/engine/handlers"
	"craft-server/pkg/api"
	"craft-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrRoomNotFound - единственный отказ, который уходит клиенту событием
// error. Текст фиксирован протоколом веб-клиента.
var ErrRoomNotFound = errors.New("Room does not exist")

// HandleJoinRoom заводит игрока в комнату.
// Последовательность: выселение кошелька из всех комнат, создание
// свежего игрока, снапшот комнаты инициатору, анонс остальным.
func HandleJoinRoom(ctx handlers.Context, p api.JoinRoomPayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.Result{}, ErrRoomNotFound
	}

	// Эксклюзивность комнаты: кошелек занимает не больше одной.
	// Повторный joinRoom в ту же комнату тоже проходит через выселение -
	// игрок пересоздается со свежим HP и позицией.
	evictWallet(ctx, p.WalletAddress)

	player := domain.NewPlayer(ctx.ConnID, p.WalletAddress, p.Model, p.Username, ctx.Rules.SpawnPosition, ctx.Rules.PlayerMaxHP)
	room.Players[p.WalletAddress] = player

	// Снапшот комнаты инициатору. Порядок событий фиксирован:
	// ростер, босс, история чата, журнал блоков.
	ctx.Hub.SendTo(ctx.ConnID, api.ServerEvent{Event: api.EvtCurrentPlayers, Payload: ToRosterView(room)})
	ctx.Hub.SendTo(ctx.ConnID, api.ServerEvent{Event: api.EvtBossHealth, Payload: ToBossView(room.Boss)})
	ctx.Hub.SendTo(ctx.ConnID, api.ServerEvent{Event: api.EvtChatHistory, Payload: ToChatViews(room.ChatHistory)})
	ctx.Hub.SendTo(ctx.ConnID, api.ServerEvent{Event: api.EvtCurrentBlocks, Payload: ToBlockViews(room.Blocks)})

	ctx.Hub.RoomExcept(p.RoomName, p.WalletAddress, api.ServerEvent{Event: api.EvtPlayerJoined, Payload: ToPlayerView(player)})

	logger.Log.WithFields(logrus.Fields{
		"wallet":   p.WalletAddress,
		"username": player.Username,
		"room":     p.RoomName,
		"roster":   len(room.Players),
	}).Info("Player joined room")

	return handlers.EmptyResult(), nil
}

// evictWallet удаляет кошелек из всех комнат с анонсом playerLeft.
func evictWallet(ctx handlers.Context, wallet string) {
	for _, name := range ctx.Rooms.Names() {
		room, _ := ctx.Rooms.Get(name)
		if _, ok := room.Players[wallet]; !ok {
			continue
		}
		delete(room.Players, wallet)
		ctx.Hub.Room(name, api.ServerEvent{Event: api.EvtPlayerLeft, Payload: wallet})
	}
}
