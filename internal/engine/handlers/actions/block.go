package actions

import (
	"craft-server/internal/domain"
	"craft-server/internal/engine/handlers"
	"craft-server/pkg/api"
	"craft-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandlePlaceBlock дописывает блок в журнал комнаты и ретранслирует
// остальным. Журнал append-only: повторная постановка в ту же точку
// не дедуплицируется.
func HandlePlaceBlock(ctx handlers.Context, p api.PlaceBlockPayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	if _, ok := room.Players[p.WalletAddress]; !ok {
		return handlers.EmptyResult(), nil
	}

	block := domain.PlacedBlock{
		Pos:      domain.Vec3(p.Position),
		Type:     p.Type,
		PlacedBy: p.WalletAddress,
	}
	if !room.PlaceBlock(block, ctx.Rules.MaxBlocks) {
		logger.Log.WithFields(logrus.Fields{
			"room":   p.RoomName,
			"wallet": p.WalletAddress,
			"limit":  ctx.Rules.MaxBlocks,
		}).Warn("Block limit reached, placement dropped")
		return handlers.EmptyResult(), nil
	}

	ctx.Hub.RoomExcept(p.RoomName, p.WalletAddress, api.ServerEvent{
		Event:   api.EvtBlockPlaced,
		Payload: ToBlockView(block),
	})

	return handlers.EmptyResult(), nil
}

// HandleRemoveBlock удаляет все записи журнала с точно совпадающей
// позицией и ретранслирует удаление. Анонс уходит независимо от того,
// была ли запись в журнале: клиенты могли поставить блок локально.
func HandleRemoveBlock(ctx handlers.Context, p api.RemoveBlockPayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	if _, ok := room.Players[p.WalletAddress]; !ok {
		return handlers.EmptyResult(), nil
	}

	room.RemoveBlocksAt(domain.Vec3(p.Position))

	ctx.Hub.RoomExcept(p.RoomName, p.WalletAddress, api.ServerEvent{
		Event:   api.EvtBlockRemoved,
		Payload: api.BlockRemovedView{Position: p.Position},
	})

	return handlers.EmptyResult(), nil
}
