package actions

import (
	"craft-server/internal/domain"
	"craft-server/internal/engine/handlers"
	"craft-server/pkg/api"
	"craft-server/pkg/utils"
)

// HandleChatMessage добавляет сообщение в историю комнаты и вещает всем,
// включая отправителя (у клиента нет локального эха).
func HandleChatMessage(ctx handlers.Context, p api.ChatMessagePayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	sender, ok := room.Players[p.WalletAddress]
	if !ok {
		return handlers.EmptyResult(), nil
	}

	msg := domain.ChatMessage{
		ID:           utils.GenerateID(),
		Sender:       sender.Username,
		SenderWallet: p.WalletAddress,
		Text:         domain.ClampChatText(p.Text),
		Timestamp:    ctx.Now,
	}
	room.AppendChat(msg, ctx.Rules.MaxChatHistory)

	ctx.Hub.Room(p.RoomName, api.ServerEvent{Event: api.EvtChatMessage, Payload: ToChatView(msg)})

	return handlers.EmptyResult(), nil
}

// HandleWhisper доставляет личное сообщение ровно двум соединениям:
// цели и отправителю (эхо). История комнаты шепот не хранит.
// Требуется присутствие обоих кошельков в комнате.
func HandleWhisper(ctx handlers.Context, p api.WhisperPayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	sender, ok := room.Players[p.WalletAddress]
	if !ok {
		return handlers.EmptyResult(), nil
	}
	target, ok := room.Players[p.TargetWallet]
	if !ok {
		return handlers.EmptyResult(), nil
	}

	view := api.ChatMessageView{
		ID:           utils.GenerateID(),
		Sender:       sender.Username,
		SenderWallet: p.WalletAddress,
		TargetWallet: p.TargetWallet,
		Text:         domain.ClampChatText(p.Text),
		Timestamp:    ctx.Now.UnixMilli(),
		Whisper:      true,
	}

	evt := api.ServerEvent{Event: api.EvtWhisperMessage, Payload: view}
	ctx.Hub.SendTo(target.ConnID, evt)
	if target.ConnID != sender.ConnID {
		ctx.Hub.SendTo(sender.ConnID, evt)
	}

	return handlers.EmptyResult(), nil
}
