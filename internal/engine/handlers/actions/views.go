package actions

import (
	"craft-server/internal/domain"
	"craft-server/pkg/api"
)

// Конвертеры домен -> DTO. Держим их в одном месте, чтобы хендлеры
// не собирали view-структуры по полям каждый раз.

func ToPlayerView(p *domain.Player) api.PlayerView {
	return api.PlayerView{
		WalletAddress: p.WalletAddress,
		Model:         p.Model,
		Username:      p.Username,
		Position:      [3]float64(p.Position),
		Rotation:      [3]float64(p.Rotation),
		HP:            p.HP,
		MaxHP:         p.MaxHP,
		Alive:         p.Alive,
	}
}

// ToBossView снимает состояние босса. Alive пересчитывается из HP
// в момент снятия снапшота.
func ToBossView(b *domain.Boss) api.BossView {
	return api.BossView{
		Type:     b.Type,
		HP:       b.HP,
		MaxHP:    b.MaxHP,
		Position: [3]float64(b.Position),
		Alive:    b.HP > 0,
	}
}

func ToChatView(m domain.ChatMessage) api.ChatMessageView {
	return api.ChatMessageView{
		ID:           m.ID,
		Sender:       m.Sender,
		SenderWallet: m.SenderWallet,
		TargetWallet: m.TargetWallet,
		Text:         m.Text,
		Timestamp:    m.Timestamp.UnixMilli(),
		System:       m.System,
		Whisper:      m.Whisper,
	}
}

func ToChatViews(history []domain.ChatMessage) []api.ChatMessageView {
	views := make([]api.ChatMessageView, 0, len(history))
	for _, m := range history {
		views = append(views, ToChatView(m))
	}
	return views
}

func ToBlockView(b domain.PlacedBlock) api.BlockView {
	return api.BlockView{
		Pos:      [3]float64(b.Pos),
		Type:     b.Type,
		PlacedBy: b.PlacedBy,
	}
}

func ToBlockViews(blocks []domain.PlacedBlock) []api.BlockView {
	views := make([]api.BlockView, 0, len(blocks))
	for _, b := range blocks {
		views = append(views, ToBlockView(b))
	}
	return views
}

// ToRosterView собирает снапшот ростера комнаты: кошелек -> игрок.
func ToRosterView(room *domain.Room) map[string]api.PlayerView {
	views := make(map[string]api.PlayerView, len(room.Players))
	for wallet, p := range room.Players {
		views[wallet] = ToPlayerView(p)
	}
	return views
}
