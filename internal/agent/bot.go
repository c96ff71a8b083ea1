package agent

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"craft-server/internal/domain"
	"craft-server/internal/engine"
	"craft-server/pkg/api"
	"craft-server/pkg/logger"
	"craft-server/pkg/utils"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Этот код является примером ВНУТРЕННЕГО клиента: он регистрируется
// в хабе сервера так же, как WebSocket-клиент, получает те же события
// и шлет те же команды через ProcessCommand. Полезен для нагрузочных
// прогонов и для оживления пустых комнат.
//
// Жизненный цикл:
//  1. NewBot -> Регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> joinRoom, затем цикл: случайное блуждание, редкие реплики
//     в чат, атака босса при сближении.
//  3. Канал Inbox вычитывается, чтобы бот не считался медленным клиентом.
type Bot struct {
	ConnID  string
	Wallet  string
	Room    string
	Service *engine.RoomService
	Inbox   chan api.ServerEvent

	rng *rand.Rand
	pos domain.Vec3
}

func NewBot(name, room string, service *engine.RoomService) *Bot {
	connID := utils.GenerateID()
	logger.Log.WithField("bot", name).Info("Creating bot agent")
	return &Bot{
		ConnID:  connID,
		Wallet:  "bot-" + name,
		Room:    room,
		Service: service,
		Inbox:   service.Hub.Register(connID),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.ConnID)

	// Вычитываем входящие события, иначе хаб начнет ронять рассылку.
	go func() {
		for range b.Inbox {
		}
	}()

	b.sendCommand("joinRoom", api.JoinRoomPayload{
		WalletAddress: b.Wallet,
		RoomName:      b.Room,
		Model:         "steve",
		Username:      b.Wallet,
	})
	b.pos = domain.Vec3{0, 10, 40}

	moveTicker := time.NewTicker(300 * time.Millisecond)
	defer moveTicker.Stop()

	for range moveTicker.C {
		b.wander()

		// Изредка огрызаемся в чат
		if b.rng.Intn(100) == 0 {
			b.sendCommand("chat_message", api.ChatMessagePayload{
				WalletAddress: b.Wallet,
				RoomName:      b.Room,
				Text:          fmt.Sprintf("beep boop %d", b.rng.Intn(1000)),
			})
		}

		// Если забрели к боссу - бьем. Чтение позиции босса идет мимо
		// игрового цикла, как и в debug-эндпоинтах: для бота допустимо.
		room, ok := b.Service.Rooms.Get(b.Room)
		if ok && room.Boss != nil && domain.Dist(b.pos, room.Boss.Position) < 5 {
			b.sendCommand("attack_boss", api.AttackBossPayload{
				WalletAddress: b.Wallet,
				RoomName:      b.Room,
			})
		}
	}
}

// wander делает случайный шаг по горизонтали.
func (b *Bot) wander() {
	b.pos[0] += float64(b.rng.Intn(3) - 1)
	b.pos[2] += float64(b.rng.Intn(3) - 1)

	b.sendCommand("updatePosition", api.UpdatePositionPayload{
		WalletAddress: b.Wallet,
		RoomName:      b.Room,
		Position:      [3]float64(b.pos),
		Rotation:      [3]float64{0, 0, 0},
	})
}

func (b *Bot) sendCommand(action string, payload interface{}) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Log.WithError(err).WithField("bot", b.Wallet).Error("marshal payload failed")
		return
	}

	b.Service.ProcessCommand(b.ConnID, api.ClientCommand{
		Action:  action,
		Payload: payloadBytes,
	})
}
