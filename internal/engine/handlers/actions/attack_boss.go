package actions

import (
	"craft-server/internal/domain"
	"craft-server/internal/engine/handlers"
	"craft-server/internal/systems"
	"craft-server/pkg/api"
	"craft-server/pkg/logger"
	"craft-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// HandleAttackBoss проводит атаку игрока по боссу комнаты.
func HandleAttackBoss(ctx handlers.Context, p api.AttackBossPayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	attacker := room.Players[p.WalletAddress]

	out := systems.ResolveBossAttack(attacker, room.Boss, ctx.Now,
		ctx.Rules.PlayerAttackDamage, ctx.Rules.AttackCooldown)
	if !out.Applied {
		return handlers.EmptyResult(), nil
	}

	ctx.Hub.Room(p.RoomName, api.ServerEvent{Event: api.EvtBossHealth, Payload: ToBossView(room.Boss)})

	if out.BossDied {
		ctx.Hub.Room(p.RoomName, api.ServerEvent{
			Event: api.EvtBossDead,
			Payload: api.BossDeadView{
				RoomName: p.RoomName,
				KilledBy: p.WalletAddress,
				BossType: room.Boss.Type,
			},
		})
		scheduleBossRespawn(ctx, p.RoomName)

		logger.Log.WithFields(logrus.Fields{
			"boss":   room.Boss.Type,
			"killer": p.WalletAddress,
			"room":   p.RoomName,
		}).Info("Boss defeated")
	}

	return handlers.EmptyResult(), nil
}

// scheduleBossRespawn откладывает возрождение босса. Новый экземпляр
// конструируется из конфигурации комнаты заново: никакие поля погибшего
// босса не переживают респаун.
func scheduleBossRespawn(ctx handlers.Context, roomName string) {
	rooms := ctx.Rooms
	hub := ctx.Hub
	cfg, ok := ctx.Rules.Bosses[roomName]
	if !ok {
		return
	}

	ctx.Schedule(ctx.Rules.BossRespawnDelay, func() {
		room, ok := rooms.Get(roomName)
		if !ok {
			return
		}
		if room.Boss != nil && room.Boss.Alive {
			return
		}

		room.Boss = domain.NewBoss(cfg)

		hub.Room(roomName, api.ServerEvent{Event: api.EvtBossHealth, Payload: ToBossView(room.Boss)})

		// Анонс возвращения вещается, но в историю чата НЕ попадает:
		// поздно вошедший игрок его не увидит.
		hub.Room(roomName, api.ServerEvent{
			Event: api.EvtChatMessage,
			Payload: api.ChatMessageView{
				ID:        utils.GenerateID(),
				Sender:    domain.SystemSenderBoss,
				Text:      "The " + cfg.Type + " has returned!",
				Timestamp: ctx.Now.Add(ctx.Rules.BossRespawnDelay).UnixMilli(),
				System:    true,
			},
		})
	})
}
