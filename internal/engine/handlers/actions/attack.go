package actions

import (
	"craft-server/internal/engine/handlers"
	"craft-server/internal/systems"
	"craft-server/pkg/api"
	"craft-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandlePlayerAttack проводит PvP-атаку через боевые правила.
// Отброшенные атаки (кулдаун, дистанция, мертвый участник) тихо
// игнорируются - клиент ошибок по ним не получает.
func HandlePlayerAttack(ctx handlers.Context, p api.PlayerAttackPayload) (handlers.Result, error) {
	room, ok := ctx.Rooms.Get(p.RoomName)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	attacker := room.Players[p.AttackerWallet]
	target := room.Players[p.TargetWallet]

	out := systems.ResolvePlayerAttack(attacker, target, ctx.Now,
		ctx.Rules.PlayerAttackDamage, ctx.Rules.PvPAttackRange, ctx.Rules.AttackCooldown)
	if !out.Applied {
		return handlers.EmptyResult(), nil
	}

	ctx.Hub.Room(p.RoomName, api.ServerEvent{
		Event: api.EvtHealthUpdate,
		Payload: api.HealthUpdateView{
			WalletAddress: p.TargetWallet,
			HP:            out.TargetHP,
			MaxHP:         target.MaxHP,
		},
	})
	ctx.Hub.Room(p.RoomName, api.ServerEvent{
		Event: api.EvtPlayerHit,
		Payload: api.PlayerHitView{
			Attacker: p.AttackerWallet,
			Target:   p.TargetWallet,
			Damage:   out.Damage,
		},
	})

	if out.TargetDied {
		ctx.Hub.Room(p.RoomName, api.ServerEvent{
			Event: api.EvtPlayerDead,
			Payload: api.PlayerDeadView{
				WalletAddress: p.TargetWallet,
				KilledBy:      p.AttackerWallet,
			},
		})
		schedulePlayerRespawn(ctx, p.RoomName, p.TargetWallet)

		logger.Log.WithFields(logrus.Fields{
			"killer": p.AttackerWallet,
			"victim": p.TargetWallet,
			"room":   p.RoomName,
		}).Info("Player killed in PvP")
	}

	return handlers.EmptyResult(), nil
}

// schedulePlayerRespawn откладывает воскрешение. Задача не отменяется,
// поэтому перед воскрешением перепроверяет, что игрок все еще в комнате:
// за время задержки он мог уйти или перезайти.
func schedulePlayerRespawn(ctx handlers.Context, roomName, wallet string) {
	rooms := ctx.Rooms
	hub := ctx.Hub
	spawn := ctx.Rules.SpawnPosition

	ctx.Schedule(ctx.Rules.PlayerRespawnDelay, func() {
		room, ok := rooms.Get(roomName)
		if !ok {
			return
		}
		player, ok := room.Players[wallet]
		if !ok || player.Alive {
			return
		}

		player.Respawn(spawn)

		hub.Room(roomName, api.ServerEvent{
			Event: api.EvtPlayerRespawn,
			Payload: api.PlayerRespawnView{
				WalletAddress: wallet,
				HP:            player.HP,
				Position:      [3]float64(player.Position),
			},
		})
	})
}
