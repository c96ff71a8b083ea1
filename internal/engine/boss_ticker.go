package engine

import (
	"time"

	"craft-server/internal/systems"
	"craft-server/pkg/api"
)

// bossTick прогоняет AI босса по всем комнатам. Выполняется на горутине
// игрового цикла, поэтому мутации босса здесь безопасны.
func (s *RoomService) bossTick(now time.Time) {
	for _, name := range s.Rooms.Names() {
		room, _ := s.Rooms.Get(name)

		intent := systems.ComputeBossAttack(room.Boss, room, now,
			s.cfg.Rules.BossAttackRange, s.cfg.Rules.BossAttackInterval)
		if intent == nil {
			continue
		}

		room.Boss.LastAttackTime = now
		room.Boss.TargetWallet = intent.TargetWallet

		// Сервер вещает намерение, списание здоровья цели выполняет
		// клиент в такт анимации удара.
		s.Room(name, api.ServerEvent{
			Event: api.EvtBossAttack,
			Payload: api.BossAttackView{
				TargetWallet: intent.TargetWallet,
				Damage:       intent.Damage,
				BossPosition: [3]float64(intent.BossPosition),
			},
		})
	}
}
