package systems

import (
	"math"
	"time"

	"craft-server/internal/domain"
)

// AttackIntent - решение босса атаковать конкретного игрока.
// Списание здоровья по этому пути выполняет клиент; сервер только
// вещает намерение для синхронизации анимации.
type AttackIntent struct {
	TargetWallet string
	Damage       int
	BossPosition domain.Vec3
}

// ComputeBossAttack - чистая функция решения AI-тика: по состоянию
// (босс, ростер) возвращает намерение атаки или nil. Состояние не
// мутирует - штамп времени и цель выставляет вызывающий код вместе
// с рассылкой события.
func ComputeBossAttack(boss *domain.Boss, room *domain.Room, now time.Time, attackRange float64, interval time.Duration) *AttackIntent {
	if boss == nil || !boss.Alive {
		return nil
	}

	// Ближайший живой игрок. Обход в стабильном порядке кошельков,
	// чтобы выбор при равных дистанциях был детерминированным.
	nearest := ""
	nearestDist := math.Inf(1)
	for _, wallet := range room.SortedWallets() {
		p := room.Players[wallet]
		if !p.Alive {
			continue
		}
		d := domain.Dist(boss.Position, p.Position)
		if d < nearestDist {
			nearest = wallet
			nearestDist = d
		}
	}

	if nearest == "" || nearestDist >= attackRange {
		return nil
	}
	if now.Sub(boss.LastAttackTime) <= interval {
		return nil
	}

	return &AttackIntent{
		TargetWallet: nearest,
		Damage:       boss.Damage,
		BossPosition: boss.Position,
	}
}
