package systems

import (
	"time"

	"craft-server/internal/domain"
	"craft-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PvPOutcome - результат применения PvP-правил.
// Applied=false означает тихо отброшенную атаку (кулдаун, дистанция,
// мертвый участник) - клиенту ошибка не отправляется.
type PvPOutcome struct {
	Applied    bool
	Damage     int
	TargetHP   int
	TargetDied bool
}

// BossOutcome - результат атаки игрока по боссу.
type BossOutcome struct {
	Applied  bool
	BossHP   int
	BossDied bool
}

// CooldownElapsed сообщает, истек ли общий кулдаун атак.
// Атака в момент ровно cooldown после предыдущей проходит.
func CooldownElapsed(last, now time.Time, cooldown time.Duration) bool {
	return now.Sub(last) >= cooldown
}

// ResolvePlayerAttack применяет PvP-атаку к состоянию ростера.
// Порядок проверок фиксирован протоколом: живость, кулдаун (штамп
// времени ставится ДО проверки дистанции), дистанция, урон.
func ResolvePlayerAttack(attacker, target *domain.Player, now time.Time, damage int, maxRange float64, cooldown time.Duration) PvPOutcome {
	if attacker == nil || target == nil || !attacker.Alive || !target.Alive {
		return PvPOutcome{}
	}

	if !CooldownElapsed(attacker.LastAttackTime, now, cooldown) {
		return PvPOutcome{}
	}
	attacker.LastAttackTime = now

	if domain.Dist(attacker.Position, target.Position) > maxRange {
		return PvPOutcome{}
	}

	died := target.TakeDamage(damage)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.WalletAddress,
		"target":    target.WalletAddress,
		"damage":    damage,
		"hp_after":  target.HP,
		"died":      died,
	}).Debug("PvP attack resolved")

	return PvPOutcome{Applied: true, Damage: damage, TargetHP: target.HP, TargetDied: died}
}

// ResolveBossAttack применяет атаку игрока по боссу.
// Проверки дистанции нет намеренно: босс блуждает на клиенте, и сверка
// со статической серверной позицией ломала бы попадания.
func ResolveBossAttack(attacker *domain.Player, boss *domain.Boss, now time.Time, damage int, cooldown time.Duration) BossOutcome {
	if attacker == nil || boss == nil || !attacker.Alive || !boss.Alive {
		return BossOutcome{}
	}

	if !CooldownElapsed(attacker.LastAttackTime, now, cooldown) {
		return BossOutcome{}
	}
	attacker.LastAttackTime = now

	died := boss.TakeDamage(damage)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.WalletAddress,
		"boss":      boss.Type,
		"damage":    damage,
		"hp_after":  boss.HP,
		"died":      died,
	}).Debug("Boss attack resolved")

	return BossOutcome{Applied: true, BossHP: boss.HP, BossDied: died}
}
