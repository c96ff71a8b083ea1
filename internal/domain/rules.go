package domain

import "time"

// Rules хранит все боевые и временные параметры комнатного слоя.
// Значения по умолчанию повторяют эталонный деплой; тесты сжимают
// интервалы до миллисекунд.
type Rules struct {
	PlayerMaxHP        int
	PlayerAttackDamage int

	BossAttackDamage int
	BossAttackRange  float64
	// BossTickInterval - период фонового AI-тика босса.
	BossTickInterval time.Duration
	// BossAttackInterval - персональный кулдаун атаки босса.
	BossAttackInterval time.Duration
	BossRespawnDelay   time.Duration

	PvPAttackRange float64
	// AttackCooldown - общий кулдаун атак игрока (PvP и по боссу).
	AttackCooldown time.Duration

	MaxChatHistory     int
	PlayerRespawnDelay time.Duration

	// MaxBlocks ограничивает журнал блоков. 0 = без ограничений,
	// журнал растет все время жизни процесса.
	MaxBlocks int

	// SpawnPosition - безопасная точка появления игрока.
	SpawnPosition Vec3

	// Bosses - конфигурация босса для каждой комнаты. Набор имен комнат
	// фиксирован на старте процесса и определяется ключами этой мапы.
	Bosses map[string]BossConfig
}

// DefaultRules возвращает параметры эталонного деплоя.
func DefaultRules() Rules {
	const bossDamage = 4 // 2 сердца за удар босса

	return Rules{
		PlayerMaxHP:        40, // 20 сердец по 2 HP
		PlayerAttackDamage: 6,  // 3 сердца за удар

		BossAttackDamage:   bossDamage,
		BossAttackRange:    20,
		BossTickInterval:   500 * time.Millisecond,
		BossAttackInterval: 2 * time.Second,
		BossRespawnDelay:   30 * time.Second,

		PvPAttackRange: 5,
		AttackCooldown: 500 * time.Millisecond,

		MaxChatHistory:     50,
		PlayerRespawnDelay: 3 * time.Second,

		SpawnPosition: Vec3{0, 10, 40},

		Bosses: map[string]BossConfig{
			"Room 1": {Type: "Giant", MaxHP: 500, Position: Vec3{25, 1, 25}, Damage: bossDamage},
			"Room 2": {Type: "Demon", MaxHP: 500, Position: Vec3{25, 1, 25}, Damage: bossDamage},
			"Room 3": {Type: "Yeti", MaxHP: 500, Position: Vec3{25, 1, 25}, Damage: bossDamage},
		},
	}
}
