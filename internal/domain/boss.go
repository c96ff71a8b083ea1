package domain

import "time"

// BossConfig - статическая конфигурация босса комнаты.
// Из нее конструируется каждый новый экземпляр (и на старте, и на респауне).
type BossConfig struct {
	Type     string
	MaxHP    int
	Position Vec3
	Damage   int
}

// Boss - единственный враждебный NPC комнаты.
type Boss struct {
	Type     string
	HP       int
	MaxHP    int
	Position Vec3
	Alive    bool
	Damage   int

	LastAttackTime time.Time

	// TargetWallet - текущая цель. Носит рекомендательный характер,
	// нужна клиентам для анимации.
	TargetWallet string
}

// NewBoss конструирует свежий экземпляр из конфигурации комнаты.
// Никогда не переиспользует поля погибшего экземпляра.
func NewBoss(cfg BossConfig) *Boss {
	return &Boss{
		Type:     cfg.Type,
		HP:       cfg.MaxHP,
		MaxHP:    cfg.MaxHP,
		Position: cfg.Position,
		Alive:    true,
		Damage:   cfg.Damage,
	}
}

// TakeDamage наносит урон с нижней границей 0.
// Возвращает true, если босс повержен именно этим ударом.
func (b *Boss) TakeDamage(amount int) bool {
	if !b.Alive {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	b.HP -= amount
	if b.HP <= 0 {
		b.HP = 0
		b.Alive = false
		return true
	}
	return false
}
