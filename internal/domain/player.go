package domain

import "time"

// Player - состояние игрока внутри одной комнаты.
// Ключом в ростере служит адрес кошелька: стабильный непрозрачный
// идентификатор, который клиент сообщает сам (см. модель доверия).
type Player struct {
	// ConnID привязывает игрока к живому websocket-соединению.
	ConnID string

	WalletAddress string
	Model         string
	Username      string

	// Position/Rotation - последние данные клиента-владельца (last-write-wins).
	Position Vec3
	Rotation Vec3

	HP    int
	MaxHP int
	Alive bool

	LastAttackTime time.Time
}

// NewPlayer создает игрока со стартовыми параметрами комнаты.
// Пустое имя заменяется префиксом кошелька.
func NewPlayer(connID, wallet, model, username string, spawn Vec3, maxHP int) *Player {
	if username == "" {
		username = ShortWallet(wallet)
	}
	return &Player{
		ConnID:        connID,
		WalletAddress: wallet,
		Model:         model,
		Username:      ClampUsername(username),
		Position:      spawn,
		HP:            maxHP,
		MaxHP:         maxHP,
		Alive:         true,
	}
}

// ShortWallet возвращает короткий префикс кошелька для имени по умолчанию.
func ShortWallet(wallet string) string {
	if len(wallet) > ShortWalletLength {
		return wallet[:ShortWalletLength]
	}
	return wallet
}

// ClampUsername обрезает имя до допустимой длины.
func ClampUsername(name string) string {
	if len(name) > MaxUsernameLength {
		return name[:MaxUsernameLength]
	}
	return name
}

// TakeDamage наносит урон с нижней границей 0.
// Возвращает true, если игрок погиб именно от этого удара.
// Повторные удары по мертвому игроку не проходят.
func (p *Player) TakeDamage(amount int) bool {
	if !p.Alive {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	p.HP -= amount
	if p.HP <= 0 {
		p.HP = 0
		p.Alive = false
		return true
	}
	return false
}

// Respawn атомарно восстанавливает здоровье, живость и позицию.
func (p *Player) Respawn(spawn Vec3) {
	p.HP = p.MaxHP
	p.Alive = true
	p.Position = spawn
}
