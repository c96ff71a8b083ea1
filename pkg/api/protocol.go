package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
// Action повторяет имена событий socket-протокола веб-клиента (joinRoom,
// updatePosition, set_username и т.д.), Payload зависит от Action.
type ClientCommand struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// JoinRoomPayload - вход в комнату. Кошелек выступает стабильным ID игрока,
// криптографическая проверка владения кошельком на этом слое не выполняется.
type JoinRoomPayload struct {
	WalletAddress string `json:"walletAddress"`
	RoomName      string `json:"roomName"`
	Model         string `json:"model"`
	Username      string `json:"username"`
}

// UpdatePositionPayload - последняя позиция/поворот по данным клиента-владельца.
// Поток last-write-wins, порядок доставки не корректируется.
type UpdatePositionPayload struct {
	WalletAddress string     `json:"walletAddress"`
	RoomName      string     `json:"roomName"`
	Position      [3]float64 `json:"position"`
	Rotation      [3]float64 `json:"rotation"`
}

type SetUsernamePayload struct {
	WalletAddress string `json:"walletAddress"`
	RoomName      string `json:"roomName"`
	Username      string `json:"username"`
}

// PlayerAttackPayload - PvP атака.
type PlayerAttackPayload struct {
	AttackerWallet string `json:"attackerWallet"`
	TargetWallet   string `json:"targetWallet"`
	RoomName       string `json:"roomName"`
}

// AttackBossPayload - атака игрока по боссу комнаты.
type AttackBossPayload struct {
	WalletAddress string `json:"walletAddress"`
	RoomName      string `json:"roomName"`
}

type ChatMessagePayload struct {
	WalletAddress string `json:"walletAddress"`
	RoomName      string `json:"roomName"`
	Text          string `json:"text"`
}

type WhisperPayload struct {
	WalletAddress string `json:"walletAddress"`
	RoomName      string `json:"roomName"`
	TargetWallet  string `json:"targetWallet"`
	Text          string `json:"text"`
}

type PlaceBlockPayload struct {
	WalletAddress string     `json:"walletAddress"`
	RoomName      string     `json:"roomName"`
	Position      [3]float64 `json:"position"`
	Type          string     `json:"type"`
}

type RemoveBlockPayload struct {
	WalletAddress string     `json:"walletAddress"`
	RoomName      string     `json:"roomName"`
	Position      [3]float64 `json:"position"`
}

// PlayerActionPayload - подсказка анимации (walking, attacking, idle).
// Сервер не интерпретирует action, просто ретранслирует.
type PlayerActionPayload struct {
	WalletAddress string `json:"walletAddress"`
	RoomName      string `json:"roomName"`
	Action        string `json:"action"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerEvent это корневой объект исходящего сообщения: имя события плюс
// полезная нагрузка. Имена событий фиксированы протоколом веб-клиента.
type ServerEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Имена исходящих событий.
const (
	EvtError          = "error"
	EvtCurrentPlayers = "currentPlayers"
	EvtPlayerJoined   = "playerJoined"
	EvtPlayerMoved    = "playerMoved"
	EvtPlayerLeft     = "playerLeft"
	EvtUsernameUpdate = "username_update"
	EvtHealthUpdate   = "health_update"
	EvtPlayerHit      = "player_hit"
	EvtPlayerDead     = "player_dead"
	EvtPlayerRespawn  = "player_respawn"
	EvtBossHealth     = "boss_health"
	EvtBossAttack     = "boss_attack"
	EvtBossDead       = "boss_dead"
	EvtChatHistory    = "chat_history"
	EvtChatMessage    = "chat_message"
	EvtWhisperMessage = "whisper_message"
	EvtCurrentBlocks  = "current_blocks"
	EvtBlockPlaced    = "block_placed"
	EvtBlockRemoved   = "block_removed"
	EvtPlayerAction   = "player_action"
)

// PlayerView это DTO игрока для клиента. Приватные поля (соединение,
// таймер кулдауна) наружу не выходят.
type PlayerView struct {
	WalletAddress string     `json:"walletAddress"`
	Model         string     `json:"model"`
	Username      string     `json:"username"`
	Position      [3]float64 `json:"position"`
	Rotation      [3]float64 `json:"rotation"`
	HP            int        `json:"hp"`
	MaxHP         int        `json:"maxHp"`
	Alive         bool       `json:"alive"`
}

// BossView это DTO босса. Alive вычисляется как hp > 0 в момент отправки.
type BossView struct {
	Type     string     `json:"type"`
	HP       int        `json:"hp"`
	MaxHP    int        `json:"maxHp"`
	Position [3]float64 `json:"position"`
	Alive    bool       `json:"alive"`
}

type PlayerMovedView struct {
	WalletAddress string     `json:"walletAddress"`
	Position      [3]float64 `json:"position"`
	Rotation      [3]float64 `json:"rotation"`
}

type UsernameUpdateView struct {
	WalletAddress string `json:"walletAddress"`
	Username      string `json:"username"`
}

type HealthUpdateView struct {
	WalletAddress string `json:"walletAddress"`
	HP            int    `json:"hp"`
	MaxHP         int    `json:"maxHp"`
}

type PlayerHitView struct {
	Attacker string `json:"attacker"`
	Target   string `json:"target"`
	Damage   int    `json:"damage"`
}

type PlayerDeadView struct {
	WalletAddress string `json:"walletAddress"`
	KilledBy      string `json:"killedBy"`
}

type PlayerRespawnView struct {
	WalletAddress string     `json:"walletAddress"`
	HP            int        `json:"hp"`
	Position      [3]float64 `json:"position"`
}

// BossAttackView - намерение атаки босса. Списание здоровья по этому пути
// выполняет клиент (синхронизация с анимацией удара), сервер только вещает.
type BossAttackView struct {
	TargetWallet string     `json:"targetWallet"`
	Damage       int        `json:"damage"`
	BossPosition [3]float64 `json:"bossPosition"`
}

type BossDeadView struct {
	RoomName string `json:"roomName"`
	KilledBy string `json:"killedBy"`
	BossType string `json:"bossType"`
}

// ChatMessageView это DTO сообщения чата. Для системных сообщений
// senderWallet пуст, для шепота выставлены targetWallet и whisper.
type ChatMessageView struct {
	ID           string `json:"id,omitempty"`
	Sender       string `json:"sender"`
	SenderWallet string `json:"senderWallet,omitempty"`
	TargetWallet string `json:"targetWallet,omitempty"`
	Text         string `json:"text"`
	Timestamp    int64  `json:"timestamp"` // Unix milliseconds
	System       bool   `json:"system,omitempty"`
	Whisper      bool   `json:"whisper,omitempty"`
}

type BlockView struct {
	Pos      [3]float64 `json:"pos"`
	Type     string     `json:"type"`
	PlacedBy string     `json:"placedBy"`
}

type BlockRemovedView struct {
	Position [3]float64 `json:"position"`
}

type PlayerActionView struct {
	WalletAddress string `json:"walletAddress"`
	Action        string `json:"action"`
}
