package domain

// ActionType - внутренний числовой идентификатор входящего события.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionJoinRoom
	ActionUpdatePosition
	ActionSetUsername
	ActionPlayerAttack
	ActionAttackBoss
	ActionChatMessage
	ActionWhisperMessage
	ActionPlaceBlock
	ActionRemoveBlock
	ActionPlayerAction
)

// Маппинг для конвертации JSON -> Domain.
// Имена повторяют события socket-протокола веб-клиента, регистр значим.
var actionStringToCmd = map[string]ActionType{
	"joinRoom":        ActionJoinRoom,
	"updatePosition":  ActionUpdatePosition,
	"set_username":    ActionSetUsername,
	"player_attack":   ActionPlayerAttack,
	"attack_boss":     ActionAttackBoss,
	"chat_message":    ActionChatMessage,
	"whisper_message": ActionWhisperMessage,
	"place_block":     ActionPlaceBlock,
	"remove_block":    ActionRemoveBlock,
	"player_action":   ActionPlayerAction,
}

// Маппинг для логов Domain -> String.
var actionCmdToString = map[ActionType]string{
	ActionJoinRoom:       "joinRoom",
	ActionUpdatePosition: "updatePosition",
	ActionSetUsername:    "set_username",
	ActionPlayerAttack:   "player_attack",
	ActionAttackBoss:     "attack_boss",
	ActionChatMessage:    "chat_message",
	ActionWhisperMessage: "whisper_message",
	ActionPlaceBlock:     "place_block",
	ActionRemoveBlock:    "remove_block",
	ActionPlayerAction:   "player_action",
}

// ParseAction конвертирует имя события в ActionType.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[s]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для логов).
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "unknown"
}
