package domain

// Ограничения модели данных (инварианты, а не настройки баланса).
const (
	// MaxUsernameLength - максимум символов в отображаемом имени.
	MaxUsernameLength = 16

	// MaxChatTextLength - максимум символов в тексте сообщения чата.
	MaxChatTextLength = 200

	// ShortWalletLength - длина префикса кошелька для имени по умолчанию.
	ShortWalletLength = 6
)

// Отправители системных сообщений чата.
const (
	SystemSenderLeave = "📤 System"
	SystemSenderBoss  = "⚔️ System"
)
