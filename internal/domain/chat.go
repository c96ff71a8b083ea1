package domain

import "time"

// ChatMessage неизменяемо после создания.
type ChatMessage struct {
	ID           string
	Sender       string
	SenderWallet string // пустой для системных сообщений
	TargetWallet string // только для шепота
	Text         string
	Timestamp    time.Time
	System       bool
	Whisper      bool
}

// ClampChatText обрезает текст сообщения до допустимой длины.
func ClampChatText(text string) string {
	if len(text) > MaxChatTextLength {
		return text[:MaxChatTextLength]
	}
	return text
}
