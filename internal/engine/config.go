package engine

import "craft-server/internal/domain"

// Config - конфигурация комнатного сервиса.
type Config struct {
	Rules domain.Rules
}

// NewConfig возвращает конфигурацию с правилами эталонного деплоя.
func NewConfig() Config {
	return Config{Rules: domain.DefaultRules()}
}
