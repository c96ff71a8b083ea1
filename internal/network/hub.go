package network

import (
	"sync"

	"craft-server/pkg/api"
)

// Broadcaster занимается только доставкой событий подписчикам.
// Ключ - идентификатор соединения (не кошелек: кошелек может заново
// заявить себя с другого соединения, и старый канал должен умереть
// независимо).
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan api.ServerEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerEvent),
	}
}

// Register создает личный канал для соединения.
func (b *Broadcaster) Register(connID string) chan api.ServerEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[connID]; ok {
		close(old)
	}

	ch := make(chan api.ServerEvent, 100)
	b.subscribers[connID] = ch
	return ch
}

// Unregister удаляет подписчика.
func (b *Broadcaster) Unregister(connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[connID]; ok {
		close(ch)
		delete(b.subscribers, connID)
	}
}

// SendTo отправляет событие конкретному соединению (unicast).
// Отправка fire-and-forget: переполненный канал медленного клиента
// роняет событие, а не блокирует игровой цикл.
func (b *Broadcaster) SendTo(connID string, evt api.ServerEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[connID]; ok {
		select {
		case ch <- evt:
		default:
			// Пропускаем медленных клиентов
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
