package handlers

import (
	"encoding/json"
	"time"

	"craft-server/internal/domain"
	"craft-server/pkg/api"
)

// Emitter описывает доставку событий. RoomService реализует этот
// интерфейс поверх network.Broadcaster и ростера комнат.
type Emitter interface {
	// SendTo - unicast конкретному соединению.
	SendTo(connID string, evt api.ServerEvent)
	// Room - рассылка всем занимающим комнату.
	Room(roomName string, evt api.ServerEvent)
	// RoomExcept - рассылка всем, кроме указанного кошелька
	// (отправитель уже имеет локально-оптимистичное состояние).
	RoomExcept(roomName, exceptWallet string, evt api.ServerEvent)
}

// Scheduler откладывает задачу. Задача исполняется на игровом цикле,
// не отменяется и обязана сама перепроверять, что ее цель еще существует.
type Scheduler func(d time.Duration, task func())

// Context передает хендлеру состояние комнат и средства доставки.
// Все хендлеры выполняются на единственной горутине игрового цикла,
// поэтому мутируют состояние без блокировок.
type Context struct {
	Rooms    *domain.RoomStore
	Hub      Emitter
	Rules    domain.Rules
	Now      time.Time
	ConnID   string // соединение, приславшее команду
	Schedule Scheduler
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в лог сервиса напрямую, он возвращает данные.
type Result struct {
	Msg string // необязательная запись в лог
}

// HandlerFunc - это контракт для любого входящего события.
// Возврат ошибки означает "отказ по ссылке": текст уходит только
// инициатору событием error. Политические отказы (кулдаун, дистанция,
// мертвый актор) возвращают пустой Result без ошибки.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа.
func EmptyResult() Result {
	return Result{}
}
