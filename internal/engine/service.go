package engine

import (
	"encoding/json"
	"time"

	"craft-server/internal/domain"
	"craft-server/internal/engine/handlers"
	"craft-server/internal/engine/handlers/actions"
	"craft-server/internal/network"
	"craft-server/pkg/api"
	"craft-server/pkg/logger"
	"craft-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// command - входящее событие, привязанное к соединению-источнику.
type command struct {
	connID  string
	action  domain.ActionType
	payload json.RawMessage
}

// RoomService владеет всем игровым состоянием. Единственная горутина
// run() последовательно вычитывает команды, отложенные задачи и тики
// босса, поэтому хендлеры мутируют состояние без блокировок.
type RoomService struct {
	cfg   Config
	Rooms *domain.RoomStore
	Hub   *network.Broadcaster

	commands chan command
	tasks    chan func()
	stop     chan struct{}

	handlers map[domain.ActionType]handlers.HandlerFunc

	// clock и schedule вынесены в поля, чтобы тесты подменяли время
	// и исполняли отложенные задачи синхронно.
	clock    func() time.Time
	schedule handlers.Scheduler
}

func NewService(cfg Config) *RoomService {
	s := &RoomService{
		cfg:      cfg,
		Rooms:    domain.NewRoomStore(cfg.Rules.Bosses),
		Hub:      network.NewBroadcaster(),
		commands: make(chan command, 100),
		tasks:    make(chan func(), 100),
		stop:     make(chan struct{}),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		clock:    time.Now,
	}
	s.schedule = s.scheduleAfter
	s.registerHandlers()
	return s
}

func (s *RoomService) registerHandlers() {
	s.handlers[domain.ActionJoinRoom] = handlers.WithPayload(actions.HandleJoinRoom)
	s.handlers[domain.ActionUpdatePosition] = handlers.WithPayload(actions.HandleUpdatePosition)
	s.handlers[domain.ActionSetUsername] = handlers.WithPayload(actions.HandleSetUsername)
	s.handlers[domain.ActionPlayerAttack] = handlers.WithPayload(actions.HandlePlayerAttack)
	s.handlers[domain.ActionAttackBoss] = handlers.WithPayload(actions.HandleAttackBoss)
	s.handlers[domain.ActionChatMessage] = handlers.WithPayload(actions.HandleChatMessage)
	s.handlers[domain.ActionWhisperMessage] = handlers.WithPayload(actions.HandleWhisper)
	s.handlers[domain.ActionPlaceBlock] = handlers.WithPayload(actions.HandlePlaceBlock)
	s.handlers[domain.ActionRemoveBlock] = handlers.WithPayload(actions.HandleRemoveBlock)
	s.handlers[domain.ActionPlayerAction] = handlers.WithPayload(actions.HandlePlayerAction)
}

func (s *RoomService) Start() {
	go s.run()
}

// Stop останавливает игровой цикл. Запущенные time.AfterFunc после
// остановки отбрасывают свои задачи.
func (s *RoomService) Stop() {
	close(s.stop)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket или бот).
// Доверие к walletAddress внутри payload - осознанная модель:
// криптографической проверки владения кошельком нет.
func (s *RoomService) ProcessCommand(connID string, externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"action": externalCmd.Action,
			"conn":   connID,
		}).Warn("Unknown action, dropped")
		return
	}

	s.commands <- command{
		connID:  connID,
		action:  actionType,
		payload: externalCmd.Payload,
	}
}

// Disconnect ставит очистку соединения в очередь игрового цикла.
func (s *RoomService) Disconnect(connID string) {
	select {
	case s.tasks <- func() { s.handleDisconnect(connID) }:
	case <-s.stop:
	}
}

// --- GAME LOOP ---

func (s *RoomService) run() {
	logger.Log.Info("Room loop started")

	ticker := time.NewTicker(s.cfg.Rules.BossTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			logger.Log.Info("Room loop stopped")
			return
		case cmd := <-s.commands:
			s.dispatch(cmd)
		case task := <-s.tasks:
			task()
		case now := <-ticker.C:
			s.bossTick(now)
		}
	}
}

// dispatch выполняет хендлер команды. Ошибка хендлера - это отказ по
// ссылке: текст уходит только инициатору событием error.
func (s *RoomService) dispatch(cmd command) {
	handler, ok := s.handlers[cmd.action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Rooms:    s.Rooms,
		Hub:      s,
		Rules:    s.cfg.Rules,
		Now:      s.clock(),
		ConnID:   cmd.connID,
		Schedule: s.schedule,
	}

	result, err := handler(ctx, cmd.payload)
	if err != nil {
		s.SendTo(cmd.connID, api.ServerEvent{Event: api.EvtError, Payload: err.Error()})
		logger.Log.WithFields(logrus.Fields{
			"action": cmd.action.String(),
			"conn":   cmd.connID,
		}).WithError(err).Warn("Command rejected")
		return
	}

	if result.Msg != "" {
		logger.Log.WithField("action", cmd.action.String()).Info(result.Msg)
	}
}

// scheduleAfter возвращает отложенную задачу в игровой цикл.
// Задача не отменяется и сама перепроверяет актуальность своей цели.
func (s *RoomService) scheduleAfter(d time.Duration, task func()) {
	time.AfterFunc(d, func() {
		select {
		case s.tasks <- task:
		case <-s.stop:
		}
	})
}

// handleDisconnect выселяет игрока упавшего соединения. В отличие от
// смены комнаты, уход с сервера оставляет след в истории чата.
func (s *RoomService) handleDisconnect(connID string) {
	room, player := s.Rooms.FindByConn(connID)
	if room == nil {
		return
	}

	wallet := player.WalletAddress
	username := player.Username
	delete(room.Players, wallet)

	s.Room(room.Name, api.ServerEvent{Event: api.EvtPlayerLeft, Payload: wallet})

	msg := domain.ChatMessage{
		ID:        utils.GenerateID(),
		Sender:    domain.SystemSenderLeave,
		Text:      username + " left the game",
		Timestamp: s.clock(),
		System:    true,
	}
	room.AppendChat(msg, s.cfg.Rules.MaxChatHistory)
	s.Room(room.Name, api.ServerEvent{Event: api.EvtChatMessage, Payload: actions.ToChatView(msg)})

	logger.Log.WithFields(logrus.Fields{
		"wallet": wallet,
		"room":   room.Name,
		"roster": len(room.Players),
	}).Info("Player disconnected")
}

// --- EMITTER ---
// RoomService реализует handlers.Emitter: адресация по комнатам живет
// здесь, Broadcaster знает только о соединениях.

func (s *RoomService) SendTo(connID string, evt api.ServerEvent) {
	s.Hub.SendTo(connID, evt)
}

func (s *RoomService) Room(roomName string, evt api.ServerEvent) {
	room, ok := s.Rooms.Get(roomName)
	if !ok {
		return
	}
	for _, p := range room.Players {
		s.Hub.SendTo(p.ConnID, evt)
	}
}

func (s *RoomService) RoomExcept(roomName, exceptWallet string, evt api.ServerEvent) {
	room, ok := s.Rooms.Get(roomName)
	if !ok {
		return
	}
	for wallet, p := range room.Players {
		if wallet == exceptWallet {
			continue
		}
		s.Hub.SendTo(p.ConnID, evt)
	}
}
