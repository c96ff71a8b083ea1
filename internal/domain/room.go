package domain

import "sort"

// Room - изолированный раздел игрового состояния. Игроки, босс, чат и
// блоки одной комнаты невидимы для другой.
type Room struct {
	Name        string
	Players     map[string]*Player // кошелек -> игрок
	Boss        *Boss
	ChatHistory []ChatMessage
	Blocks      []PlacedBlock
}

// NewRoom создает комнату с живым боссом из статической конфигурации.
func NewRoom(name string, cfg BossConfig) *Room {
	return &Room{
		Name:    name,
		Players: make(map[string]*Player),
		Boss:    NewBoss(cfg),
	}
}

// AppendChat добавляет сообщение в ограниченную историю.
// При переполнении вытесняется самое старое сообщение.
func (r *Room) AppendChat(msg ChatMessage, capacity int) {
	r.ChatHistory = append(r.ChatHistory, msg)
	if capacity > 0 && len(r.ChatHistory) > capacity {
		r.ChatHistory = r.ChatHistory[len(r.ChatHistory)-capacity:]
	}
}

// PlaceBlock добавляет запись в журнал блоков. maxBlocks=0 - без лимита,
// журнал растет все время жизни процесса. Возвращает false, если лимит
// настроен и исчерпан.
func (r *Room) PlaceBlock(b PlacedBlock, maxBlocks int) bool {
	if maxBlocks > 0 && len(r.Blocks) >= maxBlocks {
		return false
	}
	r.Blocks = append(r.Blocks, b)
	return true
}

// RemoveBlocksAt удаляет ВСЕ записи с точно совпадающей позицией.
func (r *Room) RemoveBlocksAt(pos Vec3) {
	kept := r.Blocks[:0]
	for _, b := range r.Blocks {
		if b.Pos != pos {
			kept = append(kept, b)
		}
	}
	r.Blocks = kept
}

// SortedWallets возвращает кошельки ростера в стабильном порядке.
// Нужен для детерминированного выбора цели при равных дистанциях.
func (r *Room) SortedWallets() []string {
	wallets := make([]string, 0, len(r.Players))
	for w := range r.Players {
		wallets = append(wallets, w)
	}
	sort.Strings(wallets)
	return wallets
}

// RoomStore - явная таблица комнат, передаваемая хендлерам через
// зависимость (а не глобальная переменная). Набор комнат фиксируется
// на старте и не меняется в рантайме.
type RoomStore struct {
	rooms map[string]*Room
	names []string // стабильный порядок обхода
}

// NewRoomStore создает все комнаты из конфигурации боссов.
func NewRoomStore(bosses map[string]BossConfig) *RoomStore {
	s := &RoomStore{rooms: make(map[string]*Room, len(bosses))}
	for name := range bosses {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	for _, name := range s.names {
		s.rooms[name] = NewRoom(name, bosses[name])
	}
	return s
}

// Get возвращает комнату по имени.
func (s *RoomStore) Get(name string) (*Room, bool) {
	room, ok := s.rooms[name]
	return room, ok
}

// Names возвращает имена комнат в стабильном порядке.
func (s *RoomStore) Names() []string {
	return s.names
}

// FindByWallet ищет комнату, в которой сейчас находится кошелек.
// Инвариант: кошелек занимает не больше одной комнаты.
func (s *RoomStore) FindByWallet(wallet string) (*Room, *Player) {
	for _, name := range s.names {
		room := s.rooms[name]
		if p, ok := room.Players[wallet]; ok {
			return room, p
		}
	}
	return nil, nil
}

// FindByConn ищет игрока по идентификатору соединения.
// Используется путем очистки при дисконнекте.
func (s *RoomStore) FindByConn(connID string) (*Room, *Player) {
	for _, name := range s.names {
		room := s.rooms[name]
		for _, p := range room.Players {
			if p.ConnID == connID {
				return room, p
			}
		}
	}
	return nil, nil
}
