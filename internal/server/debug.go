package server

import (
	"encoding/json"
	"net/http"

	"craft-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию комнат.
// Чтение идет мимо игрового цикла: формально это гонка с хендлерами,
// но для read-only дебага на живом состоянии допустимо.
type DebugHandler struct {
	Service *engine.RoomService
}

func NewDebugHandler(s *engine.RoomService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/rooms", h.handleListRooms)
	mux.HandleFunc("/debug/roster", h.handleDumpRoster)
}

// /debug/rooms - сводка по всем комнатам
func (h *DebugHandler) handleListRooms(w http.ResponseWriter, r *http.Request) {
	type RoomSummary struct {
		Name        string `json:"name"`
		PlayerCount int    `json:"player_count"`
		BossType    string `json:"boss_type"`
		BossHP      int    `json:"boss_hp"`
		BossAlive   bool   `json:"boss_alive"`
		ChatLen     int    `json:"chat_len"`
		BlockCount  int    `json:"block_count"`
	}

	var summary []RoomSummary
	for _, name := range h.Service.Rooms.Names() {
		room, _ := h.Service.Rooms.Get(name)
		summary = append(summary, RoomSummary{
			Name:        name,
			PlayerCount: len(room.Players),
			BossType:    room.Boss.Type,
			BossHP:      room.Boss.HP,
			BossAlive:   room.Boss.Alive,
			ChatLen:     len(room.ChatHistory),
			BlockCount:  len(room.Blocks),
		})
	}

	writeJSON(w, summary)
}

// /debug/roster?room=Room 1 - дамп игроков комнаты, включая кулдауны
func (h *DebugHandler) handleDumpRoster(w http.ResponseWriter, r *http.Request) {
	roomName := r.URL.Query().Get("room")
	room, ok := h.Service.Rooms.Get(roomName)
	if !ok {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	writeJSON(w, room.Players)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустая сводка сериализуется как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
