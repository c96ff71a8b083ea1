package engine

import (
	"fmt"
	"testing"
	"time"

	"craft-server/internal/domain"
	"craft-server/pkg/api"
)

func TestJoinRoomSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ch := env.connect("c1")

	env.join("c1", "alice", "Room 1")
	events := drain(ch)

	if len(events) < 4 {
		t.Fatalf("Expected at least 4 snapshot events, got %d", len(events))
	}

	// Snapshot order is fixed: roster, boss, chat, blocks
	wantOrder := []string{api.EvtCurrentPlayers, api.EvtBossHealth, api.EvtChatHistory, api.EvtCurrentBlocks}
	for i, name := range wantOrder {
		if events[i].Event != name {
			t.Errorf("Expected event #%d to be %s, got %s", i, name, events[i].Event)
		}
	}

	roster, ok := events[0].Payload.(map[string]api.PlayerView)
	if !ok {
		t.Fatalf("Unexpected roster payload type %T", events[0].Payload)
	}
	me, ok := roster["alice"]
	if !ok {
		t.Fatal("Expected joining player in roster snapshot")
	}
	if me.HP != 40 || !me.Alive {
		t.Errorf("Expected fresh player, got hp=%d alive=%v", me.HP, me.Alive)
	}
	if me.Position != [3]float64{0, 10, 40} {
		t.Errorf("Expected spawn position, got %v", me.Position)
	}

	boss := events[1].Payload.(api.BossView)
	if boss.Type != "Giant" || boss.HP != 500 || !boss.Alive {
		t.Errorf("Unexpected boss snapshot: %+v", boss)
	}
}

func TestJoinUnknownRoom(t *testing.T) {
	env := newTestEnv(t)
	ch := env.connect("c1")

	env.join("c1", "alice", "Atlantis")
	events := drain(ch)

	evt := findEvent(t, events, api.EvtError)
	if evt.Payload != "Room does not exist" {
		t.Errorf("Unexpected error payload: %v", evt.Payload)
	}
	if _, p := env.s.Rooms.FindByWallet("alice"); p != nil {
		t.Error("Expected alice not placed in any room")
	}
}

func TestRoomExclusivity(t *testing.T) {
	env := newTestEnv(t)
	chAlice := env.connect("c1")
	chBob := env.connect("c2")

	env.join("c1", "alice", "Room 1")
	env.join("c2", "bob", "Room 1")
	drain(chAlice)
	drain(chBob)

	// Switching rooms evicts the wallet from the previous one
	env.join("c1", "alice", "Room 2")

	bobEvents := drain(chBob)
	left := findEvent(t, bobEvents, api.EvtPlayerLeft)
	if left.Payload != "alice" {
		t.Errorf("Expected playerLeft for alice, got %v", left.Payload)
	}

	room1, _ := env.s.Rooms.Get("Room 1")
	if _, ok := room1.Players["alice"]; ok {
		t.Error("Expected alice removed from Room 1")
	}
	room2, _ := env.s.Rooms.Get("Room 2")
	if _, ok := room2.Players["alice"]; !ok {
		t.Error("Expected alice present in Room 2")
	}
}

func TestRejoinResetsPlayer(t *testing.T) {
	env := newTestEnv(t)
	env.connect("c1")

	env.join("c1", "alice", "Room 1")
	room, _ := env.s.Rooms.Get("Room 1")
	room.Players["alice"].HP = 10
	room.Players["alice"].Position = domain.Vec3{99, 0, 99}

	// Rejoining the same room rebuilds the player from scratch
	env.join("c1", "alice", "Room 1")

	p := room.Players["alice"]
	if p.HP != 40 || p.Position != (domain.Vec3{0, 10, 40}) {
		t.Errorf("Expected fresh player after rejoin, got hp=%d pos=%v", p.HP, p.Position)
	}
}

func TestPositionRelay(t *testing.T) {
	env := newTestEnv(t)
	chAlice := env.connect("c1")
	chBob := env.connect("c2")
	env.join("c1", "alice", "Room 1")
	env.join("c2", "bob", "Room 1")
	drain(chAlice)
	drain(chBob)

	env.send("c1", "updatePosition", api.UpdatePositionPayload{
		WalletAddress: "alice",
		RoomName:      "Room 1",
		Position:      [3]float64{5, 10, 5},
		Rotation:      [3]float64{0, 1, 0},
	})

	bobEvents := drain(chBob)
	moved := findEvent(t, bobEvents, api.EvtPlayerMoved).Payload.(api.PlayerMovedView)
	if moved.WalletAddress != "alice" || moved.Position != [3]float64{5, 10, 5} {
		t.Errorf("Unexpected move relay: %+v", moved)
	}

	// The mover itself gets no echo
	if countEvents(drain(chAlice), api.EvtPlayerMoved) != 0 {
		t.Error("Expected no playerMoved echo to the mover")
	}

	room, _ := env.s.Rooms.Get("Room 1")
	if room.Players["alice"].Position != (domain.Vec3{5, 10, 5}) {
		t.Error("Expected server-side position updated")
	}
}

func TestChatHistoryEviction(t *testing.T) {
	env := newTestEnv(t)
	ch := env.connect("c1")
	env.join("c1", "alice", "Room 1")
	drain(ch)

	for i := 0; i < 51; i++ {
		env.send("c1", "chat_message", api.ChatMessagePayload{
			WalletAddress: "alice",
			RoomName:      "Room 1",
			Text:          fmt.Sprintf("msg-%d", i),
		})
	}

	room, _ := env.s.Rooms.Get("Room 1")
	if len(room.ChatHistory) != 50 {
		t.Fatalf("Expected history capped at 50, got %d", len(room.ChatHistory))
	}
	if room.ChatHistory[0].Text != "msg-1" {
		t.Errorf("Expected oldest message evicted, head is %s", room.ChatHistory[0].Text)
	}

	if countEvents(drain(ch), api.EvtChatMessage) != 51 {
		t.Error("Expected every message broadcast including the sender")
	}
}

func TestWhisperIsolation(t *testing.T) {
	env := newTestEnv(t)
	chAlice := env.connect("c1")
	chBob := env.connect("c2")
	chEve := env.connect("c3")
	env.join("c1", "alice", "Room 1")
	env.join("c2", "bob", "Room 1")
	env.join("c3", "eve", "Room 1")
	drain(chAlice)
	drain(chBob)
	drain(chEve)

	env.send("c1", "whisper_message", api.WhisperPayload{
		WalletAddress: "alice",
		RoomName:      "Room 1",
		TargetWallet:  "bob",
		Text:          "psst",
	})

	bobEvents := drain(chBob)
	whisper := findEvent(t, bobEvents, api.EvtWhisperMessage).Payload.(api.ChatMessageView)
	if !whisper.Whisper || whisper.TargetWallet != "bob" || whisper.Text != "psst" {
		t.Errorf("Unexpected whisper payload: %+v", whisper)
	}

	// The sender gets an echo, third parties get nothing
	if countEvents(drain(chAlice), api.EvtWhisperMessage) != 1 {
		t.Error("Expected whisper echo to the sender")
	}
	if countEvents(drain(chEve), api.EvtWhisperMessage) != 0 {
		t.Error("Expected no whisper leak to third parties")
	}

	room, _ := env.s.Rooms.Get("Room 1")
	if len(room.ChatHistory) != 0 {
		t.Error("Expected whispers kept out of room history")
	}
}

func TestBlockJournalReplay(t *testing.T) {
	env := newTestEnv(t)
	chAlice := env.connect("c1")
	env.join("c1", "alice", "Room 1")
	drain(chAlice)

	env.send("c1", "place_block", api.PlaceBlockPayload{
		WalletAddress: "alice",
		RoomName:      "Room 1",
		Position:      [3]float64{1, 2, 3},
		Type:          "stone",
	})

	// The placer gets no echo
	if countEvents(drain(chAlice), api.EvtBlockPlaced) != 0 {
		t.Error("Expected no block_placed echo to the placer")
	}

	// A later joiner replays the journal in the snapshot
	chBob := env.connect("c2")
	env.join("c2", "bob", "Room 1")
	bobEvents := drain(chBob)
	blocks := findEvent(t, bobEvents, api.EvtCurrentBlocks).Payload.([]api.BlockView)
	if len(blocks) != 1 || blocks[0].Type != "stone" || blocks[0].PlacedBy != "alice" {
		t.Fatalf("Unexpected block snapshot: %+v", blocks)
	}

	env.send("c2", "remove_block", api.RemoveBlockPayload{
		WalletAddress: "bob",
		RoomName:      "Room 1",
		Position:      [3]float64{1, 2, 3},
	})

	removed := findEvent(t, drain(chAlice), api.EvtBlockRemoved).Payload.(api.BlockRemovedView)
	if removed.Position != [3]float64{1, 2, 3} {
		t.Errorf("Unexpected removal payload: %+v", removed)
	}

	room, _ := env.s.Rooms.Get("Room 1")
	if len(room.Blocks) != 0 {
		t.Errorf("Expected empty journal, got %d entries", len(room.Blocks))
	}
}

func TestPvPKillAndRespawn(t *testing.T) {
	env := newTestEnv(t)
	chAlice := env.connect("c1")
	chBob := env.connect("c2")
	env.join("c1", "alice", "Room 1")
	env.join("c2", "bob", "Room 1")
	drain(chAlice)
	drain(chBob)

	attack := api.PlayerAttackPayload{
		AttackerWallet: "alice",
		TargetWallet:   "bob",
		RoomName:       "Room 1",
	}

	// 40 HP at 6 damage per hit: the 7th hit kills
	for i := 0; i < 7; i++ {
		env.advance(600 * time.Millisecond)
		env.send("c1", "player_attack", attack)
	}

	bobEvents := drain(chBob)
	if n := countEvents(bobEvents, api.EvtPlayerHit); n != 7 {
		t.Errorf("Expected 7 hits, got %d", n)
	}
	dead := findEvent(t, bobEvents, api.EvtPlayerDead).Payload.(api.PlayerDeadView)
	if dead.WalletAddress != "bob" || dead.KilledBy != "alice" {
		t.Errorf("Unexpected death payload: %+v", dead)
	}

	if len(env.tasks) != 1 {
		t.Fatalf("Expected 1 scheduled respawn, got %d", len(env.tasks))
	}
	if env.tasks[0].delay != 3*time.Second {
		t.Errorf("Expected 3s respawn delay, got %v", env.tasks[0].delay)
	}

	env.runTasks()

	respawn := findEvent(t, drain(chBob), api.EvtPlayerRespawn).Payload.(api.PlayerRespawnView)
	if respawn.WalletAddress != "bob" || respawn.HP != 40 {
		t.Errorf("Unexpected respawn payload: %+v", respawn)
	}
	if respawn.Position != [3]float64{0, 10, 40} {
		t.Errorf("Expected respawn at spawn point, got %v", respawn.Position)
	}

	room, _ := env.s.Rooms.Get("Room 1")
	if !room.Players["bob"].Alive {
		t.Error("Expected bob alive after respawn")
	}
	if room.Players["bob"].HP != 40 {
		t.Errorf("Expected full HP after respawn, got %d", room.Players["bob"].HP)
	}
}

func TestStaleRespawnTask(t *testing.T) {
	env := newTestEnv(t)
	env.connect("c1")
	chBob := env.connect("c2")
	env.join("c1", "alice", "Room 1")
	env.join("c2", "bob", "Room 1")

	room, _ := env.s.Rooms.Get("Room 1")
	room.Players["bob"].HP = 6

	env.advance(time.Second)
	env.send("c1", "player_attack", api.PlayerAttackPayload{
		AttackerWallet: "alice",
		TargetWallet:   "bob",
		RoomName:       "Room 1",
	})

	// Bob rejoins before the respawn timer fires: the stale task must
	// not touch the fresh player.
	env.join("c2", "bob", "Room 1")
	drain(chBob)

	env.runTasks()

	if countEvents(drain(chBob), api.EvtPlayerRespawn) != 0 {
		t.Error("Expected stale respawn task to be a no-op")
	}
	if room.Players["bob"].HP != 40 {
		t.Errorf("Expected untouched fresh player, got hp=%d", room.Players["bob"].HP)
	}
}

func TestAttackCooldownShared(t *testing.T) {
	env := newTestEnv(t)
	env.connect("c1")
	chBob := env.connect("c2")
	env.join("c1", "alice", "Room 1")
	env.join("c2", "bob", "Room 1")
	drain(chBob)

	attack := api.PlayerAttackPayload{
		AttackerWallet: "alice",
		TargetWallet:   "bob",
		RoomName:       "Room 1",
	}

	env.advance(time.Second)
	env.send("c1", "player_attack", attack)
	// Second swing inside the 500ms window is dropped
	env.advance(100 * time.Millisecond)
	env.send("c1", "player_attack", attack)

	if n := countEvents(drain(chBob), api.EvtPlayerHit); n != 1 {
		t.Errorf("Expected 1 hit, got %d", n)
	}

	room, _ := env.s.Rooms.Get("Room 1")
	if room.Players["bob"].HP != 34 {
		t.Errorf("Expected bob at 34 HP, got %d", room.Players["bob"].HP)
	}
}

func TestBossKillAndRespawn(t *testing.T) {
	env := newTestEnv(t)
	ch := env.connect("c1")
	env.join("c1", "alice", "Room 1")
	drain(ch)

	room, _ := env.s.Rooms.Get("Room 1")
	room.Boss.HP = 6

	env.advance(time.Second)
	env.send("c1", "attack_boss", api.AttackBossPayload{
		WalletAddress: "alice",
		RoomName:      "Room 1",
	})

	events := drain(ch)
	health := findEvent(t, events, api.EvtBossHealth).Payload.(api.BossView)
	if health.HP != 0 || health.Alive {
		t.Errorf("Expected dead boss broadcast, got %+v", health)
	}
	dead := findEvent(t, events, api.EvtBossDead).Payload.(api.BossDeadView)
	if dead.KilledBy != "alice" || dead.BossType != "Giant" || dead.RoomName != "Room 1" {
		t.Errorf("Unexpected boss_dead payload: %+v", dead)
	}

	if len(env.tasks) != 1 || env.tasks[0].delay != 30*time.Second {
		t.Fatalf("Expected one 30s respawn task, got %+v", env.tasks)
	}

	historyBefore := len(room.ChatHistory)
	env.runTasks()

	if !room.Boss.Alive || room.Boss.HP != 500 {
		t.Errorf("Expected fresh boss after respawn, got hp=%d alive=%v", room.Boss.HP, room.Boss.Alive)
	}

	events = drain(ch)
	health = findEvent(t, events, api.EvtBossHealth).Payload.(api.BossView)
	if health.HP != 500 || !health.Alive {
		t.Errorf("Expected full boss broadcast, got %+v", health)
	}
	msg := findEvent(t, events, api.EvtChatMessage).Payload.(api.ChatMessageView)
	if !msg.System || msg.Text != "The Giant has returned!" {
		t.Errorf("Unexpected return announcement: %+v", msg)
	}

	// The announcement is broadcast but never stored
	if len(room.ChatHistory) != historyBefore {
		t.Error("Expected boss announcement kept out of history")
	}
}

func TestDisconnectCleanup(t *testing.T) {
	env := newTestEnv(t)
	env.connect("c1")
	chBob := env.connect("c2")
	env.join("c1", "alice", "Room 1")
	env.join("c2", "bob", "Room 1")
	drain(chBob)

	env.s.handleDisconnect("c1")

	bobEvents := drain(chBob)
	left := findEvent(t, bobEvents, api.EvtPlayerLeft)
	if left.Payload != "alice" {
		t.Errorf("Expected playerLeft for alice, got %v", left.Payload)
	}

	msg := findEvent(t, bobEvents, api.EvtChatMessage).Payload.(api.ChatMessageView)
	if !msg.System || msg.Sender != domain.SystemSenderLeave {
		t.Errorf("Unexpected leave announcement: %+v", msg)
	}
	if msg.Text != "alice left the game" {
		t.Errorf("Unexpected leave text: %q", msg.Text)
	}

	// Unlike the boss announcement, the leave message is stored
	room, _ := env.s.Rooms.Get("Room 1")
	if len(room.ChatHistory) != 1 {
		t.Errorf("Expected leave message in history, got %d entries", len(room.ChatHistory))
	}
	if _, ok := room.Players["alice"]; ok {
		t.Error("Expected alice removed from roster")
	}

	// Disconnect of an unknown connection is a no-op
	env.s.handleDisconnect("c99")
}

func TestBossTick(t *testing.T) {
	env := newTestEnv(t)
	ch := env.connect("c1")
	env.join("c1", "alice", "Room 1")

	// Walk into the boss's aggro range
	env.send("c1", "updatePosition", api.UpdatePositionPayload{
		WalletAddress: "alice",
		RoomName:      "Room 1",
		Position:      [3]float64{25, 1, 26},
	})
	drain(ch)

	env.s.bossTick(env.now)

	intent := findEvent(t, drain(ch), api.EvtBossAttack).Payload.(api.BossAttackView)
	if intent.TargetWallet != "alice" || intent.Damage != 4 {
		t.Errorf("Unexpected boss attack: %+v", intent)
	}

	// The per-boss attack interval gates the next tick
	env.advance(500 * time.Millisecond)
	env.s.bossTick(env.now)
	if countEvents(drain(ch), api.EvtBossAttack) != 0 {
		t.Error("Expected no attack inside the boss interval")
	}

	env.advance(2 * time.Second)
	env.s.bossTick(env.now)
	if countEvents(drain(ch), api.EvtBossAttack) != 1 {
		t.Error("Expected attack after the interval elapsed")
	}
}

func TestUsernameUpdate(t *testing.T) {
	env := newTestEnv(t)
	chAlice := env.connect("c1")
	env.join("c1", "alice", "Room 1")
	drain(chAlice)

	env.send("c1", "set_username", api.SetUsernamePayload{
		WalletAddress: "alice",
		RoomName:      "Room 1",
		Username:      "a-name-way-too-long-to-keep",
	})

	// Broadcast includes the initiator
	update := findEvent(t, drain(chAlice), api.EvtUsernameUpdate).Payload.(api.UsernameUpdateView)
	if len(update.Username) != domain.MaxUsernameLength {
		t.Errorf("Expected clamped username, got %q", update.Username)
	}

	room, _ := env.s.Rooms.Get("Room 1")
	if room.Players["alice"].Username != update.Username {
		t.Error("Expected stored username to match broadcast")
	}
}

func TestActionRelay(t *testing.T) {
	env := newTestEnv(t)
	chAlice := env.connect("c1")
	chBob := env.connect("c2")
	env.join("c1", "alice", "Room 1")
	env.join("c2", "bob", "Room 1")
	drain(chAlice)
	drain(chBob)

	env.send("c1", "player_action", api.PlayerActionPayload{
		WalletAddress: "alice",
		RoomName:      "Room 1",
		Action:        "attacking",
	})

	relay := findEvent(t, drain(chBob), api.EvtPlayerAction).Payload.(api.PlayerActionView)
	if relay.WalletAddress != "alice" || relay.Action != "attacking" {
		t.Errorf("Unexpected action relay: %+v", relay)
	}
	if countEvents(drain(chAlice), api.EvtPlayerAction) != 0 {
		t.Error("Expected no action echo to the initiator")
	}
}
