package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"craft-server/pkg/api"
)

// schemagen generates a JSON schema for the client protocol payloads.
// The web client uses it to validate outgoing commands in development builds.
func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	schema := buildSchema()

	if err := writeSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

// protocol is the reflection root: one field per command payload.
type protocol struct {
	JoinRoom       api.JoinRoomPayload       `json:"joinRoom"`
	UpdatePosition api.UpdatePositionPayload `json:"updatePosition"`
	SetUsername    api.SetUsernamePayload    `json:"set_username"`
	PlayerAttack   api.PlayerAttackPayload   `json:"player_attack"`
	AttackBoss     api.AttackBossPayload     `json:"attack_boss"`
	ChatMessage    api.ChatMessagePayload    `json:"chat_message"`
	Whisper        api.WhisperPayload        `json:"whisper_message"`
	PlaceBlock     api.PlaceBlockPayload     `json:"place_block"`
	RemoveBlock    api.RemoveBlockPayload    `json:"remove_block"`
	PlayerAction   api.PlayerActionPayload   `json:"player_action"`
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(protocol))
	schema.Title = "Craft Server Client Protocol"
	schema.Description = "Validates command payloads sent over the websocket connection"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
