package ws

import (
	"encoding/json"

	"temple-chambers/internal/game"
	"temple-chambers/internal/room"
)

// Envelope is the wire framing for both intents and events:
// {"action": "...", "data": {...}}.
type Envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Intent actions accepted from clients. Responses reuse the intent's action
// name and are delivered only to the requesting connection.
const (
	ActionCreateRoom   = "createRoom"
	ActionJoinRoom     = "joinRoom"
	ActionStartGame    = "startGame"
	ActionOpenChamber  = "openChamber"
	ActionGetRoomState = "getRoomState"
)

type createRoomRequest struct {
	PlayerName        string `json:"playerName"`
	TargetPlayerCount int    `json:"targetPlayerCount"`
}

type joinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type openChamberRequest struct {
	TargetPlayerID string `json:"targetPlayerId"`
	ChamberIndex   int    `json:"chamberIndex"`
}

// result is the response payload for every intent. Extra fields are filled
// per action.
type result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	RoomCode string     `json:"roomCode,omitempty"`
	Room     *room.View `json:"room,omitempty"`

	PlayerRole     game.Role      `json:"playerRole,omitempty"`
	PlayerChambers []game.Chamber `json:"playerChambers,omitempty"`
}

func okResult() result {
	return result{Success: true}
}

func errResult(err error) result {
	return result{Success: false, Error: err.Error()}
}
