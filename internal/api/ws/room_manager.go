package ws

import (
	"temple-chambers/internal/game"
	"temple-chambers/internal/room"
)

// RoomManager is the slice of the room manager the gateway forwards to.
type RoomManager interface {
	CreateRoom(connID, name string, targetPlayerCount int) (room.View, error)
	JoinRoom(code, connID, name string) (room.View, error)
	StartGame(connID string) error
	OpenChamber(connID, targetPlayerID string, chamberIndex int) error
	RoomState(connID string) (room.View, game.Role, []game.Chamber, error)
	RemoveConnection(connID string)
}
