// Package http wires the gin router: the websocket endpoint plus a small
// REST surface for health checks and lobby peeks.
package http

import (
	"github.com/gin-gonic/gin"

	"temple-chambers/internal/api/ws"
	"temple-chambers/internal/room"
)

func SetupRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket gateway: all game intents flow over this connection.
	r.GET("/ws", hub.HandleWS)

	r.GET("/healthz", HealthHandler())
	r.GET("/rooms/:code", GetRoomHandler(rm))

	return r
}
