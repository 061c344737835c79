package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"temple-chambers/internal/room"
)

func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// GetRoomHandler returns the public snapshot of a room, for join screens
// checking a code before connecting.
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := rm.Lookup(c.Param("code"))
		if err != nil {
			if errors.Is(err, room.ErrRoomNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}
