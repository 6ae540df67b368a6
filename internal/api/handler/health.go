package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health is a simple liveness check outside the signaling protocol.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Stats reports diagnostic counters about the live state.
func (h *Handler) Stats(c *gin.Context) {
	active, waiting := h.Storage.Stats()
	c.JSON(http.StatusOK, gin.H{
		"clients":      h.Hub.ClientCount(),
		"activeRooms":  active,
		"waitingRooms": waiting,
	})
}
