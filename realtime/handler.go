// File: realtime/handler.go
package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers connect from the separately-hosted frontend.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades an authenticated request into the hub. The connection
// carries pushes only; inbound frames are drained and discarded until the
// peer goes away.
func (h *Hub) ServeWS() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Warn("realtime: upgrade failed", zap.String("userId", userID), zap.Error(err))
			return
		}

		h.Register(userID, ws)

		go func() {
			defer func() {
				h.Unregister(userID, ws)
				ws.Close()
			}()
			for {
				if _, _, err := ws.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
