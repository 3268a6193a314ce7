package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rfdelacruz/property-app/realtime"
	"github.com/rfdelacruz/property-app/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type RealtimeController struct {
	hub *realtime.Hub
}

func NewRealtimeController(hub *realtime.Hub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

// Events upgrades the connection and streams audit events until the client
// disconnects. Auth middleware has already validated the token.
func (rtc *RealtimeController) Events(c *gin.Context) {
	role, _ := c.Get("role")
	roleName, _ := role.(string)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Error upgrading websocket: %v", err)
		return
	}

	rtc.hub.Register(conn, roleName)

	go func() {
		defer rtc.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
