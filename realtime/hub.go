package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/utils"
)

// Event types pushed to admin dashboards.
const (
	EventChangeRecorded = "change_recorded"
	EventTrashUpdated   = "trash_updated"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans audit events out to connected dashboard clients.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// Register adds a connection with the authenticated role.
func (h *Hub) Register(conn *websocket.Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// Unregister drops a connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ChangeRecorded implements audit.Notifier. Deletes and restores also get
// a trash event so the trash-bin view refreshes without polling.
func (h *Hub) ChangeRecorded(rec models.ChangeRecord) {
	h.broadcast(Message{Event: EventChangeRecorded, Data: rec})

	if rec.Action == models.ActionDelete || rec.Action == models.ActionRestore {
		h.broadcast(Message{Event: EventTrashUpdated, Data: map[string]interface{}{
			"entity_type": rec.SubjectType,
			"subject_id":  rec.SubjectID,
			"action":      rec.Action,
		}})
	}
}

func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling realtime message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error broadcasting to client: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
