package realtime_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/realtime"
	"github.com/rfdelacruz/property-app/utils"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func dialHub(t *testing.T, hub *realtime.Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(conn, "admin")
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) realtime.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg realtime.Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	return msg
}

func TestUpdateBroadcastsChangeEventOnly(t *testing.T) {
	utils.InitLogger()
	hub := realtime.NewHub()
	conn := dialHub(t, hub)

	hub.ChangeRecorded(models.ChangeRecord{
		Action:      models.ActionUpdate,
		SubjectType: "building",
		SubjectID:   7,
	})

	msg := readMessage(t, conn)
	assert.Equal(t, realtime.EventChangeRecorded, msg.Event)

	// No trash event follows an update.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestDeleteBroadcastsTrashEvent(t *testing.T) {
	utils.InitLogger()
	hub := realtime.NewHub()
	conn := dialHub(t, hub)

	hub.ChangeRecorded(models.ChangeRecord{
		Action:      models.ActionDelete,
		SubjectType: "building",
		SubjectID:   7,
	})

	first := readMessage(t, conn)
	assert.Equal(t, realtime.EventChangeRecorded, first.Event)

	second := readMessage(t, conn)
	assert.Equal(t, realtime.EventTrashUpdated, second.Event)
	data := second.Data.(map[string]interface{})
	assert.Equal(t, "building", data["entity_type"])
	assert.Equal(t, models.ActionDelete, data["action"])
}
