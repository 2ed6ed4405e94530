package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

func dialUserWS(t *testing.T, userID string) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/ws/notifications", HandleUserWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	token, err := utils.GenerateToken(userID, "student")
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHandleUserWebSocket_BadgeUpdate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := "11111111-2222-3333-4444-555555555555"

	conn := dialUserWS(t, userID)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// Message chào ngay sau khi kết nối
	var greeting map[string]interface{}
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &greeting))
	assert.Equal(t, "connected", greeting["type"])

	// Đợi handler đăng ký xong client vào hub rồi mới đẩy badge
	require.Eventually(t, func() bool {
		H.Mutex.RLock()
		defer H.Mutex.RUnlock()
		return len(H.UserClients[userID]) > 0
	}, 2*time.Second, 10*time.Millisecond)

	SendBadgeUpdate(userID, 3)

	var badge BadgeUpdate
	_, raw, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &badge))
	assert.Equal(t, "badge_update", badge.Type)
	assert.Equal(t, userID, badge.UserID)
	assert.Equal(t, int64(3), badge.UnreadCount)
}

func TestHandleUserWebSocket_MissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/ws/notifications", HandleUserWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestHandleUserWebSocket_ClientDisconnect(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := "99999999-8888-7777-6666-555555555555"

	conn := dialUserWS(t, userID)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage() // message chào
	require.NoError(t, err)

	conn.Close()

	// Read pump phải gỡ client khỏi hub sau khi kết nối đóng
	assert.Eventually(t, func() bool {
		H.Mutex.RLock()
		defer H.Mutex.RUnlock()
		_, ok := H.UserClients[userID]
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}
