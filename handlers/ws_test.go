package handlers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/ws/chat/abc-123", "abc-123"},
		{"/api/v1/ws/chat/abc-123/", "abc-123"},
		{"/ws/chat/xyz", "xyz"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sessionIDFromPath(tt.path))
	}
}

// Concurrent subscribers on different sessions must each receive exactly
// their own session's replies.
func TestBroadcastReply_PerSessionDeliveryUnderConcurrentConnects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ws := NewWSHandler()
	r := gin.New()
	r.GET("/ws/chat/:session_id", ws.HandleWS)

	srv := httptest.NewServer(r)
	defer srv.Close()
	wsBase := "ws" + strings.TrimPrefix(srv.URL, "http")

	const sessions = 16
	conns := make([]*websocket.Conn, sessions)

	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conn, _, err := websocket.DefaultDialer.Dial(
				fmt.Sprintf("%s/ws/chat/session-%d", wsBase, i), nil)
			if err != nil {
				t.Errorf("dial session-%d: %v", i, err)
				return
			}
			conns[i] = conn
		}(i)
	}
	wg.Wait()
	defer func() {
		for _, conn := range conns {
			if conn != nil {
				conn.Close()
			}
		}
	}()

	// Wait for melody to register every upgraded session.
	require.Eventually(t, func() bool {
		return ws.M.Len() == sessions
	}, 2*time.Second, 10*time.Millisecond)

	for i := 0; i < sessions; i++ {
		ws.BroadcastReply(fmt.Sprintf("session-%d", i), fmt.Sprintf("reply-%d", i))
	}

	for i, conn := range conns {
		require.NotNil(t, conn)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

		_, raw, err := conn.ReadMessage()
		require.NoError(t, err, "session-%d missed its own broadcast", i)

		var msg struct {
			Type      string `json:"type"`
			SessionID string `json:"session_id"`
			Reply     string `json:"reply"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "assistant_reply", msg.Type)
		assert.Equal(t, fmt.Sprintf("session-%d", i), msg.SessionID)
		assert.Equal(t, fmt.Sprintf("reply-%d", i), msg.Reply)

		// No cross-session traffic should follow.
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
		_, _, err = conn.ReadMessage()
		assert.Error(t, err, "session-%d received a second message", i)
	}
}
