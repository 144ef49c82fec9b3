package handlers

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes assistant replies to browsers subscribed to a chat
// session, so a tab can receive answers triggered from another tab.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 64 * 1024

	// Keep-alive, needed behind cloud load balancers
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	// Registered once: melody keeps a single connect handler, so the session
	// id must come from the upgraded request itself, not from a per-request
	// closure.
	m.HandleConnect(func(s *melody.Session) {
		sessionID := sessionIDFromPath(s.Request.URL.Path)
		s.Set("session_id", sessionID)
		log.Printf("✅ Client connected to chat session: %s", sessionID)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		sessionID, _ := s.Get("session_id")
		log.Printf("🔌 Client disconnected from chat session: %v", sessionID)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// sessionIDFromPath pulls the trailing segment of /ws/chat/:session_id.
func sessionIDFromPath(path string) string {
	path = strings.TrimRight(path, "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}

// HandleWS upgrades GET /ws/chat/:session_id to a WebSocket subscription.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastReply delivers an assistant reply to every subscriber of the
// session.
func (h *WSHandler) BroadcastReply(sessionID, reply string) {
	msg, err := json.Marshal(gin.H{
		"type":       "assistant_reply",
		"session_id": sessionID,
		"reply":      reply,
	})
	if err != nil {
		return
	}

	err = h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		id, exists := q.Get("session_id")
		return exists && id == sessionID
	})
	if err != nil {
		log.Printf("⚠️ Error broadcasting to session %s: %v", sessionID, err)
	}
}
