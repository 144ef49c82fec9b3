package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BrikiApp/briki-api/data"
	"github.com/BrikiApp/briki-api/models"
	"github.com/BrikiApp/briki-api/services"
)

type ChatHandler struct {
	Store     *services.ContextStore
	Assistant *services.AssistantService
	WS        *WSHandler
}

// maximum plans fed to the assistant per reply
const maxSuggestedPlans = 3

// PostMessage handles POST /chat/message: extract context from the message,
// persist the merge, pick suggested plans, and answer.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	} else if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id must be a UUID"})
		return
	}

	ctx := c.Request.Context()

	current, err := h.Store.Get(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session context"})
		return
	}

	merged := services.ExtractContext(req.Message, current)
	if err := h.Store.Save(ctx, sessionID, merged); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session context"})
		return
	}

	var suggested []models.InsurancePlan
	if category, ok := services.SuggestedCategory(merged); ok && services.HasInsuranceIntent(req.Message) {
		ranked := services.ApplySort(data.Catalog(category), models.SortRecommended)
		if len(ranked) > maxSuggestedPlans {
			ranked = ranked[:maxSuggestedPlans]
		}
		suggested = ranked
	}

	reply, err := h.Assistant.Reply(ctx, req.Message, merged, suggested)
	if err != nil {
		log.Printf("❌ Assistant error for session %s: %v", sessionID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant is unavailable"})
		return
	}

	resp := models.ChatMessageResponse{
		SessionID:      sessionID,
		Reply:          reply,
		Context:        merged,
		SuggestedPlans: suggested,
	}

	if h.WS != nil {
		h.WS.BroadcastReply(sessionID, reply)
	}

	c.JSON(http.StatusOK, resp)
}

// GetContext handles GET /chat/context/:session_id.
func (h *ChatHandler) GetContext(c *gin.Context) {
	sessionID := c.Param("session_id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id must be a UUID"})
		return
	}

	ctx, err := h.Store.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"context":    ctx,
	})
}

// ResetContext handles DELETE /chat/context/:session_id.
func (h *ChatHandler) ResetContext(c *gin.Context) {
	sessionID := c.Param("session_id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id must be a UUID"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "reset": true})
}
