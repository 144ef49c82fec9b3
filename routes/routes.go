package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/BrikiApp/briki-api/handlers"
	"github.com/BrikiApp/briki-api/services"
)

// SetupPlanRoutes wires the catalog browse/search endpoints.
func SetupPlanRoutes(rg *gin.RouterGroup, db *sql.DB, cache *redis.Client) {
	store := services.NewContextStore(db, cache)
	h := &handlers.PlanHandler{Store: store}

	rg.GET("/plans/:category", h.GetPlans)
	rg.POST("/plans/:category/search", h.SearchPlans)
	rg.GET("/plans/:category/options", h.GetFilterOptions)
}

// SetupChatRoutes wires the assistant endpoints, including the WebSocket
// channel for pushed replies.
func SetupChatRoutes(rg *gin.RouterGroup, db *sql.DB, cache *redis.Client, ws *handlers.WSHandler) {
	store := services.NewContextStore(db, cache)
	assistant := services.NewAssistantService()

	h := &handlers.ChatHandler{
		Store:     store,
		Assistant: assistant,
		WS:        ws,
	}

	rg.POST("/chat/message", h.PostMessage)
	rg.GET("/chat/context/:session_id", h.GetContext)
	rg.DELETE("/chat/context/:session_id", h.ResetContext)
	rg.GET("/ws/chat/:session_id", ws.HandleWS)
}

// SetupRuntRoutes wires the vehicle registry lookup.
func SetupRuntRoutes(rg *gin.RouterGroup, db *sql.DB, cache *redis.Client) {
	h := &handlers.RuntHandler{Runt: services.NewRuntService(db, cache)}

	rg.GET("/runt/vehicle/:plate", h.GetVehicle)
}
