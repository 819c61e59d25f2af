package routes

import (
	"keyword_chatbot/internal/config"
	"keyword_chatbot/internal/handlers"
	"keyword_chatbot/internal/middleware"
	"keyword_chatbot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, dialogSvc models.DialogService, wsCfg config.WebSocketConfig) {
	r.GET("/", handlers.Index)
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 注册对话路由
	RegisterDialogRoutes(r, dialogSvc)

	// 注册WebSocket路由
	wsHandler := handlers.NewWSHandler(dialogSvc, wsCfg)
	r.GET("/ws", wsHandler.HandleWebSocket)
}

// RegisterDialogRoutes 注册对话相关路由
func RegisterDialogRoutes(r *gin.Engine, dialogSvc models.DialogService) {
	dialogHandler := handlers.NewDialogHandler(dialogSvc)

	api := r.Group("/api")
	api.GET("/table", dialogHandler.GetTable)
	api.POST("/sessions", dialogHandler.CreateSession)
	api.POST("/sessions/:id/messages", dialogHandler.SendMessage)
	api.GET("/sessions/:id/history", dialogHandler.GetHistory)
	api.DELETE("/sessions/:id/history", dialogHandler.ClearHistory)
	api.DELETE("/sessions/:id", dialogHandler.EndSession)
}

// NewEngine 创建带中间件的gin引擎并注册路由
func NewEngine(dialogSvc models.DialogService, wsCfg config.WebSocketConfig) *gin.Engine {
	r := gin.New()
	middleware.Setup(r)
	RegisterRoutes(r, dialogSvc, wsCfg)
	return r
}
