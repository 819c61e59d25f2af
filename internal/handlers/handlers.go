package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Index 根路由
func Index(c *gin.Context) {
	c.String(http.StatusOK, "Keyword Chatbot Server Running")
}

// Health 健康检查
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "keyword_chatbot",
		"time":    time.Now().Format(time.RFC3339),
	})
}
