package handlers

import (
	"log"
	"net/http"

	"keyword_chatbot/internal/models"

	"github.com/gin-gonic/gin"
)

// DialogHandler 对话REST接口处理器
type DialogHandler struct {
	dialogSvc models.DialogService
}

// NewDialogHandler 创建对话处理器
func NewDialogHandler(dialogSvc models.DialogService) *DialogHandler {
	return &DialogHandler{dialogSvc: dialogSvc}
}

// CreateSession 创建会话
func (h *DialogHandler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, models.SessionResponse{
		SessionID: h.dialogSvc.NewSession(),
	})
}

// SendMessage 发送用户消息并返回机器人回复
func (h *DialogHandler) SendMessage(c *gin.Context) {
	var req models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("解析消息请求失败: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	reply := h.dialogSvc.ProcessMessage(c.Param("id"), req.Text)
	c.JSON(http.StatusOK, reply)
}

// GetHistory 获取对话历史
func (h *DialogHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("id")
	c.JSON(http.StatusOK, models.HistoryResponse{
		SessionID: sessionID,
		Turns:     h.dialogSvc.GetHistory(sessionID),
	})
}

// ClearHistory 清除对话历史
func (h *DialogHandler) ClearHistory(c *gin.Context) {
	h.dialogSvc.ClearHistory(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// EndSession 结束会话
func (h *DialogHandler) EndSession(c *gin.Context) {
	if !h.dialogSvc.EndSession(c.Param("id")) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTable 获取当前关键词表
func (h *DialogHandler) GetTable(c *gin.Context) {
	c.JSON(http.StatusOK, h.dialogSvc.Table())
}
