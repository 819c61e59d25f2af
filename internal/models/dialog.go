package models

import "keyword_chatbot/internal/responder"

// Reply 一次对话的处理结果
type Reply struct {
	SessionID string         `json:"session_id"` // 会话ID
	Turn      responder.Turn `json:"reply"`      // 机器人回复
	Matched   bool           `json:"matched"`    // 是否命中关键词
}

// DialogService 对话服务接口
type DialogService interface {
	// NewSession 创建新会话并返回会话ID
	NewSession() string

	// ProcessMessage 处理用户消息并返回回复
	ProcessMessage(sessionID string, text string) Reply

	// GetHistory 获取对话历史
	GetHistory(sessionID string) []responder.Turn

	// ClearHistory 清除对话历史
	ClearHistory(sessionID string)

	// EndSession 结束会话
	EndSession(sessionID string) bool

	// Table 当前使用的关键词表
	Table() responder.KeywordTable
}
