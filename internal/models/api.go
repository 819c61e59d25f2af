package models

import "keyword_chatbot/internal/responder"

// MessageRequest 发送消息请求
type MessageRequest struct {
	Text string `json:"text"` // 用户输入，允许为空
}

// SessionResponse 创建会话响应
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// HistoryResponse 对话历史响应
type HistoryResponse struct {
	SessionID string           `json:"session_id"`
	Turns     []responder.Turn `json:"turns"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}

// WebSocket消息类型
const (
	WSTypeSession = "session"
	WSTypeMessage = "message"
	WSTypeReply   = "reply"
	WSTypeHistory = "history"
	WSTypeReset   = "reset"
	WSTypeError   = "error"
)

// WSRequest 客户端发来的WebSocket消息
type WSRequest struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// WSResponse 服务端发出的WebSocket消息
type WSResponse struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	Reply     *responder.Turn `json:"reply,omitempty"`
	Matched   bool            `json:"matched,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// WSHistoryResponse 对话历史消息，空记录也输出 "turns": []
type WSHistoryResponse struct {
	Type      string           `json:"type"`
	SessionID string           `json:"session_id"`
	Turns     []responder.Turn `json:"turns"`
}
