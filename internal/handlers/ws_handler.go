package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"keyword_chatbot/internal/config"
	"keyword_chatbot/internal/metrics"
	"keyword_chatbot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// WSHandler WebSocket对话处理器
type WSHandler struct {
	dialogSvc models.DialogService
	upgrader  websocket.Upgrader
	cfg       config.WebSocketConfig
}

// wsSession 单个WebSocket连接
type wsSession struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

// send 发送JSON消息，写操作需要串行
func (s *wsSession) send(msg any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(msg)
}

func (s *wsSession) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// NewWSHandler 创建WebSocket处理器
func NewWSHandler(dialogSvc models.DialogService, cfg config.WebSocketConfig) *WSHandler {
	if cfg.PingPeriod <= 0 {
		cfg.PingPeriod = 30 * time.Second
	}
	if cfg.PongWait <= cfg.PingPeriod {
		cfg.PongWait = 2 * cfg.PingPeriod
	}
	return &WSHandler{
		dialogSvc: dialogSvc,
		cfg:       cfg,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			ReadBufferSize:   cfg.ReadBufferSize,
			WriteBufferSize:  cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // 允许所有来源
			},
		},
	}
}

// HandleWebSocket 处理WebSocket连接
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("升级WebSocket连接失败: %v", err)
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	session := &wsSession{id: sessionID, conn: conn}
	metrics.WebSocketConnections.Inc()

	h.handleSession(session)
}

// handleSession 处理会话消息，直到连接关闭
func (h *WSHandler) handleSession(session *wsSession) {
	done := make(chan struct{})
	defer func() {
		close(done)
		session.conn.Close()
		metrics.WebSocketConnections.Dec()
	}()

	session.conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	session.conn.SetPongHandler(func(string) error {
		return session.conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})
	go h.keepalive(session, done)

	if err := session.send(models.WSResponse{Type: models.WSTypeSession, SessionID: session.id}); err != nil {
		log.Printf("发送会话信息失败: %v", err)
		return
	}

	for {
		_, data, err := session.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("读取WebSocket消息失败: %v", err)
			}
			return
		}

		// 消息格式错误时返回错误消息，连接保持不变
		var resp any
		var req models.WSRequest
		if err := json.Unmarshal(data, &req); err != nil {
			log.Printf("解析WebSocket消息失败: %v", err)
			resp = models.WSResponse{
				Type:      models.WSTypeError,
				SessionID: session.id,
				Error:     "invalid message: " + err.Error(),
			}
		} else {
			resp = h.dispatch(session.id, req)
		}

		if err := session.send(resp); err != nil {
			log.Printf("发送响应失败: %v", err)
			return
		}
	}
}

// dispatch 根据消息类型调用对话服务
func (h *WSHandler) dispatch(sessionID string, req models.WSRequest) any {
	switch req.Type {
	case models.WSTypeMessage:
		reply := h.dialogSvc.ProcessMessage(sessionID, req.Text)
		return models.WSResponse{
			Type:      models.WSTypeReply,
			SessionID: sessionID,
			Reply:     &reply.Turn,
			Matched:   reply.Matched,
		}
	case models.WSTypeHistory:
		return models.WSHistoryResponse{
			Type:      models.WSTypeHistory,
			SessionID: sessionID,
			Turns:     h.dialogSvc.GetHistory(sessionID),
		}
	case models.WSTypeReset:
		h.dialogSvc.ClearHistory(sessionID)
		return models.WSResponse{Type: models.WSTypeReset, SessionID: sessionID}
	default:
		return models.WSResponse{
			Type:      models.WSTypeError,
			SessionID: sessionID,
			Error:     "unknown message type: " + req.Type,
		}
	}
}

// keepalive 定期发送Ping
func (h *WSHandler) keepalive(session *wsSession, done <-chan struct{}) {
	ticker := time.NewTicker(h.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := session.ping(); err != nil {
				log.Printf("发送心跳失败: %v", err)
				return
			}
		}
	}
}
