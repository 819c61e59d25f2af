package services

import (
	"context"
	"log"
	"sync"
	"time"

	"keyword_chatbot/internal/metrics"
	"keyword_chatbot/internal/models"
	"keyword_chatbot/internal/responder"

	"github.com/google/uuid"
)

// DialogContext 对话上下文
type DialogContext struct {
	SessionID    string
	Responder    *responder.Responder
	LastActivity time.Time
	mu           sync.Mutex
	closed       bool // 已从会话表移除，持有 mu 时读写
}

// DialogService 处理对话服务，每个会话持有独立的应答器
type DialogService struct {
	table    responder.KeywordTable
	sessions map[string]*DialogContext
	mu       sync.RWMutex
	now      func() time.Time
}

var _ models.DialogService = (*DialogService)(nil)

// NewDialogService 创建新的对话服务
func NewDialogService(table responder.KeywordTable) *DialogService {
	return &DialogService{
		table:    table,
		sessions: make(map[string]*DialogContext),
		now:      time.Now,
	}
}

// Table 当前使用的关键词表
func (s *DialogService) Table() responder.KeywordTable {
	return s.table
}

// NewSession 创建新会话
func (s *DialogService) NewSession() string {
	sessionID := uuid.New().String()
	s.getOrCreateSession(sessionID)
	return sessionID
}

// getOrCreateSession 获取或创建会话
func (s *DialogService) getOrCreateSession(sessionID string) *DialogContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx, exists := s.sessions[sessionID]; exists {
		ctx.LastActivity = s.now()
		return ctx
	}

	ctx := &DialogContext{
		SessionID:    sessionID,
		Responder:    responder.New(s.table),
		LastActivity: s.now(),
	}
	s.sessions[sessionID] = ctx
	metrics.SessionsActive.Inc()
	return ctx
}

// lookup 查找已存在的会话并刷新活跃时间
func (s *DialogService) lookup(sessionID string) (*DialogContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.sessions[sessionID]
	if ok {
		ctx.LastActivity = s.now()
	}
	return ctx, ok
}

// remove 从会话表移除并标记关闭，调用方持有 s.mu
func (s *DialogService) remove(sessionID string, ctx *DialogContext) {
	ctx.mu.Lock()
	ctx.closed = true
	ctx.mu.Unlock()
	delete(s.sessions, sessionID)
}

// ProcessMessage 处理用户消息
func (s *DialogService) ProcessMessage(sessionID string, text string) models.Reply {
	for {
		ctx := s.getOrCreateSession(sessionID)
		ctx.mu.Lock()
		if ctx.closed {
			// 取到会话后被回收，重新注册
			ctx.mu.Unlock()
			continue
		}

		turn, matched := ctx.Responder.SubmitMatched(text)
		ctx.mu.Unlock()
		metrics.ObserveReply(matched)

		return models.Reply{
			SessionID: sessionID,
			Turn:      turn,
			Matched:   matched,
		}
	}
}

// GetHistory 获取对话历史，未知会话返回空列表
func (s *DialogService) GetHistory(sessionID string) []responder.Turn {
	ctx, ok := s.lookup(sessionID)
	if !ok {
		return []responder.Turn{}
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if ctx.closed {
		return []responder.Turn{}
	}
	return ctx.Responder.History()
}

// ClearHistory 清除对话历史
func (s *DialogService) ClearHistory(sessionID string) {
	ctx, ok := s.lookup(sessionID)
	if !ok {
		return
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	ctx.Responder.Reset()
}

// EndSession 结束会话，返回会话是否存在
func (s *DialogService) EndSession(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.sessions[sessionID]
	if !ok {
		return false
	}
	s.remove(sessionID, ctx)
	metrics.SessionsActive.Dec()
	return true
}

// SessionCount 当前会话数
func (s *DialogService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle 回收空闲超过 maxIdle 的会话，返回回收数量
func (s *DialogService) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	evicted := 0
	for id, ctx := range s.sessions {
		if ctx.LastActivity.Before(cutoff) {
			s.remove(id, ctx)
			evicted++
		}
	}
	if evicted > 0 {
		metrics.SessionsActive.Sub(float64(evicted))
		metrics.SessionsEvictedTotal.Add(float64(evicted))
	}
	return evicted
}

// RunJanitor 定期回收空闲会话，直到 ctx 结束
func (s *DialogService) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	if interval <= 0 || maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(maxIdle); n > 0 {
				log.Printf("回收空闲会话: %d 个", n)
			}
		}
	}
}
