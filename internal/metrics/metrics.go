// Package metrics 提供Prometheus监控指标
package metrics

import "github.com/prometheus/client_golang/prometheus"

// 回复结果标签
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)

var (
	// RepliesTotal 机器人回复次数，按是否命中关键词区分
	RepliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_replies_total",
			Help: "Bot replies by outcome",
		},
		[]string{"outcome"},
	)

	// SessionsActive 当前活跃会话数
	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatbot_sessions_active",
			Help: "Active dialogue sessions",
		},
	)

	// SessionsEvictedTotal 因空闲被回收的会话数
	SessionsEvictedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_sessions_evicted_total",
			Help: "Sessions evicted after idle timeout",
		},
	)

	// WebSocketConnections 当前WebSocket连接数
	WebSocketConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatbot_websocket_connections_active",
			Help: "Active websocket connections",
		},
	)

	// HTTPRequestsTotal HTTP请求数
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_http_requests_total",
			Help: "HTTP requests by method and status class",
		},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		RepliesTotal,
		SessionsActive,
		SessionsEvictedTotal,
		WebSocketConnections,
		HTTPRequestsTotal,
	)
}

// ObserveReply 记录一次回复
func ObserveReply(matched bool) {
	if matched {
		RepliesTotal.WithLabelValues(OutcomeMatched).Inc()
		return
	}
	RepliesTotal.WithLabelValues(OutcomeFallback).Inc()
}

// StatusClass 将HTTP状态码归类为 2xx/4xx 等
func StatusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	case code >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
