package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"keyword_chatbot/internal/config"
	"keyword_chatbot/internal/models"
	"keyword_chatbot/internal/responder"
	"keyword_chatbot/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewDialogService(responder.GreetingTable())
	engine := NewEngine(svc, config.Default().WebSocket)
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return server
}

func TestRoutes_REST(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(server.URL+"/api/sessions/x/messages", "application/json", strings.NewReader(`{"text":"goodbye"}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"text":"Goodbye!"`)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "chatbot_replies_total")
}

func TestRoutes_WebSocket(t *testing.T) {
	server := newTestServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?session_id=ws-test"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello models.WSResponse
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, models.WSTypeSession, hello.Type)
	assert.Equal(t, "ws-test", hello.SessionID)

	require.NoError(t, conn.WriteJSON(models.WSRequest{Type: models.WSTypeMessage, Text: "what is your name"}))
	var reply models.WSResponse
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, models.WSTypeReply, reply.Type)
	require.NotNil(t, reply.Reply)
	assert.Equal(t, "My name is Chatbot.", reply.Reply.Text)

	require.NoError(t, conn.WriteJSON(models.WSRequest{Type: models.WSTypeHistory}))
	var history models.WSHistoryResponse
	require.NoError(t, conn.ReadJSON(&history))
	assert.Len(t, history.Turns, 2)

	// 同一会话也可以通过REST访问
	resp, err := http.Get(server.URL + "/api/sessions/ws-test/history")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "what is your name")
}

func TestRoutes_WebSocketGeneratesSessionID(t *testing.T) {
	server := newTestServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello models.WSResponse
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, models.WSTypeSession, hello.Type)
	assert.NotEmpty(t, hello.SessionID)
}

func TestRoutes_WebSocketMalformedFrameKeepsConnection(t *testing.T) {
	server := newTestServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?session_id=broken"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello models.WSResponse
	require.NoError(t, conn.ReadJSON(&hello))

	// 格式错误的消息得到错误响应
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"message","text":`)))
	var errResp models.WSResponse
	require.NoError(t, conn.ReadJSON(&errResp))
	assert.Equal(t, models.WSTypeError, errResp.Type)
	assert.Equal(t, "broken", errResp.SessionID)
	assert.NotEmpty(t, errResp.Error)

	// 同一连接上后续消息正常处理
	require.NoError(t, conn.WriteJSON(models.WSRequest{Type: models.WSTypeMessage, Text: "goodbye"}))
	var reply models.WSResponse
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, models.WSTypeReply, reply.Type)
	require.NotNil(t, reply.Reply)
	assert.Equal(t, "Goodbye!", reply.Reply.Text)
}

func TestRoutes_WebSocketEmptyHistory(t *testing.T) {
	server := newTestServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?session_id=empty"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello models.WSResponse
	require.NoError(t, conn.ReadJSON(&hello))

	require.NoError(t, conn.WriteJSON(models.WSRequest{Type: models.WSTypeHistory}))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"history","session_id":"empty","turns":[]}`, string(data))
}
