package console

import (
	"bytes"
	"strings"
	"testing"

	"keyword_chatbot/internal/responder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Conversation(t *testing.T) {
	r := responder.New(responder.GreetingTable())
	in := strings.NewReader("hi\nwhat is your name\n/history\n/quit\nhello\n")
	var out bytes.Buffer

	require.NoError(t, New(r, responder.DefaultBotName, in, &out).Run())

	output := out.String()
	assert.Contains(t, output, "Chatbot: Hello!")
	assert.Contains(t, output, "Chatbot: My name is Chatbot.")
	assert.Contains(t, output, "User: hi\nChatbot: Hello!\nUser: what is your name\nChatbot: My name is Chatbot.")
	// /quit 之后的输入不再处理
	assert.Len(t, r.History(), 4)
}

func TestRun_ResetAndEOF(t *testing.T) {
	r := responder.New(responder.GreetingTable())
	in := strings.NewReader("bye\n/reset\nxyzzy")
	var out bytes.Buffer

	require.NoError(t, New(r, responder.DefaultBotName, in, &out).Run())

	assert.Contains(t, out.String(), "对话记录已清空")
	assert.Contains(t, out.String(), "Chatbot: "+responder.DefaultResponse)
	assert.Equal(t, []responder.Turn{
		{Speaker: responder.SpeakerUser, Text: "xyzzy"},
		{Speaker: responder.SpeakerBot, Text: responder.DefaultResponse},
	}, r.History())
}

func TestRun_EmptyLineIsAMessage(t *testing.T) {
	r := responder.New(responder.GreetingTable())
	var out bytes.Buffer

	require.NoError(t, New(r, "", strings.NewReader("\n"), &out).Run())
	assert.Len(t, r.History(), 2)
}

func TestRun_LongLine(t *testing.T) {
	r := responder.New(responder.GreetingTable())
	long := strings.Repeat("x", 70*1024) + " hello"
	in := strings.NewReader(long + "\nbye\n")
	var out bytes.Buffer

	require.NoError(t, New(r, responder.DefaultBotName, in, &out).Run())

	history := r.History()
	require.Len(t, history, 4)
	assert.Equal(t, long, history[0].Text)
	assert.Equal(t, "Hello!", history[1].Text)
	assert.Equal(t, "Goodbye!", history[3].Text)
}

func TestRun_BotName(t *testing.T) {
	r := responder.New(responder.GreetingTable())
	var out bytes.Buffer

	require.NoError(t, New(r, "Robo", strings.NewReader("hi\r\n/history\n"), &out).Run())

	assert.Contains(t, out.String(), "Robo: Hello!")
	assert.Contains(t, out.String(), "User: hi\nRobo: Hello!")
	assert.Equal(t, "hi", r.History()[0].Text)
}
