// Package responder 提供基于关键词的对话应答器
package responder

import (
	"strings"
)

// Speaker 发言方
type Speaker string

// 定义发言方常量
const (
	SpeakerUser Speaker = "User"
	SpeakerBot  Speaker = "Bot"
)

// DefaultBotName 机器人默认显示名称
const DefaultBotName = "Chatbot"

// Turn 一条对话消息，创建后不再修改
type Turn struct {
	Speaker Speaker `json:"speaker"` // 发言方
	Text    string  `json:"text"`    // 消息内容
}

// Format 按 "User: xxx" 的格式渲染消息，机器人消息使用 botName 作为前缀
func (t Turn) Format(botName string) string {
	label := string(t.Speaker)
	if t.Speaker == SpeakerBot {
		label = botName
	}
	return label + ": " + t.Text
}

// String 使用默认机器人名称渲染消息
func (t Turn) String() string {
	return t.Format(DefaultBotName)
}

// FormatTranscript 将对话记录渲染为多行文本
func FormatTranscript(turns []Turn, botName string) string {
	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(turn.Format(botName))
	}
	return b.String()
}

// Responder 对话应答器，持有关键词表和对话记录
//
// Responder 不是并发安全的，多协程访问时由调用方加锁。
type Responder struct {
	table      KeywordTable
	transcript []Turn
}

// New 创建新的对话应答器
func New(table KeywordTable) *Responder {
	return &Responder{
		table:      table,
		transcript: make([]Turn, 0),
	}
}

// Table 返回应答器使用的关键词表
func (r *Responder) Table() KeywordTable {
	return r.table
}

// Submit 处理用户输入并返回机器人回复
func (r *Responder) Submit(userText string) Turn {
	turn, _ := r.submit(userText)
	return turn
}

// SubmitMatched 与 Submit 相同，同时返回是否命中了关键词
func (r *Responder) SubmitMatched(userText string) (Turn, bool) {
	return r.submit(userText)
}

func (r *Responder) submit(userText string) (Turn, bool) {
	response := r.table.Default
	rule, matched := r.table.Resolve(userText)
	if matched {
		response = rule.Response
	}

	reply := Turn{Speaker: SpeakerBot, Text: response}
	r.transcript = append(r.transcript,
		Turn{Speaker: SpeakerUser, Text: userText},
		reply,
	)
	return reply, matched
}

// History 获取对话记录的副本
func (r *Responder) History() []Turn {
	history := make([]Turn, len(r.transcript))
	copy(history, r.transcript)
	return history
}

// Len 对话记录条数
func (r *Responder) Len() int {
	return len(r.transcript)
}

// Reset 清空对话记录，关键词表不变
func (r *Responder) Reset() {
	r.transcript = make([]Turn, 0)
}
