// Package console 提供命令行交互式对话
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"keyword_chatbot/internal/responder"
)

const helpText = `可用命令:
  /history - 显示对话记录
  /reset   - 清空对话记录
  /help    - 显示帮助
  /quit    - 退出程序
其他输入将作为消息发送给机器人`

// Console 交互式对话终端
type Console struct {
	responder *responder.Responder
	botName   string
	in        *bufio.Reader
	out       io.Writer
	prompt    string
}

// New 创建交互式对话终端，botName 为机器人回复的显示名称
func New(r *responder.Responder, botName string, in io.Reader, out io.Writer) *Console {
	if botName == "" {
		botName = responder.DefaultBotName
	}
	return &Console{
		responder: r,
		botName:   botName,
		in:        bufio.NewReader(in),
		out:       out,
		prompt:    "> ",
	}
}

// readLine 读取一整行，不限制长度，去掉行尾换行符
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Run 读取输入直到EOF或退出命令
func (c *Console) Run() error {
	fmt.Fprintln(c.out, helpText)

	for {
		fmt.Fprint(c.out, c.prompt)
		line, err := c.readLine()
		if err != nil {
			fmt.Fprintln(c.out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(line) {
		case "/quit", "/exit":
			return nil
		case "/help":
			fmt.Fprintln(c.out, helpText)
		case "/history":
			if c.responder.Len() > 0 {
				fmt.Fprintln(c.out, responder.FormatTranscript(c.responder.History(), c.botName))
			}
		case "/reset":
			c.responder.Reset()
			fmt.Fprintln(c.out, "对话记录已清空")
		default:
			reply := c.responder.Submit(line)
			fmt.Fprintln(c.out, reply.Format(c.botName))
		}
	}
}
