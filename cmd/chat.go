package main

import (
	"keyword_chatbot/internal/console"
	"keyword_chatbot/internal/responder"

	"github.com/spf13/cobra"
)

var chatTable string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "在终端中与机器人对话",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatTable, "table", "t", "", "使用的关键词表，默认使用配置中的表")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := cfg.Chatbot.Table
	if chatTable != "" {
		name = chatTable
	}
	table, err := cfg.LookupTable(name)
	if err != nil {
		return err
	}

	return console.New(responder.New(table), cfg.Chatbot.Name, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
