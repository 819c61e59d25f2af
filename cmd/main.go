package main

import (
	"errors"
	"log"
	"os"

	"keyword_chatbot/internal/config"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "chatbot",
	Short:        "Keyword chatbot",
	Long:         `A keyword-response chatbot served over HTTP/WebSocket or used from the terminal.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "配置文件路径")
	rootCmd.AddCommand(serveCmd, chatCmd, checkCmd)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig 加载配置，默认路径下没有配置文件时使用内置配置
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		log.Printf("未找到配置文件 %s，使用默认配置", configPath)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
