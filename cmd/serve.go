package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"keyword_chatbot/internal/routes"
	"keyword_chatbot/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动HTTP/WebSocket对话服务",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.WarnUnreachable()

	table, err := cfg.KeywordTable()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dialogSvc := services.NewDialogService(table)
	go dialogSvc.RunJanitor(ctx, cfg.Session.SweepInterval, cfg.Session.IdleTimeout)

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           routes.NewEngine(dialogSvc, cfg.WebSocket),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("对话服务启动: %s, 关键词表: %s (%d 条规则)", server.Addr, cfg.Chatbot.Table, len(table.Rules))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("正在关闭对话服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
