package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"complexity-analyzer/internal/config"
	"complexity-analyzer/internal/db"
	"complexity-analyzer/internal/logging"
	"complexity-analyzer/internal/router"
	"complexity-analyzer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

func serve(ctx context.Context, configPath string) error {
	// 加载配置
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)
	slog.SetDefault(logger)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	gdb, err := db.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("初始化数据库失败: %w", err)
	}

	// 初始化服务
	svcCtx := service.NewServiceContext(cfg, gdb, logger)

	// 初始化路由
	r := router.SetupRouter(svcCtx)

	// 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := newHTTPServer(addr, r)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("服务启动", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("启动服务失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("服务关闭中")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

const readHeaderTimeout = 10 * time.Second

func newHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
