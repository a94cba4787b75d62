package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tracker_api/internal/config"
	"tracker_api/internal/dashboard"
	"tracker_api/internal/database"
	"tracker_api/internal/logging"
	"tracker_api/internal/question"
	"tracker_api/internal/server"
	"tracker_api/internal/topic"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	// 主流程：加载配置、连接数据库、启动 HTTP 服务并等待退出信号
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("db connect failed", zap.Error(err))
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, database.MigrateUp, logger); err != nil {
			logger.Error("migrate failed", zap.Error(err))
			return err
		}
	}

	questions := question.NewStore(db)
	topics := topic.NewStore(db, questions)

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: server.NewRouter(cfg, logger,
			topic.NewHandler(topics, logger),
			question.NewHandler(questions, logger),
			dashboard.NewHandler(dashboard.NewStore(db, cfg.Metrics.Snapshot), logger),
		),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// 收到信号后给予超时时间完成正在处理的请求
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}
