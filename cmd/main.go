package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/hr-auth/internal/auth/jwt"
	"github.com/JMURv/hr-auth/internal/cache/redis"
	"github.com/JMURv/hr-auth/internal/config"
	"github.com/JMURv/hr-auth/internal/ctrl"
	hdl "github.com/JMURv/hr-auth/internal/hdl/http"
	"github.com/JMURv/hr-auth/internal/observability/metrics/prometheus"
	"github.com/JMURv/hr-auth/internal/observability/tracing/jaeger"
	"github.com/JMURv/hr-auth/internal/repo/db"
	"go.uber.org/zap"
)

const configPath = ".env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	au := jwt.New(conf)
	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	svc := ctrl.New(au, repo, cache, conf.Auth)
	h := hdl.New(au, svc, conf.Auth)

	sweeper := ctrl.NewSweeper(repo, realClock{}, conf.Auth.SweepInterval, conf.Auth.SweepGrace)
	go sweeper.Start(ctx)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
