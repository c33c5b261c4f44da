package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/alicemeyer/items-api/internal/config"
	"github.com/alicemeyer/items-api/internal/database"
	"github.com/alicemeyer/items-api/internal/handler"
	"github.com/alicemeyer/items-api/internal/keepalive"
	"github.com/alicemeyer/items-api/internal/middleware"
	"github.com/alicemeyer/items-api/internal/queue"
	"github.com/alicemeyer/items-api/internal/repository"
	"github.com/alicemeyer/items-api/internal/router"
	"github.com/alicemeyer/items-api/internal/service"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.WithError(err).Fatal("schema initialization failed")
	}
	log.Info("database initialized")

	repo := repository.NewItemRepo(db)
	svc := service.NewItemService(repo, log)
	pub := queue.NewPublisher(cfg.AMQPURL, log)
	if pub.Enabled() {
		log.Info("item event publishing enabled")
	}
	h := handler.NewItemHandler(svc, pub, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(log)

	// Rate limiting degrades to a pass-through when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, rate limiting disabled")
	}
	router.RegisterRoutes(e, h, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	pinger := keepalive.New(cfg.KeepaliveURLs, cfg.KeepaliveInterval, log)
	pinger.Start(ctx)

	go func() {
		addr := cfg.Host + ":" + cfg.Port
		log.Infof("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown failed")
	}

	cancel()
	pinger.Stop()
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info("stopped")
}
