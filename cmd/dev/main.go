// Command dev runs the API behind an ngrok tunnel so a local instance can
// be reached on a public URL. It skips the keep-alive pinger; local runs
// have nothing to keep awake. The tunnel authtoken is read from
// NGROK_AUTHTOKEN, the domain from NGROK_DOMAIN.
package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.ngrok.com/ngrok"
	ngrokcfg "golang.ngrok.com/ngrok/config"

	"github.com/alicemeyer/items-api/internal/config"
	"github.com/alicemeyer/items-api/internal/database"
	"github.com/alicemeyer/items-api/internal/handler"
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

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.WithError(err).Fatal("schema initialization failed")
	}
	log.Info("database initialized")

	repo := repository.NewItemRepo(db)
	svc := service.NewItemService(repo, log)
	pub := queue.NewPublisher(cfg.AMQPURL, log)
	h := handler.NewItemHandler(svc, pub, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(log)
	router.RegisterRoutes(e, h, nil)

	ln, err := ngrok.Listen(ctx,
		ngrokcfg.HTTPEndpoint(ngrokcfg.WithDomain(cfg.NgrokDomain)),
		ngrok.WithAuthtokenFromEnv(),
	)
	if err != nil {
		log.WithError(err).Fatal("ngrok tunnel failed")
	}
	log.Infof("public URL: %s", ln.URL())

	e.Listener = ln
	if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server stopped")
	}
}
