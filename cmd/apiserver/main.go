package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/davegonzalez/Litview/internal/app/config"
	"github.com/davegonzalez/Litview/internal/app/domains/repo/rpstatus"
	"github.com/davegonzalez/Litview/internal/app/domains/services/svrelay"
	"github.com/davegonzalez/Litview/internal/app/infra/liteview"
	redispub "github.com/davegonzalez/Litview/internal/app/infra/persistence/redis"
	"github.com/davegonzalez/Litview/internal/app/infra/slack"
	"github.com/davegonzalez/Litview/internal/app/infra/squarespace"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
	"github.com/davegonzalez/Litview/internal/app/pkg/stats"
	"github.com/davegonzalez/Litview/internal/app/server/routers"
	relayhandler "github.com/davegonzalez/Litview/internal/app/server/handlers/relay"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	zapLog, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLog.Sync()

	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var publisher svrelay.OutcomePublisher
	if cfg.Redis.Addr != "" {
		pubsub, err := redispub.NewPubSub(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer pubsub.Close()
		publisher = pubsub
	}

	notifier := slack.NewNotifier(cfg.Slack.WebhookURL, zapLog)
	relayStats := stats.New()

	relayService := svrelay.NewRelayService(
		squarespace.NewClient(cfg.Squarespace.APIBase, cfg.Squarespace.Token, zapLog),
		liteview.NewClient(cfg.Liteview.APIBase, cfg.Liteview.AppKey, cfg.Liteview.Account, zapLog),
		rpstatus.NewStatusRepository(db),
		notifier,
		publisher,
		cfg.Redis.Channel,
		cfg.Filter.BrandMarker,
		relayStats,
		zapLog,
	)

	handler := relayhandler.NewRelayHandler(relayService, zapLog)
	engine := routers.SetupRoutes(handler, relayStats, zapLog, notifier)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Application stopped")
}

func gracefulShutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}
}
