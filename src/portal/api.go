// File: src/portal/api.go

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/microgrants/grant-portal/src/portal/config"
	"github.com/microgrants/grant-portal/src/portal/data"
	"github.com/microgrants/grant-portal/src/portal/notify"
	"github.com/microgrants/grant-portal/src/portal/telegram"
	"github.com/microgrants/grant-portal/src/portal/webserver"
)

func main() {
	cfg := config.Load()

	log := newLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// The Mongo handle is lazy: the first request (or health check) opens
	// the connection and every later caller reuses it.
	mongo := data.NewMongo(cfg.MongoURI, cfg.MongoDatabase)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = data.MustRedis(cfg.RedisURL)
	} else {
		log.Info("REDIS_URL not set, application events disabled")
	}

	var tg *telegram.Client
	if cfg.TelegramToken != "" && cfg.TelegramChatID != "" {
		tg = telegram.NewClient(cfg.TelegramToken, cfg.TelegramChatID, "")
	} else {
		log.Info("telegram credentials missing, notifications disabled")
	}
	dispatcher := notify.NewDispatcher(tg, cfg.AdminBaseURL(), log)

	router := webserver.New(cfg, mongo, rdb, dispatcher, log)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	log.Info("grant portal API listening",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
	_ = mongo.Close(shutCtx)
	if rdb != nil {
		_ = rdb.Close()
	}
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zap.Must(cfg.Build())
}
