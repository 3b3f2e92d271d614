package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/Dutt123/ossvacationtracker/internal/config"
	"github.com/Dutt123/ossvacationtracker/internal/handler"
	"github.com/Dutt123/ossvacationtracker/internal/repository"
	"github.com/Dutt123/ossvacationtracker/internal/seed"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load configuration", "error", err)
		return
	}

	repo := repository.NewRepository(cfg)
	if err := repo.EnsureDataFile(seed.DefaultDocument()); err != nil {
		logger.Error("could not initialize the data file", "error", err)
		return
	}

	// Leave notifications only run when a broker is configured.
	var mailChannel *amqp.Channel
	if cfg.RabbitMQ.DSN != "" {
		conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
		if err != nil {
			logger.Error("could not connect to rabbitmq", "error", err)
			return
		}
		defer conn.Close()

		mailChannel, err = conn.Channel()
		if err != nil {
			logger.Error("could not open a channel", "error", err)
			return
		}
		defer mailChannel.Close()

		if _, err := mailChannel.QueueDeclare(
			handler.NotificationQueue,
			true,
			false,
			false,
			false,
			nil,
		); err != nil {
			logger.Error("could not declare the notification queue", "error", err)
			return
		}
	} else {
		logger.Info("RABBITMQ_DSN not set, leave notifications disabled")
	}

	// PIN throttling only runs when redis is configured.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
	} else {
		logger.Info("REDIS_ADDR not set, PIN throttling disabled")
	}

	handler, err := handler.NewHandler(cfg, repo, mailChannel, rdb)
	if err != nil {
		logger.Error("could not create handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("could not start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
