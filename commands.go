package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tienda/internal/database"
	"tienda/internal/models"
	"tienda/internal/server"
	"tienda/internal/services"
	"tienda/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

const shutdownTimeout = 10 * time.Second

// tienda serve: migrate, then start the HTTP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}

			// Sale events are optional; the API works without a broker.
			var publisher services.EventPublisher
			if cfg.RabbitMQ.URL != "" {
				mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue})
				if err != nil {
					slog.Warn("RabbitMQ unavailable, sale events disabled", "error", err)
				} else {
					defer mq.Close()
					publisher = mq
				}
			}

			app := server.NewApp(db, publisher, server.Options{
				StrictStatus: cfg.Server.StrictStatus,
				AccessLog:    cfg.Server.Env != "production",
			})

			errCh := make(chan error, 1)
			go func() {
				slog.Info("starting server", "port", cfg.Server.Port, "env", cfg.Server.Env, "db", cfg.Database.Redacted())
				errCh <- app.Listen(cfg.Server.Port)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-quit:
			}

			slog.Info("shutting down server")
			if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
				slog.Error("error during shutdown", "error", err)
			}
			slog.Info("server gracefully stopped")
			return nil
		},
	}
}

// tienda migrate: create or update the schema.
func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			slog.Info("migrations applied", "driver", cfg.Database.Driver)
			return nil
		},
	}
}

// tienda seed: insert the demo catalogue into an empty database.
func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed an empty database with a demo category and products",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			return database.Seed(cmd.Context(), db)
		},
	}
}

// tienda consume: log sale events from the queue until interrupted.
func newConsumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consume",
		Short: "Consume and log sale events",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.RabbitMQ.URL == "" {
				return fmt.Errorf("RABBITMQ_URL is required to consume events")
			}

			mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue})
			if err != nil {
				return err
			}
			defer mq.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return mq.ConsumeSaleEvents(ctx, logSaleEvent)
		},
	}
}

func logSaleEvent(msg amqp.Delivery) error {
	var event models.SaleEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("decode sale event: %w", err)
	}
	slog.Info("sale event",
		"type", event.Type,
		"event_id", event.EventID,
		"sale_id", event.SaleID,
		"product_id", event.ProductID,
		"client_id", event.ClientID,
		"cantidad", event.Quantity,
		"total", event.Total.String(),
		"occurred_at", event.OccurredAt,
	)
	return nil
}
