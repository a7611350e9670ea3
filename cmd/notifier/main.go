package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/m04kA/SMC-VenueBooking/internal/config"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

// Воркер уведомлений: читает события бронирований из очереди и пишет их в лог.
// Доставка писем клиентам сюда подключается отдельным обработчиком.
func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !cfg.RabbitMQ.Enabled {
		log.Warn("RabbitMQ is disabled in %s, notifier has nothing to consume", configPath)
		return
	}

	handler := func(_ context.Context, event events.ReservationEvent) error {
		eventLog := log.With(
			"reservation_id", event.ReservationID,
			"facility_id", event.FacilityID,
			"status", event.Status,
		)
		switch event.Type {
		case events.EventReservationCreated:
			eventLog.Info("Reservation created: %s for %s (%s - %s)",
				event.EventTitle, event.CustomerEmail, event.StartDateTime, event.EndDateTime)
		case events.EventReservationUpdated:
			eventLog.Info("Reservation updated: %s (%s - %s)",
				event.EventTitle, event.StartDateTime, event.EndDateTime)
		case events.EventReservationCancelled:
			eventLog.Info("Reservation cancelled: %s for %s", event.EventTitle, event.CustomerEmail)
		default:
			eventLog.Warn("Unknown event type %q, skipping", event.Type)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Starting notifier on queue %q", cfg.RabbitMQ.Queue)
	consumer := events.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, handler, log)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Notifier stopped with error: %v", err)
		return
	}

	log.Info("Notifier stopped gracefully")
}
