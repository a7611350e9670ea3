package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	consumerPrefetch  = 50
	initialBackoff    = time.Second
	maxBackoff        = 30 * time.Second
	reconnectCooldown = 2 * time.Second
)

// ErrDeliveriesClosed брокер закрыл канал доставки
var ErrDeliveriesClosed = errors.New("events: deliveries channel closed")

// Handler обработчик события
type Handler func(ctx context.Context, event ReservationEvent) error

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Consumer читает события из очереди и передает их обработчику
// При потере соединения переподключается с экспоненциальной задержкой
type Consumer struct {
	url     string
	queue   string
	handler Handler
	logger  Logger
}

// NewConsumer создает потребителя событий
func NewConsumer(url, queue string, handler Handler, logger Logger) *Consumer {
	return &Consumer{url: url, queue: queue, handler: handler, logger: logger}
}

// Run потребляет события до отмены ctx
func (c *Consumer) Run(ctx context.Context) error {
	backoff := initialBackoff

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("Consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = initialBackoff

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.logger.Warn("Consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, reconnectCooldown) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		c.logger.Warn("Consumer: set QoS failed: %v", err)
	}

	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	c.logger.Info("Consumer: listening on queue %s", c.queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return ErrDeliveriesClosed
			}
			if err := c.HandleMessage(ctx, d.Body); err != nil {
				c.logger.Error("Consumer: handle message failed: %v", err)
				// не возвращаем в очередь, чтобы не зациклиться на битом сообщении
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// HandleMessage декодирует тело сообщения и вызывает обработчик
func (c *Consumer) HandleMessage(ctx context.Context, body []byte) error {
	var event ReservationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}
	if event.Type == "" {
		return errors.New("event type is empty")
	}
	return c.handler(ctx, event)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
