package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// publishChannel часть *amqp.Channel, нужная для публикации
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// session соединение с брокером и канал с объявленной очередью
type session struct {
	conn io.Closer
	ch   publishChannel
}

func (s *session) close() {
	_ = s.ch.Close()
	_ = s.conn.Close()
}

type dialFunc func(url, queue string) (*session, error)

// Publisher публикует события бронирований в очередь RabbitMQ
// Канал AMQP не потокобезопасен, поэтому публикация сериализуется мьютексом.
// После закрытия канала (рестарт брокера, ошибка канала) следующая публикация переподключается.
type Publisher struct {
	mu    sync.Mutex
	url   string
	queue string
	dial  dialFunc
	sess  *session
}

// NewPublisher подключается к брокеру и объявляет durable-очередь
func NewPublisher(url, queue string) (*Publisher, error) {
	return newPublisher(url, queue, dialSession)
}

func newPublisher(url, queue string, dial dialFunc) (*Publisher, error) {
	sess, err := dial(url, queue)
	if err != nil {
		return nil, err
	}
	return &Publisher{url: url, queue: queue, dial: dial, sess: sess}, nil
}

// Publish отправляет событие как persistent JSON-сообщение
// Если канал оказался закрыт, выполняется одна попытка с новым соединением
func (p *Publisher) Publish(ctx context.Context, event ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for attempt := 0; ; attempt++ {
		sess, err := p.session()
		if err != nil {
			return fmt.Errorf("rabbitmq: publish %s: %w", event.Type, err)
		}

		err = sess.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
		if err == nil {
			return nil
		}
		if !sess.ch.IsClosed() || attempt > 0 {
			return fmt.Errorf("rabbitmq: publish %s: %w", event.Type, err)
		}
		p.reset()
	}
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sess == nil {
		return nil
	}
	err := p.sess.conn.Close()
	_ = p.sess.ch.Close()
	p.sess = nil
	return err
}

// session возвращает живую сессию, при необходимости переподключаясь
// Вызывать под p.mu
func (p *Publisher) session() (*session, error) {
	if p.sess != nil && p.sess.ch.IsClosed() {
		p.reset()
	}
	if p.sess == nil {
		sess, err := p.dial(p.url, p.queue)
		if err != nil {
			return nil, err
		}
		p.sess = sess
	}
	return p.sess, nil
}

func (p *Publisher) reset() {
	if p.sess != nil {
		p.sess.close()
		p.sess = nil
	}
}

// NoopPublisher используется, когда публикация событий выключена
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ReservationEvent) error { return nil }

func dialSession(url, queue string) (*session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	if err := declareQueue(ch, queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &session{conn: conn, ch: ch}, nil
}

func declareQueue(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: declare queue %s: %w", queue, err)
	}
	return nil
}
