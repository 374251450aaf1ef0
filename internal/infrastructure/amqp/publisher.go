// Package amqp publishes audit events to a RabbitMQ topic exchange.
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp091 "github.com/rabbitmq/amqp091-go"

	"github.com/99minutos/asset-management/internal/core/domain"
)

const DefaultExchange = "asset.events"

// Config captures the broker address and the exchange events go to.
type Config struct {
	URL      string
	Exchange string
}

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends each audit event to the exchange with the event type as
// routing key. A closed channel is reopened once per publish.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	ch       channel
	open     func() (channel, error)
	exchange string
}

// Dial connects to the broker and declares a durable topic exchange.
func Dial(cfg Config) (*Publisher, error) {
	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	open := func() (channel, error) { return conn.Channel() }

	p, err := newPublisher(open, cfg.Exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(open func() (channel, error), exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	p := &Publisher{open: open, exchange: exchange}
	ch, err := p.declare()
	if err != nil {
		return nil, err
	}
	p.ch = ch
	return p, nil
}

func (p *Publisher) declare() (channel, error) {
	ch, err := p.open()
	if err != nil {
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("amqp exchange declare: %w", err)
	}
	return ch, nil
}

func (p *Publisher) Name() string { return "amqp" }

// Publish sends one persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, event domain.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("amqp marshal: %w", err)
	}
	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.ID,
		Timestamp:    time.Now().UTC(),
		Type:         string(event.Type),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg)
	if errors.Is(err, amqp091.ErrClosed) {
		ch, derr := p.declare()
		if derr != nil {
			return derr
		}
		p.ch = ch
		err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg)
	}
	if err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
