package broker

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the part of an AMQP channel the publisher needs
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Dialer opens a channel with the exchange declared
type Dialer func() (Channel, error)

// Publisher forwards settlement events to a topic exchange. The routing key is the
// event type in dotted lower case, e.g. game.settled.
type Publisher struct {
	exchange string
	dial     Dialer
	logger   *logger.Logger

	mu      sync.Mutex
	channel Channel
}

// NewPublisher creates a publisher that dials lazily on first use
func NewPublisher(exchange string, dial Dialer, log *logger.Logger) *Publisher {
	if exchange == "" {
		exchange = "pontiff.settlements"
	}
	return &Publisher{exchange: exchange, dial: dial, logger: log}
}

// AMQPDialer connects to url and declares a durable topic exchange
func AMQPDialer(url, exchange string) Dialer {
	return func() (Channel, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, fmt.Errorf("failed to dial RabbitMQ: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to open channel: %w", err)
		}

		if err := ch.ExchangeDeclare(
			exchange,
			amqp.ExchangeTopic,
			true,  // durable
			false, // auto-deleted
			false, // internal
			false, // no-wait
			nil,   // arguments
		); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare exchange: %w", err)
		}
		return &connChannel{Channel: ch, conn: conn}, nil
	}
}

// connChannel closes the connection together with its channel
type connChannel struct {
	*amqp.Channel
	conn *amqp.Connection
}

func (c *connChannel) Close() error {
	c.Channel.Close()
	return c.conn.Close()
}

// Name identifies the sink in logs
func (p *Publisher) Name() string {
	return "rabbitmq"
}

// Publish sends the event as a persistent message keyed by event id. A failed
// publish drops the channel so the next attempt reconnects.
func (p *Publisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil {
		ch, err := p.dial()
		if err != nil {
			return err
		}
		p.channel = ch
		p.logger.Info("Connected to RabbitMQ", zap.String("exchange", p.exchange))
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.CreatedAt,
		Headers:      amqp.Table{"aggregate_id": event.AggregateID},
		Body:         event.Data,
	}
	if err := p.channel.PublishWithContext(ctx, p.exchange, RoutingKey(event.Type), false, false, msg); err != nil {
		p.logger.Warn("RabbitMQ publish failed, dropping channel", zap.String("eventID", event.ID), zap.Error(err))
		_ = p.channel.Close()
		p.channel = nil
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close releases the channel
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return nil
	}
	err := p.channel.Close()
	p.channel = nil
	return err
}

// RoutingKey maps GAME_SETTLED to game.settled
func RoutingKey(eventType string) string {
	return strings.ReplaceAll(strings.ToLower(eventType), "_", ".")
}
