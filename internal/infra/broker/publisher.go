// Package broker publishes schedule change events to RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"theater-console/internal/pkg/clock"
	"theater-console/internal/pkg/config"
	"theater-console/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type showPayload struct {
	ID           string    `json:"id"`
	TheaterID    string    `json:"theaterId"`
	ScreenNumber int       `json:"screenNumber"`
	MovieID      string    `json:"movieId,omitempty"`
	ShowTime     time.Time `json:"showTime,omitzero"`
	EndTime      time.Time `json:"endTime,omitzero"`
}

type envelope struct {
	EventID    string      `json:"eventId"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Show       showPayload `json:"show"`
}

type Publisher struct {
	mu       sync.Mutex
	ch       Channel
	exchange string
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPublisher(ch Channel, exchange string, clk clock.Clock, logger *slog.Logger) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, clock: clk, logger: logger}
}

var _ shared.EventPublisher = (*Publisher)(nil)

// Publish routes the event by its type, e.g. "show.scheduled".
func (p *Publisher) Publish(ctx context.Context, ev shared.ScheduleEvent) error {
	env := envelope{
		EventID:    uuid.NewString(),
		Type:       string(ev.Type),
		OccurredAt: p.clock.Now().UTC(),
		Show: showPayload{
			ID:           ev.ShowID,
			TheaterID:    ev.TheaterID,
			ScreenNumber: ev.ScreenNumber,
			MovieID:      ev.MovieID,
			ShowTime:     ev.ShowTime,
			EndTime:      ev.EndTime,
		},
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    env.EventID,
		Timestamp:    env.OccurredAt,
		Type:         env.Type,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, p.exchange, env.Type, false, false, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", ev.Type, err)
	}
	p.logger.Debug("schedule event published", "type", env.Type, "event_id", env.EventID, "show_id", ev.ShowID)
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Close()
}

// Dial connects to the broker and declares the durable topic exchange.
func Dial(cfg config.BrokerConfig, clk clock.Clock, logger *slog.Logger) (*Publisher, func() error, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // autoDelete
		false,        // internal
		false,        // noWait
		nil,          // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	pub := NewPublisher(ch, cfg.Exchange, clk, logger)
	closer := func() error {
		_ = pub.Close()
		return conn.Close()
	}
	return pub, closer, nil
}

// NoopPublisher drops events; used when AMQP_URL is empty.
type NoopPublisher struct{}

var _ shared.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, shared.ScheduleEvent) error {
	return nil
}
