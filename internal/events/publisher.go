package events

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BruksfildServices01/arena-manager/internal/cache"
)

// Publisher implementa cache.Broadcaster.
type Publisher struct {
	mu       sync.Mutex
	ch       *amqp.Channel
	exchange string
	origin   string
}

var _ cache.Broadcaster = (*Publisher)(nil)

func NewPublisher(conn *amqp.Connection, exchange, origin string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := declareExchange(ch, exchange); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return &Publisher{ch: ch, exchange: exchange, origin: origin}, nil
}

func (p *Publisher) Publish(ctx context.Context, inv cache.Invalidation) error {
	body, err := encode(p.origin, inv)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, RoutingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		return p.ch.Close()
	}
	return nil
}
