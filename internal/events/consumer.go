package events

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/arena-manager/internal/cache"
)

var ErrDeliveriesClosed = errors.New("events: delivery channel closed")

// Applier é a parte do cache.Coordinator que o consumer usa.
type Applier interface {
	Apply(ctx context.Context, inv cache.Invalidation) error
}

// Consumer usa uma fila exclusiva por instância: toda instância recebe
// todas as invalidações.
type Consumer struct {
	ch     *amqp.Channel
	queue  string
	origin string
	cache  Applier
	log    *zap.Logger
}

func NewConsumer(
	conn *amqp.Connection,
	exchange string,
	origin string,
	applier Applier,
	log *zap.Logger,
) (*Consumer, error) {

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := declareExchange(ch, exchange); err != nil {
		_ = ch.Close()
		return nil, err
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, RoutingKey, exchange, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("bind %s: %w", RoutingKey, err)
	}

	return newConsumer(ch, q.Name, origin, applier, log), nil
}

func newConsumer(ch *amqp.Channel, queue, origin string, applier Applier, log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{ch: ch, queue: queue, origin: origin, cache: applier, log: log}
}

// Run consome até ctx acabar. Mensagem inválida é descartada e logada.
// Se o broker fechar a entrega, a instância segue servindo e as
// invalidações ficam só locais.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.ch.ConsumeWithContext(ctx, c.queue, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	c.consume(ctx, deliveries)
	return nil
}

func (c *Consumer) consume(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() == nil {
					c.log.Error("cache_events_stopped", zap.Error(ErrDeliveriesClosed))
				}
				return
			}
			if err := c.handle(ctx, d.Body); err != nil {
				c.log.Warn("cache_event_failed", zap.Error(err))
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	env, err := decode(body)
	if err != nil {
		return err
	}
	if env.Origin == c.origin || env.Invalidation.Empty() {
		return nil
	}
	c.log.Debug("cache_event_applied",
		zap.String("origin", env.Origin),
		zap.Strings("keys", env.Keys),
		zap.Strings("prefixes", env.Prefixes),
	)
	return c.cache.Apply(ctx, env.Invalidation)
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		return c.ch.Close()
	}
	return nil
}
