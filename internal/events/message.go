// Package events propaga invalidações de cache entre instâncias via RabbitMQ.
package events

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BruksfildServices01/arena-manager/internal/cache"
)

const RoutingKey = "cache.invalidate"

// envelope carrega a instância de origem para ela ignorar o próprio eco.
type envelope struct {
	Origin string `json:"origin"`
	cache.Invalidation
}

func encode(origin string, inv cache.Invalidation) ([]byte, error) {
	return json.Marshal(envelope{Origin: origin, Invalidation: inv})
}

func decode(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, fmt.Errorf("decode invalidation: %w", err)
	}
	return env, nil
}

func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	return conn, nil
}

func declareExchange(ch *amqp.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	return nil
}
