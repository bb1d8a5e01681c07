package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss indica chave ausente ou expirada.
var ErrMiss = errors.New("cache: miss")

// Store guarda valores já serializados. Implementações não mutam o
// valor depois de gravado: uma atualização é sempre um Set novo.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}
