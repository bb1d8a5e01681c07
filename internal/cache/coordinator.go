package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Mark é um marcador gravado junto da invalidação (revogação de token).
type Mark struct {
	Key string        `json:"key"`
	TTL time.Duration `json:"ttl"`
}

// Invalidation descreve o que uma mutação torna obsoleto.
type Invalidation struct {
	Keys     []string `json:"keys,omitempty"`
	Prefixes []string `json:"prefixes,omitempty"`
	Marks    []Mark   `json:"marks,omitempty"`
}

func (inv Invalidation) Empty() bool {
	return len(inv.Keys) == 0 && len(inv.Prefixes) == 0 && len(inv.Marks) == 0
}

func (inv Invalidation) Merge(other Invalidation) Invalidation {
	return Invalidation{
		Keys:     append(append([]string(nil), inv.Keys...), other.Keys...),
		Prefixes: append(append([]string(nil), inv.Prefixes...), other.Prefixes...),
		Marks:    append(append([]Mark(nil), inv.Marks...), other.Marks...),
	}
}

// Broadcaster propaga invalidações para as outras instâncias.
type Broadcaster interface {
	Publish(ctx context.Context, inv Invalidation) error
}

type noopBroadcaster struct{}

func (noopBroadcaster) Publish(context.Context, Invalidation) error { return nil }

const defaultLoadTimeout = 10 * time.Second

type Coordinator struct {
	store       Store
	ttl         time.Duration
	loadTimeout time.Duration
	group       singleflight.Group
	broadcaster Broadcaster
	log         *zap.Logger

	// gen muda a cada Apply; cargas iniciadas antes não gravam no cache.
	gen atomic.Uint64
}

func NewCoordinator(store Store, ttl time.Duration, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		store:       store,
		ttl:         ttl,
		loadTimeout: defaultLoadTimeout,
		broadcaster: noopBroadcaster{},
		log:         log,
	}
}

// SetBroadcaster liga a propagação; chamado no bootstrap, antes de servir.
func (c *Coordinator) SetBroadcaster(b Broadcaster) {
	if b == nil {
		b = noopBroadcaster{}
	}
	c.broadcaster = b
}

// SetLoadTimeout limita cada carga compartilhada; chamado no bootstrap.
func (c *Coordinator) SetLoadTimeout(d time.Duration) {
	if d > 0 {
		c.loadTimeout = d
	}
}

func (c *Coordinator) Store() Store {
	return c.store
}

// Fetch lê key do cache ou chama load uma única vez por chave, mesmo com
// requisições concorrentes. Falha do cache nunca derruba a leitura.
func Fetch[T any](ctx context.Context, c *Coordinator, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	if b, err := c.store.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		c.log.Warn("cache_decode_failed", zap.String("key", key))
	} else if !errors.Is(err, ErrMiss) {
		c.log.Warn("cache_get_failed", zap.String("key", key), zap.Error(err))
	}

	// a carga compartilhada roda com contexto próprio; cada chamador espera
	// só enquanto o seu contexto vive.
	gen := c.gen.Load()
	ch := c.group.DoChan(key+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		v, err := load(lctx)
		if err != nil {
			return nil, err
		}
		if c.gen.Load() != gen {
			return v, nil
		}
		if b, err := json.Marshal(v); err == nil {
			if err := c.store.Set(lctx, key, b, c.ttl); err != nil {
				c.log.Warn("cache_set_failed", zap.String("key", key), zap.Error(err))
			}
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Apply grava os marcadores e remove as entradas apenas nesta instância.
func (c *Coordinator) Apply(ctx context.Context, inv Invalidation) error {
	c.gen.Add(1)

	var errs []error
	for _, m := range inv.Marks {
		if m.TTL <= 0 {
			continue
		}
		if err := c.store.Set(ctx, m.Key, []byte("1"), m.TTL); err != nil {
			errs = append(errs, err)
		}
	}
	if len(inv.Keys) > 0 {
		if err := c.store.Delete(ctx, inv.Keys...); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range inv.Prefixes {
		if err := c.store.DeletePrefix(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Invalidate aplica localmente e publica para as demais instâncias.
// Erros são só registrados: a mutação no backend já aconteceu.
func (c *Coordinator) Invalidate(ctx context.Context, inv Invalidation) {
	if inv.Empty() {
		return
	}
	if err := c.Apply(ctx, inv); err != nil {
		c.log.Warn("cache_invalidate_failed", zap.Error(err),
			zap.Strings("keys", inv.Keys), zap.Strings("prefixes", inv.Prefixes))
	}
	c.Broadcast(ctx, inv)
}

// Broadcast só publica; para quem já aplicou localmente.
func (c *Coordinator) Broadcast(ctx context.Context, inv Invalidation) {
	if inv.Empty() {
		return
	}
	if err := c.broadcaster.Publish(ctx, inv); err != nil {
		c.log.Warn("cache_broadcast_failed", zap.Error(err))
	}
}
