package testutil

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
)

// AuditRecorder é um audit.Sink que só guarda os eventos.
type AuditRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *AuditRecorder) Log(_ context.Context, ev audit.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *AuditRecorder) Events() []audit.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.Event(nil), r.events...)
}

func (r *AuditRecorder) Actions() []string {
	var out []string
	for _, ev := range r.Events() {
		out = append(out, ev.Action)
	}
	return out
}

// BroadcastRecorder guarda as invalidações publicadas.
type BroadcastRecorder struct {
	mu   sync.Mutex
	sent []cache.Invalidation
}

func (b *BroadcastRecorder) Publish(_ context.Context, inv cache.Invalidation) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, inv)
	return nil
}

func (b *BroadcastRecorder) Sent() []cache.Invalidation {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]cache.Invalidation(nil), b.sent...)
}
