package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/arena-manager/internal/backend"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// Sem exp no token o marcador de logout vale um dia.
const defaultRevocationTTL = 24 * time.Hour

type ProfileSource interface {
	Me(ctx context.Context, token string) (*models.User, error)
}

type Resolver struct {
	profiles ProfileSource
	cache    *cache.Coordinator
	secret   string
	now      func() time.Time
	log      *zap.Logger
}

func NewResolver(profiles ProfileSource, coord *cache.Coordinator, secret string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		profiles: profiles,
		cache:    coord,
		secret:   secret,
		now:      time.Now,
		log:      log,
	}
}

// Resolve percorre a máquina de estados para o token da requisição.
// Nunca devolve erro: qualquer falha termina em Anonymous com um motivo.
func (r *Resolver) Resolve(ctx context.Context, token string) *Session {
	s := New()
	_ = s.Begin(token)
	if s.State() == Anonymous {
		return s
	}
	s.viewer = cache.ViewerKey(token)

	if r.revoked(ctx, s.viewer) {
		_ = s.Fail(ReasonLoggedOut)
		return s
	}

	info := InspectToken(token, r.now(), r.secret)
	switch {
	case !info.Decoded:
		r.Forget(ctx, s.viewer)
		_ = s.Fail(ReasonInvalidToken)
		return s
	case info.Expired:
		r.Forget(ctx, s.viewer)
		s.Expire()
		return s
	}

	user, err := r.profiles.Me(ctx, token)
	if err != nil {
		if backend.IsKind(err, backend.KindUnauthorized) {
			r.Forget(ctx, s.viewer)
			_ = s.Fail(ReasonStale)
			return s
		}
		r.log.Warn("session_profile_failed", zap.Error(err))
		_ = s.Fail(ReasonProfile)
		return s
	}

	_ = s.Resolve(user)
	return s
}

func (r *Resolver) revoked(ctx context.Context, viewer string) bool {
	_, err := r.cache.Store().Get(ctx, cache.RevokedKey(viewer))
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		r.log.Warn("session_revocation_check_failed", zap.Error(err))
	}
	return false
}

// Logout grava o marcador de revogação até o token expirar e descarta o
// cache do usuário em todas as instâncias.
func (r *Resolver) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	viewer := cache.ViewerKey(token)

	ttl := defaultRevocationTTL
	if info := InspectToken(token, r.now(), r.secret); !info.ExpiresAt.IsZero() {
		ttl = info.ExpiresAt.Sub(r.now())
	}
	inv := cache.Invalidation{Keys: cache.ViewerKeys(viewer)}
	if ttl > 0 {
		inv.Marks = []cache.Mark{{Key: cache.RevokedKey(viewer), TTL: ttl}}
	}

	if err := r.cache.Apply(ctx, inv); err != nil {
		return err
	}
	r.cache.Broadcast(ctx, inv)
	return nil
}

// Forget descarta só o cache do usuário, sem revogar o token.
func (r *Resolver) Forget(ctx context.Context, viewer string) {
	if viewer == "" {
		return
	}
	if err := r.cache.Apply(ctx, cache.Invalidation{Keys: cache.ViewerKeys(viewer)}); err != nil {
		r.log.Warn("session_forget_failed", zap.Error(err))
	}
}
