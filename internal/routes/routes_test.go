package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/session"
	"github.com/BruksfildServices01/arena-manager/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	}).SignedString([]byte("backend"))
	require.NoError(t, err)
	return raw
}

type app struct {
	engine *gin.Engine
	repo   *testutil.FakeRepository
	tokens map[models.Role]string
}

func newApp(t *testing.T) *app {
	t.Helper()

	repo := testutil.NewFakeRepository()
	a := &app{engine: gin.New(), repo: repo, tokens: map[models.Role]string{}}

	for i, role := range []models.Role{models.RoleClient, models.RoleOwner, models.RoleAdmin} {
		tok := token(t, string(role), time.Now().Add(time.Hour))
		repo.Profiles[tok] = &models.User{ID: uint(i + 1), Username: string(role), Role: role}
		a.tokens[role] = tok
	}

	log := zap.NewNop()
	coord := cache.NewCoordinator(cache.NewMemoryStore(), time.Minute, log)
	dispatcher := audit.NewDispatcher(&testutil.AuditRecorder{}, log)
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	RegisterRoutes(a.engine, Deps{
		Service:     "arena-manager-test",
		CORSOrigins: []string{"https://app.example.com"},
		Location:    time.UTC,
		Repo:        repo,
		Cache:       coord,
		Resolver:    session.NewResolver(repo, coord, "", log),
		Audit:       dispatcher,
		Log:         log,
	})
	return a
}

func (a *app) do(method, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	a := newApp(t)
	w := a.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRoleGuards(t *testing.T) {
	a := newApp(t)

	cases := []struct {
		name   string
		method string
		path   string
		role   models.Role
		want   int
	}{
		{"public anonimo", http.MethodGet, "/api/public/arenas", "", http.StatusOK},
		{"me anonimo", http.MethodGet, "/api/me", "", http.StatusUnauthorized},
		{"me client", http.MethodGet, "/api/me", models.RoleClient, http.StatusOK},
		{"client cria arena", http.MethodPost, "/api/owner/arenas", models.RoleClient, http.StatusBadRequest},
		{"client lista arenas owner", http.MethodGet, "/api/owner/arenas", models.RoleClient, http.StatusForbidden},
		{"owner lista arenas", http.MethodGet, "/api/owner/arenas", models.RoleOwner, http.StatusOK},
		{"admin lista arenas owner", http.MethodGet, "/api/owner/arenas", models.RoleAdmin, http.StatusOK},
		{"owner no admin", http.MethodGet, "/api/admin/users", models.RoleOwner, http.StatusForbidden},
		{"admin usuarios", http.MethodGet, "/api/admin/users", models.RoleAdmin, http.StatusOK},
		{"audit sem banco", http.MethodGet, "/api/admin/audit-logs", models.RoleAdmin, http.StatusServiceUnavailable},
		{"login ja logado", http.MethodPost, "/api/auth/login", models.RoleClient, http.StatusConflict},
		{"sessao anonima", http.MethodGet, "/api/auth/session", "", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := a.do(tc.method, tc.path, a.tokens[tc.role])
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	a := newApp(t)
	expired := token(t, "ana", time.Now().Add(-time.Minute))

	w := a.do(http.MethodGet, "/api/reservations", expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_expired")
	assert.Zero(t, a.repo.CallCount("Me"))
}

func TestLogoutRevokesToken(t *testing.T) {
	a := newApp(t)
	tok := a.tokens[models.RoleClient]

	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/reservations", tok).Code)
	require.Equal(t, http.StatusNoContent, a.do(http.MethodPost, "/api/auth/logout", tok).Code)

	w := a.do(http.MethodGet, "/api/reservations", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session_stale")
}

func TestCORSPreflight(t *testing.T) {
	a := newApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/public/arenas", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
