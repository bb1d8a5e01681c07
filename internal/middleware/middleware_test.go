package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeResolver autentica "tok-<role>" e usa o resto como motivo de falha.
type fakeResolver struct {
	forgotten []string
}

func (f *fakeResolver) Resolve(_ context.Context, token string) *session.Session {
	s := session.New()
	_ = s.Begin(token)
	switch token {
	case "":
	case "tok-client", "tok-owner", "tok-admin":
		_ = s.Resolve(&models.User{Username: token, Role: models.Role(token[4:])})
	case "expired":
		s.Expire()
	default:
		_ = s.Fail(token)
	}
	return s
}

func (f *fakeResolver) Forget(_ context.Context, viewer string) {
	f.forgotten = append(f.forgotten, viewer)
}

func newEngine(r *fakeResolver, guards ...gin.HandlerFunc) *gin.Engine {
	e := gin.New()
	e.Use(RequestID(), SessionMiddleware(r))
	handlers := append(guards, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c), "token": CurrentViewer(c).Token})
	})
	e.GET("/x", handlers...)
	e.GET("/stale", func(c *gin.Context) {
		c.Set(httperr.ContextStaleSession, true)
		c.Status(http.StatusUnauthorized)
	})
	return e
}

func do(e http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	e := newEngine(&fakeResolver{})

	w := do(e, "/x", "")
	id := w.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	fixed := uuid.NewString()
	req.Header.Set(HeaderRequestID, fixed)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, fixed, w.Header().Get(HeaderRequestID))

	req.Header.Set(HeaderRequestID, "<script>")
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(HeaderRequestID))
}

func TestRequireAuth(t *testing.T) {
	e := newEngine(&fakeResolver{}, RequireAuth())

	cases := []struct {
		token  string
		status int
		code   string
	}{
		{"tok-client", http.StatusOK, ""},
		{"", http.StatusUnauthorized, "unauthenticated"},
		{"expired", http.StatusUnauthorized, "token_expired"},
		{session.ReasonStale, http.StatusUnauthorized, "session_stale"},
		{session.ReasonLoggedOut, http.StatusUnauthorized, "session_stale"},
		{session.ReasonProfile, http.StatusServiceUnavailable, "session_unavailable"},
	}

	for _, tc := range cases {
		w := do(e, "/x", tc.token)
		assert.Equal(t, tc.status, w.Code, tc.token)
		if tc.code != "" {
			assert.Contains(t, w.Body.String(), `"error_code":"`+tc.code+`"`, tc.token)
		}
	}
}

func TestRequireRole(t *testing.T) {
	e := newEngine(&fakeResolver{}, RequireAuth(), RequireRole(models.RoleOwner, models.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, do(e, "/x", "tok-client").Code)
	assert.Equal(t, http.StatusOK, do(e, "/x", "tok-owner").Code)
	assert.Equal(t, http.StatusOK, do(e, "/x", "tok-admin").Code)
	assert.Equal(t, http.StatusUnauthorized, do(e, "/x", "").Code)
}

func TestRequireAnonymous(t *testing.T) {
	e := newEngine(&fakeResolver{}, RequireAnonymous())

	assert.Equal(t, http.StatusOK, do(e, "/x", "").Code)
	assert.Equal(t, http.StatusOK, do(e, "/x", "expired").Code)
	assert.Equal(t, http.StatusConflict, do(e, "/x", "tok-client").Code)
}

func TestStaleFlagForgetsViewer(t *testing.T) {
	r := &fakeResolver{}
	e := newEngine(r)

	do(e, "/x", "tok-client")
	assert.Empty(t, r.forgotten)

	do(e, "/stale", "tok-client")
	assert.Len(t, r.forgotten, 1)
}

func TestBearerParsing(t *testing.T) {
	e := gin.New()
	e.GET("/t", func(c *gin.Context) { c.String(http.StatusOK, BearerToken(c)) })

	for header, want := range map[string]string{
		"Bearer abc":  "abc",
		"bearer abc ": "abc",
		"Basic abc":   "",
		"abc":         "",
	} {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)
		assert.Equal(t, want, w.Body.String(), header)
	}
}

func TestCORS(t *testing.T) {
	e := gin.New()
	e.Use(CORSMiddleware([]string{"https://app.arena.dev"}))
	e.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.arena.dev")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.arena.dev", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
