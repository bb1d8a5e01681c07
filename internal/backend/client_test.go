package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 2*time.Second)
}

func TestListSchedulesByCourt(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/courts/5/schedules", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[
			{"id":1,"court_id":5,"date":"2025-11-10","start_time":"08:00","end_time":"09:00","is_available":false},
			{"id":2,"court_id":5,"date":"2025-11-10","start_time":"09:00","end_time":"10:00"}
		]`)
	})

	got, err := c.ListSchedulesByCourt(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].IsAvailable)
	assert.True(t, got[1].IsAvailable)
}

func TestLoginSendsForm(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ana", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))
		_, _ = io.WriteString(w, `{"access_token":"tok"}`)
	})

	tok, err := c.Login(context.Background(), "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)
}

func TestCreateReservationSendsBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var body map[string]uint
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, uint(7), body["schedule_id"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":3,"status":"Agendado","created_at":"2025-11-10T10:00:00"}`)
	})

	res, err := c.CreateReservation(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Equal(t, uint(3), res.ID)
	assert.Equal(t, uint(7), res.ScheduleID)
}

func TestDeleteNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/reservations/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteReservation(context.Background(), "tok", 9))
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    Kind
		message string
	}{
		{"detail string", http.StatusBadRequest, `{"detail":"Horário indisponível"}`, KindValidation, "Horário indisponível"},
		{"detail list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"campo obrigatório"},{"msg":"data inválida"}]}`, KindValidation, "campo obrigatório; data inválida"},
		{"message", http.StatusConflict, `{"message":"Já reservado"}`, KindConflict, "Já reservado"},
		{"unauthorized", http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`, KindUnauthorized, "Could not validate credentials"},
		{"not json", http.StatusInternalServerError, `boom`, KindUpstream, "Erro inesperado"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			_, err := c.ListArenas(context.Background())
			require.Error(t, err)

			var be *Error
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tc.kind, be.Kind)
			assert.Equal(t, tc.status, be.Status)
			assert.Equal(t, tc.message, be.Message)
			assert.True(t, IsKind(err, tc.kind))
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.ListArenas(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTransport))
}

func TestTimeoutIsTransport(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c := New(srv.URL, 50*time.Millisecond)
	_, err := c.ListArenas(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTransport))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCreateScheduleBatchKeepsRawBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedules/batch", r.URL.Path)
		_, _ = io.WriteString(w, `{"created":12}`)
	})

	raw, err := c.CreateScheduleBatch(context.Background(), "tok", dto.ScheduleBatchRequest{CourtID: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"created":12}`, string(raw))
}
