package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/bankledger/internal/adapter/http/middleware"
	"github.com/iho/bankledger/internal/infrastructure/idempotency"
)

func TestIdempotencyMiddleware_Replay(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"number":"SV-000001"}`))
	})

	h := middleware.NewIdempotencyMiddleware(idempotency.NewStore()).Wrap(next)

	req := httptest.NewRequest(http.MethodPost, "/accounts", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, calls)

	// Same key replays the cached body without hitting the handler again.
	req = httptest.NewRequest(http.MethodPost, "/accounts", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "true", rec.Header().Get("X-Idempotency-Replay"))
	assert.JSONEq(t, `{"number":"SV-000001"}`, rec.Body.String())
}

func TestIdempotencyMiddleware_NoKeyPassesThrough(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	})

	h := middleware.NewIdempotencyMiddleware(idempotency.NewStore()).Wrap(next)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/accounts", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
	}

	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_ErrorNotCached(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	})

	h := middleware.NewIdempotencyMiddleware(idempotency.NewStore()).Wrap(next)

	req := httptest.NewRequest(http.MethodPost, "/withdrawals", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "retry-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Failed attempt was not cached as a success; the retry reaches the handler.
	req = httptest.NewRequest(http.MethodPost, "/withdrawals", nil)
	req.Header.Set(middleware.IdempotencyKeyHeader, "retry-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, 2, calls)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestIdempotencyMiddleware_GetIgnored(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("ok"))
	})

	h := middleware.NewIdempotencyMiddleware(idempotency.NewStore()).Wrap(next)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
		req.Header.Set(middleware.IdempotencyKeyHeader, "same-key")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
	}

	assert.Equal(t, 2, calls)
}
