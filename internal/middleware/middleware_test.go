package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"artisan-market-be/internal/auth"
	"artisan-market-be/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	issuer := auth.NewTokenIssuer("testsecret")

	var gotID int
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = transport.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(issuer)(next)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := issuer.Issue(42)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotOK)
		assert.Equal(t, 42, gotID)
	})

	t.Run("NoToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		// Anonymous, but the request still goes through.
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gotOK)
	})

	t.Run("InvalidTokenDegradesToAnonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gotOK)
	})

	t.Run("HeadersCarried", func(t *testing.T) {
		var rc *transport.RequestContext
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc = transport.FromContext(r.Context())
		})

		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.Header.Set("X-Custom", "yes")
		AuthMiddleware(issuer)(inner).ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, rc)
		assert.Equal(t, "yes", rc.Headers.Get("X-Custom"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("AllowsWithinBurst", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("RejectsBeyondBurst", func(t *testing.T) {
		var lastCode int
		for i := 0; i < burstGeneral+5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("SeparateBucketsPerIdentity", func(t *testing.T) {
		for i := 0; i < burstGeneral+5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = fmt.Sprintf("10.0.1.%d:1234", i)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := LoggingMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	// The recorder must pass the downstream status through unchanged.
	assert.Equal(t, http.StatusTeapot, w.Code)
}
