package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		count           int64
		hitErr          error
		expectedStatus  int
		expectRemaining string
		expectRetry     string
	}{
		{"first request", 1, nil, http.StatusOK, "9", ""},
		{"at the limit", 10, nil, http.StatusOK, "0", ""},
		{"over the limit", 11, nil, http.StatusTooManyRequests, "0", "42"},
		{"limiter down fails open", 0, errors.New("redis down"), http.StatusOK, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := NewMockRateLimiter(ctrl)
			limiter.EXPECT().
				Hit(gomock.Any(), "192.0.2.1:POST:/listings/{id}/buy", time.Minute).
				Return(tt.count, 42*time.Second, tt.hitErr)

			r := chi.NewRouter()
			r.With(RateLimitMiddleware(limiter, 10, time.Minute)).
				Post("/listings/{id}/buy", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				})

			req := httptest.NewRequest(http.MethodPost, "/listings/abc/buy", nil)
			req.RemoteAddr = "192.0.2.1:54321"
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectRemaining, rr.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.expectRetry, rr.Header().Get("Retry-After"))
			if tt.hitErr == nil {
				assert.Equal(t, "10", rr.Header().Get("X-RateLimit-Limit"))
				assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Reset"))
			}
			if tt.expectedStatus == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, rr.Body.String())
			}
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/listings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/listings/123", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
