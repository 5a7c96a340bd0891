package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"organise/config"
	otelMocks "organise/infras/otel/mocks"
	"organise/shared/cache"
	cacheMocks "organise/shared/cache/mocks"
	"organise/shared/constant"
	"organise/shared/server"
	"organise/transport/http/middleware"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func newMiddleware(cfg *config.Config, redisCache cache.RedisCache, state *server.Tracker) middleware.AppMiddleware {
	return middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache, state)
}

func TestRequestID(t *testing.T) {
	mw := newMiddleware(&config.Config{}, cache.NewRedisCache(nil, otelMocks.NewOtel()), server.NewTracker())

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "req-42")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestServerState(t *testing.T) {
	state := server.NewTracker()
	mw := newMiddleware(&config.Config{}, cache.NewRedisCache(nil, otelMocks.NewOtel()), state)
	handler := mw.ServerState(ok)

	state.Set(server.StateReady)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	state.Set(server.StateInGracePeriod)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)
}

func TestTracing(t *testing.T) {
	recorder := otelMocks.NewRecorder()
	cfg := &config.Config{}
	cfg.App.Name = "organise-test"

	mw := middleware.NewAppMiddleware(recorder, cfg, cache.NewRedisCache(nil, recorder), server.NewTracker())

	router := chi.NewRouter()
	router.Use(mw.RequestID, mw.Tracing)
	router.Get("/api/todos/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	scope := recorder.Find("GET /health")
	require.NotNil(t, scope)
	assert.Equal(t, "http", scope.ScopeName)
	assert.True(t, scope.Ended)
	assert.Equal(t, http.StatusTeapot, scope.Attributes["http.status_code"])
	assert.Equal(t, "organise-test", scope.Attributes["app.name"])
	assert.NotEmpty(t, scope.Attributes["http.request_id"])
	assert.Empty(t, scope.Errors)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/todos/abc", nil))

	scope = recorder.Find("GET /api/todos/abc")
	require.NotNil(t, scope)
	assert.Equal(t, "/api/todos/{id}", scope.Attributes["http.route"])
	assert.Len(t, scope.Errors, 1)
}

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Enable = true
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	handler := newMiddleware(limiterConfig(), redisCache, server.NewTracker()).RateLimit()(ok)

	key := "limiter:10.0.0.1:tester"

	tests := []struct {
		name      string
		count     int64
		code      int
		remaining string
	}{
		{name: "first request in window", count: 1, code: http.StatusOK, remaining: "1"},
		{name: "last allowed request", count: 2, code: http.StatusOK, remaining: "0"},
		{name: "over the limit", count: 3, code: http.StatusTooManyRequests, remaining: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache.EXPECT().Incr(gomock.Any(), key, 60).Return(tt.count, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "tester")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

// windowCache counts like Redis INCR with EXPIRE NX against a manual clock.
type windowCache struct {
	cache.RedisCache

	now     time.Time
	counts  map[string]int64
	expires map[string]time.Time
}

func newWindowCache() *windowCache {
	return &windowCache{
		now:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		counts:  map[string]int64{},
		expires: map[string]time.Time{},
	}
}

func (c *windowCache) Incr(_ context.Context, key string, duration int) (int64, error) {
	if exp, found := c.expires[key]; found && !c.now.Before(exp) {
		delete(c.counts, key)
		delete(c.expires, key)
	}

	c.counts[key]++

	if _, found := c.expires[key]; !found {
		c.expires[key] = c.now.Add(time.Duration(duration) * time.Second)
	}

	return c.counts[key], nil
}

func TestRateLimit_WindowExpires(t *testing.T) {
	cfg := limiterConfig()
	cfg.App.RateLimiter.WindowSeconds = 10

	counter := newWindowCache()
	handler := newMiddleware(cfg, counter, server.NewTracker()).RateLimit()(ok)

	var codes []int

	for range 12 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))
		codes = append(codes, rec.Code)

		counter.now = counter.now.Add(5 * time.Second)
	}

	// two requests per ten second window, polled every five seconds
	for idx, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request at t=%ds", idx*5)
	}

	counter = newWindowCache()
	handler = newMiddleware(cfg, counter, server.NewTracker()).RateLimit()(ok)

	codes = codes[:0]

	for range 8 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))
		codes = append(codes, rec.Code)

		counter.now = counter.now.Add(2 * time.Second)
	}

	// one request every two seconds: limited after the second hit, released when the window closes
	assert.Equal(t, []int{
		http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests,
		http.StatusTooManyRequests, http.StatusOK, http.StatusOK, http.StatusTooManyRequests,
	}, codes)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	handler := newMiddleware(limiterConfig(), redisCache, server.NewTracker()).RateLimit()(ok)

	redisCache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("connection refused"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := limiterConfig()
	cfg.Cache.Enable = false

	ctrl := gomock.NewController(t)
	handler := newMiddleware(cfg, cacheMocks.NewMockRedisCache(ctrl), server.NewTracker()).RateLimit()(ok)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
