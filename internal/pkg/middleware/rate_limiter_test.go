package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiter(t *testing.T, limit int, period time.Duration) (*miniredis.Miniredis, echo.HandlerFunc) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	mw := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "rate:test",
		Limit:       limit,
		Period:      period,
	})

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return mr, handler
}

func doRequest(handler echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/request", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/auth/otp/request")
	_ = handler(c)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	_, handler := setupRateLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		rec := doRequest(handler)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	_, handler := setupRateLimiter(t, 2, time.Minute)

	doRequest(handler)
	doRequest(handler)
	rec := doRequest(handler)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	mr, handler := setupRateLimiter(t, 1, time.Minute)

	assert.Equal(t, http.StatusOK, doRequest(handler).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler).Code)

	mr.FastForward(2 * time.Minute)

	assert.Equal(t, http.StatusOK, doRequest(handler).Code)
}
