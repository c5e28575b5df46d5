package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hitOnce(t *testing.T, rl *RateLimiter, ip string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec.Code
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hitOnce(t, rl, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hitOnce(t, rl, "10.0.0.1"))
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.Equal(t, http.StatusOK, hitOnce(t, rl, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hitOnce(t, rl, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hitOnce(t, rl, "10.0.0.2"))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(1, 50*time.Millisecond)

	assert.Equal(t, http.StatusOK, hitOnce(t, rl, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hitOnce(t, rl, "10.0.0.1"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hitOnce(t, rl, "10.0.0.1"))
}
