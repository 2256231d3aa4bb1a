package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// =============================================================================
// Rate Limiting 미들웨어
// =============================================================================

func TestNewIPRateLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	assert.NotNil(t, limiter.limiters)
	assert.Equal(t, rate.Limit(10), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
	assert.Empty(t, limiter.limiters)
}

func TestRateLimit_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		requestsPerSecond int
		burst             int
		wantPanic         string
	}{
		{"정상값", 10, 20, ""},
		{"RPS 0", 0, 20, "RateLimit: requestsPerSecond는 양수여야 합니다 (현재값: 0)"},
		{"RPS 음수", -1, 20, "RateLimit: requestsPerSecond는 양수여야 합니다 (현재값: -1)"},
		{"Burst 0", 10, 0, "RateLimit: burst는 양수여야 합니다 (현재값: 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.wantPanic == "" {
				assert.NotPanics(t, func() { RateLimit(tt.requestsPerSecond, tt.burst) })
				return
			}
			assert.PanicsWithValue(t, tt.wantPanic, func() { RateLimit(tt.requestsPerSecond, tt.burst) })
		})
	}
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	t.Parallel()

	e := echo.New()
	mw := RateLimit(1, 2)
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	call := func(ip string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		return rec, h(e.NewContext(req, rec))
	}

	for i := 0; i < 2; i++ {
		rec, err := call("10.0.0.1")
		require.NoError(t, err, fmt.Sprintf("%d번째 요청", i+1))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec, err := call("10.0.0.1")
	assert.ErrorIs(t, err, ErrRateLimitExceeded)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// 다른 IP는 영향을 받지 않는다
	_, err = call("10.0.0.2")
	assert.NoError(t, err)
}

func TestIPRateLimiter_Eviction(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(1, 1)
	for i := 0; i < maxIPRateLimiters; i++ {
		limiter.getLimiter(fmt.Sprintf("ip-%d", i))
	}
	require.Len(t, limiter.limiters, maxIPRateLimiters)

	limiter.getLimiter("new-ip")

	assert.Len(t, limiter.limiters, maxIPRateLimiters)
	assert.Contains(t, limiter.limiters, "new-ip")
}
