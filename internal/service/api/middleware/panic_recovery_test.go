package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	newContext := func() echo.Context {
		return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), httptest.NewRecorder())
	}

	t.Run("문자열 패닉은 Internal 에러로 변환된다", func(t *testing.T) {
		t.Parallel()

		err := PanicRecovery()(func(echo.Context) error { panic("boom") })(newContext())

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Internal))
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("에러 패닉은 원인을 유지한다", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("nil map")
		err := PanicRecovery()(func(echo.Context) error { panic(cause) })(newContext())

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.True(t, apperrors.Is(err, apperrors.Internal))
	})

	t.Run("패닉이 없으면 핸들러 결과를 그대로 반환한다", func(t *testing.T) {
		t.Parallel()

		want := errors.New("handler error")
		err := PanicRecovery()(func(echo.Context) error { return want })(newContext())
		assert.Equal(t, want, err)
	})

	t.Run("ErrAbortHandler는 다시 패닉을 일으킨다", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			_ = PanicRecovery()(func(echo.Context) error { panic(http.ErrAbortHandler) })(newContext())
		})
	})
}
