package httputil

import (
	"net/http"
	"testing"

	"github.com/darkkaiser/rarities-store/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       func(string) error
		wantCode int
	}{
		{"400", NewBadRequestError, http.StatusBadRequest},
		{"404", NewNotFoundError, http.StatusNotFound},
		{"429", NewTooManyRequestsError, http.StatusTooManyRequests},
		{"500", NewInternalServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.fn("메시지")

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Equal(t, response.ErrorResponse{ResultCode: tt.wantCode, Message: "메시지"}, he.Message)
		})
	}
}
