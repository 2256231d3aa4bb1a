package httputil

import (
	"net/http"
	"testing"

	"github.com/darkkaiser/rarities-store/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Index *int   `json:"index" validate:"required,min=0"`
	Lang  string `json:"lang" validate:"omitempty,oneof=en ar"`
	Delta int    `json:"delta" validate:"ne=0,max=1000"`
}

func TestRequestValidator(t *testing.T) {
	t.Parallel()

	v := NewRequestValidator()
	zero := 0
	negative := -1

	t.Run("유효한 요청", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, v.Validate(&sampleRequest{Index: &zero, Lang: "ar", Delta: -1}))
	})

	tests := []struct {
		name     string
		req      sampleRequest
		contains []string
	}{
		{"필수 필드 누락", sampleRequest{Delta: 1}, []string{"index은(는) 필수입니다"}},
		{"최소값 미만", sampleRequest{Index: &negative, Delta: 1}, []string{"index은(는) 0 이상이어야 합니다"}},
		{"허용되지 않은 값", sampleRequest{Index: &zero, Lang: "fr", Delta: 1}, []string{"lang은(는) [en ar] 중 하나여야 합니다"}},
		{"0일 수 없음", sampleRequest{Index: &zero}, []string{"delta은(는) 0일 수 없습니다"}},
		{"여러 필드 오류", sampleRequest{Delta: 2000}, []string{"index은(는) 필수입니다", "delta은(는) 1000 이하여야 합니다"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.req)
			require.Error(t, err)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusBadRequest, he.Code)

			body, ok := he.Message.(response.ErrorResponse)
			require.True(t, ok)
			for _, s := range tt.contains {
				assert.Contains(t, body.Message, s)
			}
		})
	}
}
