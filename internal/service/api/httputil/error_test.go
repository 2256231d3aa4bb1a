package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ErrorHandler
// =============================================================================

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"사용자 정의 400 에러", NewBadRequestError("잘못된 색상"), http.StatusBadRequest, "잘못된 색상"},
		{"사용자 정의 404 에러는 메시지를 유지한다", NewNotFoundError(constants.ErrMsgProductNotFound), http.StatusNotFound, constants.ErrMsgProductNotFound},
		{"Echo 기본 404는 공통 메시지로 바뀐다", echo.ErrNotFound, http.StatusNotFound, constants.ErrMsgNotFound},
		{"413은 공통 메시지로 바뀐다", echo.ErrStatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge, constants.ErrMsgRequestEntityTooLarge},
		{"문자열 메시지 HTTPError", echo.NewHTTPError(http.StatusUnsupportedMediaType, "지원하지 않음"), http.StatusUnsupportedMediaType, "지원하지 않음"},
		{"NotFound AppError", apperrors.New(apperrors.NotFound, "상품 없음"), http.StatusNotFound, "상품 없음"},
		{"Conflict AppError", apperrors.New(apperrors.Conflict, "장바구니가 비어 있습니다"), http.StatusConflict, "장바구니가 비어 있습니다"},
		{"Unavailable AppError는 메시지를 노출한다", apperrors.New(apperrors.Unavailable, "카탈로그가 아직 적재되지 않았습니다"), http.StatusServiceUnavailable, "카탈로그가 아직 적재되지 않았습니다"},
		{"Internal AppError는 메시지를 숨긴다", apperrors.New(apperrors.Internal, "db 경로 /var/data"), http.StatusInternalServerError, constants.ErrMsgInternalServer},
		{"일반 에러는 500", errors.New("boom"), http.StatusInternalServerError, constants.ErrMsgInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.ResultCode)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestErrorHandler_HeadRequest(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/stream", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.String(http.StatusOK, "partial"))

	ErrorHandler(errors.New("연결 끊김"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

// =============================================================================
// StatusCode
// =============================================================================

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType apperrors.ErrorType
		want    int
	}{
		{apperrors.InvalidInput, http.StatusBadRequest},
		{apperrors.ParsingFailed, http.StatusBadRequest},
		{apperrors.Unauthorized, http.StatusUnauthorized},
		{apperrors.Forbidden, http.StatusForbidden},
		{apperrors.NotFound, http.StatusNotFound},
		{apperrors.Conflict, http.StatusConflict},
		{apperrors.Unavailable, http.StatusServiceUnavailable},
		{apperrors.Timeout, http.StatusGatewayTimeout},
		{apperrors.Internal, http.StatusInternalServerError},
		{apperrors.System, http.StatusInternalServerError},
		{apperrors.Unknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.errType), tt.errType.String())
	}
}

func TestResolve_WrappedAppError(t *testing.T) {
	t.Parallel()

	// 가장 안쪽 AppError의 타입으로 상태 코드를 결정한다
	err := apperrors.Wrap(apperrors.New(apperrors.NotFound, "상품 없음"), apperrors.Internal, "장바구니 담기 실패")

	code, message := resolve(err)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "장바구니 담기 실패", message)
}
