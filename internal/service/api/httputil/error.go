package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/service/api/model/response"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// echo.HTTPError는 상태 코드를 그대로 사용하고, AppError는 ErrorType에 따라 상태 코드를 결정합니다.
// 5xx 응답에서는 내부 메시지를 노출하지 않습니다. 단, 503(카탈로그 미적재 등)은 원인 파악을 위해 메시지를 전달합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if session, ok := c.Get(constants.ContextKeySession).(string); ok {
		fields["session_id"] = session
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러에 대응하는 HTTP 상태 코드와 클라이언트에 전달할 메시지를 결정합니다.
func resolve(err error) (int, string) {
	if he, ok := err.(*echo.HTTPError); ok {
		message := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		switch he.Code {
		case http.StatusNotFound:
			if _, custom := he.Message.(response.ErrorResponse); !custom {
				message = constants.ErrMsgNotFound
			}
		case http.StatusRequestEntityTooLarge:
			message = constants.ErrMsgRequestEntityTooLarge
		}
		return he.Code, message
	}

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		code := StatusCode(apperrors.UnderlyingType(err))
		switch {
		case code == http.StatusServiceUnavailable:
			return code, appErr.Message()
		case code >= http.StatusInternalServerError:
			return code, constants.ErrMsgInternalServer
		default:
			return code, appErr.Message()
		}
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}

// StatusCode ErrorType에 대응하는 HTTP 상태 코드를 반환합니다.
func StatusCode(t apperrors.ErrorType) int {
	switch t {
	case apperrors.InvalidInput, apperrors.ParsingFailed:
		return http.StatusBadRequest
	case apperrors.Unauthorized:
		return http.StatusUnauthorized
	case apperrors.Forbidden:
		return http.StatusForbidden
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Conflict:
		return http.StatusConflict
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	case apperrors.Timeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
