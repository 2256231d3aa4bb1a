package middleware

import (
	"strconv"
	"time"

	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/darkkaiser/rarities-store/pkg/strutil"
	"github.com/labstack/echo/v4"
)

const (
	// defaultBytesIn Content-Length 헤더가 없을 때(Chunked 등) bytes_in 필드에 기록할 값
	defaultBytesIn = "0"
)

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, URI, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 세션: 마스킹된 세션 ID
//   - 성능: 처리 시간
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return logRequest(c, next)
		}
	}
}

func logRequest(c echo.Context, next echo.HandlerFunc) error {
	req := c.Request()
	res := c.Response()
	start := time.Now()

	// defer로 패닉 발생 시에도 로그가 남도록 합니다.
	defer func() {
		latency := time.Since(start)

		path := req.URL.Path
		if path == "" {
			path = "/"
		}

		bytesIn := req.Header.Get(echo.HeaderContentLength)
		if bytesIn == "" {
			bytesIn = defaultBytesIn
		}

		fields := applog.Fields{
			"method":   req.Method,
			"path":     path,
			"uri":      req.RequestURI,
			"host":     req.Host,
			"protocol": req.Proto,

			"remote_ip":  c.RealIP(),
			"user_agent": req.UserAgent(),
			"referer":    req.Referer(),

			"status":    res.Status,
			"bytes_in":  bytesIn,
			"bytes_out": strconv.FormatInt(res.Size, 10),

			"latency":       strconv.FormatInt(latency.Microseconds(), 10),
			"latency_human": latency.String(),

			"request_id": res.Header().Get(echo.HeaderXRequestID),
		}
		if session, ok := c.Get(constants.ContextKeySession).(string); ok {
			fields["session_id"] = strutil.MaskSensitiveData(session)
		}

		applog.WithComponentAndFields(constants.ComponentMiddleware, fields).Info("HTTP 요청")
	}()

	if err := next(c); err != nil {
		c.Error(err)
	}

	return nil
}
