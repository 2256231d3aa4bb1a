package middleware

import (
	"net/http"

	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Session 요청의 브라우저 세션을 식별하는 미들웨어를 반환합니다.
//
// X-Session-ID 헤더, rs_session 쿠키 순서로 세션 ID를 찾습니다. UUID 형식이 아니거나 없으면
// 새 ID를 발급하여 쿠키로 내려줍니다. 결정된 ID는 항상 X-Session-ID 응답 헤더에 담깁니다.
//
// 핸들러에서는 SessionID(c)로 조회합니다.
func Session(secureCookie bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := requestedSessionID(c)
			if !ok {
				id = uuid.NewString()

				c.SetCookie(&http.Cookie{
					Name:     constants.CookieSession,
					Value:    id,
					Path:     "/",
					MaxAge:   constants.CookieSessionMaxAge,
					HttpOnly: true,
					Secure:   secureCookie,
					SameSite: http.SameSiteLaxMode,
				})

				applog.WithComponentAndFields(constants.ComponentMiddlewareSession, applog.Fields{
					"remote_ip": c.RealIP(),
					"path":      c.Request().URL.Path,
				}).Debug("새 세션 발급")
			}

			c.Set(constants.ContextKeySession, id)
			c.Response().Header().Set(constants.HeaderSessionID, id)

			return next(c)
		}
	}
}

func requestedSessionID(c echo.Context) (string, bool) {
	if v := c.Request().Header.Get(constants.HeaderSessionID); v != "" {
		return normalizeSessionID(v)
	}
	if cookie, err := c.Cookie(constants.CookieSession); err == nil && cookie.Value != "" {
		return normalizeSessionID(cookie.Value)
	}
	return "", false
}

// normalizeSessionID 세션 ID를 소문자 하이픈 표기로 통일합니다. 저장소 키로 쓰이므로 표기가 달라지면 안 됩니다.
func normalizeSessionID(v string) (string, bool) {
	id, err := uuid.Parse(v)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// SessionID Session 미들웨어가 결정한 세션 ID를 반환합니다. 미들웨어가 적용되지 않았으면 빈 문자열입니다.
func SessionID(c echo.Context) string {
	id, _ := c.Get(constants.ContextKeySession).(string)
	return id
}
