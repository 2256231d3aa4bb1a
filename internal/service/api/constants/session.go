package constants

// 브라우저 세션 식별에 사용하는 상수입니다.
const (
	// HeaderSessionID 세션 ID를 전달하는 HTTP 헤더 (쿠키보다 우선)
	HeaderSessionID = "X-Session-ID"

	// CookieSession 세션 ID를 보관하는 쿠키 이름
	CookieSession = "rs_session"

	// CookieSessionMaxAge 세션 쿠키 유효 기간(초, 1년)
	CookieSessionMaxAge = 365 * 24 * 60 * 60

	// ContextKeySession echo.Context에 세션 ID를 저장하는 키
	ContextKeySession = "session_id"
)

// StreamPathSuffix 요청 타임아웃 미들웨어를 건너뛰는 SSE 경로의 접미사
const StreamPathSuffix = "/stream"
