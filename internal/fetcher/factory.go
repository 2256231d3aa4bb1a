package fetcher

import (
	"time"
)

// Config Fetcher 체인 구성을 위한 설정입니다. 0 값 필드는 각 미들웨어의 기본값으로 대체됩니다.
type Config struct {
	// Timeout HTTP 클라이언트의 전체 요청 타임아웃
	Timeout time.Duration

	// MaxRetries 일시적 오류 발생 시 최대 재시도 횟수 (0: 재시도 안 함)
	MaxRetries int

	// MinRetryDelay 재시도 대기 시간의 최소값 (지수 백오프의 시작점)
	MinRetryDelay time.Duration

	// MaxRetryDelay 재시도 대기 시간의 최대값
	MaxRetryDelay time.Duration

	// MaxBytes 응답 본문의 최대 허용 바이트 수 (NoLimit: 제한 없음)
	MaxBytes int64

	// UserAgents 요청에 User-Agent가 없을 때 사용할 목록 (비어 있으면 기본 목록)
	UserAgents []string
}

// New 설정에 따라 Fetcher 체인을 조립합니다.
//
// 요청은 Logging → Retry → UserAgent → MaxBytes → StatusCode → HTTP 순서로 전달됩니다.
func New(cfg Config) Fetcher {
	var f Fetcher = NewHTTPFetcher(cfg.Timeout)
	f = NewStatusCodeFetcher(f)
	f = NewMaxBytesFetcher(f, cfg.MaxBytes)
	f = NewUserAgentFetcher(f, cfg.UserAgents)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.MinRetryDelay, cfg.MaxRetryDelay)
	f = NewLoggingFetcher(f)

	return f
}
