package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout 요청 처리의 기본 타임아웃 (30초). 카탈로그 스트림에는 적용하지 않습니다.
	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 60 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultMaxBodySize 요청 본문 최대 크기. 브라우저에서 가져온 장바구니 JSON도 이 안에 들어와야 합니다.
	DefaultMaxBodySize = "1M"

	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)
