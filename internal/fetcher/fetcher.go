// Package fetcher 외부 HTTP 리소스(게시된 스프레드시트 CSV 등)를 가져오기 위한 미들웨어 체인을 제공합니다.
//
// 각 Fetcher는 다른 Fetcher를 감싸는 데코레이터이며, New 함수가 로깅 → 재시도 → User-Agent → 크기 제한 → 상태 코드 검증 → HTTP 전송 순서로 체인을 조립합니다.
package fetcher

import (
	"context"
	"io"
	"net/http"
	"sync"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

const component = "fetcher"

// Fetcher HTTP 요청을 실행하는 최소 단위의 인터페이스입니다.
type Fetcher interface {
	// Do HTTP 요청을 실행합니다. 성공 시 응답 객체의 Body는 호출자가 닫아야 합니다.
	Do(req *http.Request) (*http.Response, error)
}

// Get 주어진 URL로 GET 요청을 생성하여 Fetcher를 통해 실행합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "HTTP 요청 생성에 실패했습니다 (URL: %s)", url)
	}

	return f.Do(req)
}

const (
	// maxDrainBytes 커넥션 재사용을 위해 응답 Body를 비울 때 읽을 최대 바이트 수 (64KB)
	maxDrainBytes = 64 * 1024
)

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

// drainAndCloseBody 커넥션이 풀로 돌아갈 수 있도록 응답 Body를 일정량 읽어 버린 후 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	bufPtr := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(bufPtr)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *bufPtr)
}
