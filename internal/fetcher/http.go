package fetcher

import (
	"net/http"
	"time"
)

// defaultTimeout HTTP 클라이언트의 기본 전체 요청 타임아웃입니다.
const defaultTimeout = 30 * time.Second

// HTTPFetcher 타임아웃이 설정된 http.Client로 실제 네트워크 요청을 수행하는 체인의 말단 구현체입니다.
type HTTPFetcher struct {
	client *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 새로운 HTTPFetcher 인스턴스를 생성합니다. timeout이 0 이하이면 기본값(30초)을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
