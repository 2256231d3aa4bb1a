package fetcher

import (
	"context"
	"crypto/x509"
	"errors"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
)

const (
	// maxAllowedRetries 허용 가능한 최대 재시도 횟수입니다.
	maxAllowedRetries = 10

	// defaultMinRetryDelay 재시도 대기 시간의 기본 최소값입니다.
	defaultMinRetryDelay = 1 * time.Second

	// defaultMaxRetryDelay 재시도 대기 시간의 기본 최대값입니다.
	defaultMaxRetryDelay = 30 * time.Second
)

var (
	// ErrMaxRetriesExceeded 최대 재시도 횟수를 모두 소진했을 때 반환되는 에러의 원인입니다.
	ErrMaxRetriesExceeded = errors.New("최대 재시도 횟수를 초과하였습니다")
)

// RetryFetcher 일시적인 오류로 HTTP 요청이 실패했을 때 지수 백오프(Full Jitter)로 재시도하는 미들웨어입니다.
//
// 재시도 대상은 네트워크 오류와 apperrors.Unavailable(5xx, 429) 에러이며,
// 컨텍스트 취소, 인증서 오류, 비즈니스 로직 에러(ExecutionFailed, InvalidInput, NotFound 등)는 재시도하지 않습니다.
// 비멱등 메서드(POST, PATCH)는 재시도하지 않습니다.
type RetryFetcher struct {
	delegate Fetcher

	maxRetries    int
	minRetryDelay time.Duration
	maxRetryDelay time.Duration
}

var _ Fetcher = (*RetryFetcher)(nil)

// NewRetryFetcher 새로운 RetryFetcher 인스턴스를 생성합니다.
func NewRetryFetcher(delegate Fetcher, maxRetries int, minRetryDelay, maxRetryDelay time.Duration) *RetryFetcher {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxRetries > maxAllowedRetries {
		maxRetries = maxAllowedRetries
	}
	if minRetryDelay <= 0 {
		minRetryDelay = defaultMinRetryDelay
	}
	if maxRetryDelay <= 0 {
		maxRetryDelay = defaultMaxRetryDelay
	}
	if maxRetryDelay < minRetryDelay {
		maxRetryDelay = minRetryDelay
	}

	return &RetryFetcher{
		delegate:      delegate,
		maxRetries:    maxRetries,
		minRetryDelay: minRetryDelay,
		maxRetryDelay: maxRetryDelay,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	effectiveMaxRetries := f.maxRetries
	if !isIdempotentMethod(req.Method) {
		effectiveMaxRetries = 0
	}

	var lastErr error
	for i := 0; i <= effectiveMaxRetries; i++ {
		if i > 0 {
			delay := f.backoff(i)

			applog.WithComponent(component).
				WithContext(req.Context()).
				WithFields(applog.Fields{
					"url":               redactURL(req.URL),
					"retry":             i,
					"remaining_retries": effectiveMaxRetries - i,
					"delay":             delay.String(),
					"error":             lastErr.Error(),
				}).
				Warn("재시도 대기 중: 일시적 오류로 인해 요청 재시도를 준비합니다")

			timer := time.NewTimer(delay)
			select {
			case <-req.Context().Done():
				timer.Stop()
				return nil, req.Context().Err()

			case <-timer.C:
			}
		}

		resp, err := f.delegate.Do(req)
		if err == nil {
			return resp, nil
		}
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		if !isRetriable(err) {
			return nil, err
		}

		lastErr = err
	}

	if effectiveMaxRetries == 0 {
		return nil, lastErr
	}

	return nil, apperrors.Wrapf(errors.Join(ErrMaxRetriesExceeded, lastErr), apperrors.UnderlyingType(lastErr), "%d회 재시도 후에도 HTTP 요청이 실패했습니다", effectiveMaxRetries)
}

// backoff i번째 재시도 전의 대기 시간을 계산합니다. minRetryDelay * 2^(i-1) 범위 안에서 무작위 값을 선택합니다.
func (f *RetryFetcher) backoff(i int) time.Duration {
	delay := f.minRetryDelay << (i - 1)
	if delay > f.maxRetryDelay || delay <= 0 {
		delay = f.maxRetryDelay
	}

	delay = time.Duration(rand.Int64N(int64(delay) + 1))
	if delay < f.minRetryDelay {
		delay = f.minRetryDelay
	}

	return delay
}

// isRetriable 에러가 재시도로 해결될 가능성이 있는 일시적 오류인지 판단합니다.
func isRetriable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if strings.Contains(urlErr.Error(), "unsupported protocol scheme") || strings.Contains(urlErr.Error(), "stopped after 10 redirects") {
			return false
		}
	}

	var x509HostnameErr x509.HostnameError
	var x509UnknownAuthorityErr x509.UnknownAuthorityError
	var x509CertificateInvalidErr x509.CertificateInvalidError
	if errors.As(err, &x509HostnameErr) || errors.As(err, &x509UnknownAuthorityErr) || errors.As(err, &x509CertificateInvalidErr) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if apperrors.Is(err, apperrors.Unavailable) {
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			switch statusErr.StatusCode {
			case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
				return false
			}
		}

		return true
	}

	if apperrors.Is(err, apperrors.ExecutionFailed) ||
		apperrors.Is(err, apperrors.InvalidInput) ||
		apperrors.Is(err, apperrors.Forbidden) ||
		apperrors.Is(err, apperrors.NotFound) {
		return false
	}

	// 명확한 실패 사유가 없다면 DNS 조회 실패, 연결 거부 등 일시적 네트워크 오류로 간주합니다.
	return true
}

// isIdempotentMethod 재시도가 안전한 멱등 메서드인지 여부를 반환합니다.
func isIdempotentMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodPut, http.MethodDelete:
		return true

	default:
		return false
	}
}
