package fetcher

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

var (
	// ErrResponseBodyTooLarge 응답 본문이 허용된 최대 크기를 초과했을 때 반환됩니다.
	ErrResponseBodyTooLarge = errors.New("응답 본문의 크기가 허용된 최대 크기를 초과하였습니다")
)

// NewErrResponseBodyTooLarge 실제 읽기 도중 크기 제한을 초과했을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Wrapf(ErrResponseBodyTooLarge, apperrors.InvalidInput, "응답 본문의 크기가 허용된 최대 크기(%d 바이트)를 초과하였습니다", limit)
}

// NewErrResponseBodyTooLargeByContentLength Content-Length 헤더만으로 크기 제한 초과가 확인되었을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLargeByContentLength(contentLength, limit int64) error {
	return apperrors.Wrapf(ErrResponseBodyTooLarge, apperrors.InvalidInput, "응답 본문의 크기(Content-Length: %d 바이트)가 허용된 최대 크기(%d 바이트)를 초과하였습니다", contentLength, limit)
}

// HTTPStatusError 허용되지 않은 HTTP 상태 코드를 나타내는 에러입니다.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP 요청이 실패했습니다. 상태 코드: %s (URL: %s)", e.Status, e.URL)
}

// CheckResponseStatus HTTP 응답 상태 코드를 분석하여 도메인 에러로 변환합니다.
// 허용 목록이 비어 있으면 200 OK만 성공으로 처리합니다.
//
// 5xx 및 429 응답은 일시적 장애로 보고 apperrors.Unavailable로, 나머지는 apperrors.ExecutionFailed로 분류합니다.
func CheckResponseStatus(resp *http.Response, allowedStatusCodes ...int) error {
	if len(allowedStatusCodes) == 0 {
		if resp.StatusCode == http.StatusOK {
			return nil
		}
	} else {
		for _, code := range allowedStatusCodes {
			if resp.StatusCode == code {
				return nil
			}
		}
	}

	errType := apperrors.ExecutionFailed
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		errType = apperrors.Unavailable
	}

	statusErr := &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
	if resp.Request != nil && resp.Request.URL != nil {
		statusErr.URL = redactURL(resp.Request.URL)
	}

	return apperrors.Wrap(statusErr, errType, "HTTP 응답 상태 코드 검증에 실패했습니다")
}
