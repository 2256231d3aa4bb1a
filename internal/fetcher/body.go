package fetcher

import (
	"io"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"golang.org/x/net/html/charset"
)

// ReadBody 응답 본문을 모두 읽어 UTF-8 문자열로 반환하고 Body를 닫습니다.
// Content-Type 헤더의 charset(또는 BOM, meta 태그)을 기준으로 인코딩을 변환합니다.
func ReadBody(resp *http.Response) (string, error) {
	defer resp.Body.Close()

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ParsingFailed, "응답 본문의 문자 인코딩 변환에 실패했습니다")
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		if apperrors.Is(err, apperrors.InvalidInput) {
			return "", err
		}
		return "", apperrors.Wrap(err, apperrors.ExecutionFailed, "응답 본문을 읽는 도중 에러가 발생했습니다")
	}

	// UTF-8 BOM 제거
	return strings.TrimPrefix(sb.String(), "\ufeff"), nil
}

// IsHTML 응답이 HTML 문서인지 Content-Type 헤더로 판단합니다.
func IsHTML(resp *http.Response) bool {
	return strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "text/html")
}
