package fetcher

import (
	"net/url"
	"strings"
)

var sensitiveQueryKeys = []string{"token", "key", "secret", "password", "auth", "signature"}

// redactURL 로그와 에러 메시지에 남길 URL에서 인증 정보와 민감한 쿼리 파라미터 값을 마스킹합니다.
// 원본 URL 객체는 변경되지 않습니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u
	if u.User != nil {
		if _, has := u.User.Password(); has {
			ru.User = url.UserPassword(u.User.Username(), "xxxxx")
		} else if u.User.Username() != "" {
			ru.User = url.User("xxxxx")
		}
	}

	if u.RawQuery != "" {
		query := ru.Query()
		for key := range query {
			if isSensitiveKey(key) {
				query.Set(key, "xxxxx")
			}
		}
		ru.RawQuery = query.Encode()
	}

	return ru.String()
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, k := range sensitiveQueryKeys {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
