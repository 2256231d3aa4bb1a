// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import (
	"net/url"
	"strings"
)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  Product   Name " -> "Product Name"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitAndTrim 구분자로 분리한 뒤 각 항목의 공백을 제거하고 빈 항목을 버립니다.
// 남은 항목이 없으면 nil을 반환합니다.
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}

// MaskSensitiveData 토큰, 세션 식별자 등을 로그에 남길 수 있도록 마스킹합니다.
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}

// encodeURIComponentReplacer url.QueryEscape 결과에서 encodeURIComponent와 다르게 처리되는 문자를 되돌립니다.
var encodeURIComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent 브라우저의 encodeURIComponent와 같은 규칙으로 문자열을 인코딩합니다.
// 영문, 숫자와 - _ . ! ~ * ' ( ) 를 제외한 모든 바이트를 퍼센트 인코딩합니다.
func EncodeURIComponent(s string) string {
	return encodeURIComponentReplacer.Replace(url.QueryEscape(s))
}
