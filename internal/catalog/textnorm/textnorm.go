// Package textnorm 검색 키 생성에 사용하는 텍스트 정규화 함수를 제공합니다.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// arabicReplacer 알리프 변형, 타 마르부타, 알리프 막수라를 기본형으로 통일하고
// 발음 구별 부호(탄원, 하라카트, 샷다)를 제거합니다.
var arabicReplacer = strings.NewReplacer(
	"\u0623", "\u0627", // أ -> ا
	"\u0625", "\u0627", // إ -> ا
	"\u0622", "\u0627", // آ -> ا
	"\u0629", "\u0647", // ة -> ه
	"\u0649", "\u064A", // ى -> ي
	"\u064B", "",
	"\u064C", "",
	"\u064D", "",
	"\u064E", "",
	"\u064F", "",
	"\u0650", "",
	"\u0651", "",
)

// NormalizeArabic 저장된 아랍어 이름과 사용자 검색어를 같은 키로 수렴시킵니다.
// 순수 함수이며 멱등입니다.
func NormalizeArabic(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(Lower(arabicReplacer.Replace(s)))
}

// Lower 언어 중립 규칙으로 소문자 변환합니다.
func Lower(s string) string {
	// cases.Caser는 상태를 가지므로 호출마다 새로 만듭니다.
	return cases.Lower(language.Und).String(s)
}
