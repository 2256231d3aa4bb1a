package search

import (
	"strings"

	"github.com/darkkaiser/rarities-store/internal/catalog/textnorm"
)

// matchKind 검색어 토큰의 일치 방식입니다.
//
//	aquarim   퍼지 일치
//	'lamp     포함 (정확히)
//	=CR-101   필드 전체 일치
//	^aqua     접두사
//	lamp$     접미사
//	!plastic  해당 문자열을 포함하는 필드가 없어야 함
type matchKind int

const (
	matchFuzzy matchKind = iota
	matchInclude
	matchExact
	matchPrefix
	matchSuffix
	matchInverse
)

type token struct {
	kind matchKind

	// 라틴 필드와 비교할 소문자 텍스트와 정규화된 아랍어 필드와 비교할 텍스트
	plain      []rune
	normalized []rune
}

// parseQuery 공백으로 구분된 토큰들로 검색어를 분해합니다. 모든 토큰은 AND 조건입니다.
// 연산자 기호로 해석된 토큰이 하나라도 있으면 operators가 true입니다.
func parseQuery(query string) (tokens []token, operators bool) {
	fields := strings.Fields(query)
	tokens = make([]token, 0, len(fields))

	for _, f := range fields {
		kind := matchFuzzy
		switch {
		case strings.HasPrefix(f, "!"):
			kind, f = matchInverse, f[1:]
		case strings.HasPrefix(f, "'"):
			kind, f = matchInclude, f[1:]
		case strings.HasPrefix(f, "="):
			kind, f = matchExact, f[1:]
		case strings.HasPrefix(f, "^"):
			kind, f = matchPrefix, f[1:]
		case len(f) > 1 && strings.HasSuffix(f, "$"):
			kind, f = matchSuffix, f[:len(f)-1]
		}
		if kind != matchFuzzy {
			operators = true
		}
		if f == "" {
			continue
		}

		tokens = append(tokens, token{
			kind:       kind,
			plain:      []rune(textnorm.Lower(f)),
			normalized: []rune(textnorm.NormalizeArabic(f)),
		})
	}

	return tokens, operators
}

// score 토큰과 필드 텍스트의 일치 점수를 계산합니다. 0이 완전 일치이며 threshold를 넘으면 불일치입니다.
// matchInverse는 호출하는 쪽에서 처리합니다.
func (t token) score(pattern, text []rune, threshold float64) (float64, bool) {
	p, s := string(pattern), string(text)

	switch t.kind {
	case matchInclude, matchInverse:
		return 0, strings.Contains(s, p)
	case matchExact:
		return 0, s == p
	case matchPrefix:
		return 0, strings.HasPrefix(s, p)
	case matchSuffix:
		return 0, strings.HasSuffix(s, p)
	}

	if strings.Contains(s, p) {
		return 0, true
	}

	sc := float64(approximateErrors(pattern, text)) / float64(len(pattern))
	return sc, sc <= threshold
}
