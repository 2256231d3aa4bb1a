// Package i18n 영어/아랍어 문구와 상품 속성값의 아랍어 번역을 제공합니다.
package i18n

import (
	"regexp"
	"strings"

	"github.com/darkkaiser/rarities-store/pkg/strutil"
)

// Lang 사용자 언어 설정입니다.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"

	// Default 언어 설정이 저장되어 있지 않을 때 사용하는 언어입니다.
	Default = English
)

// ParseLang 문자열을 Lang으로 변환합니다. 지원하지 않는 값이면 false를 반환합니다.
func ParseLang(s string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	default:
		return Default, false
	}
}

// Toggle 다른 언어를 반환합니다.
func (l Lang) Toggle() Lang {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Dir 텍스트 방향(ltr/rtl)을 반환합니다.
func (l Lang) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// For 언어별 문구 모음을 반환합니다. 알 수 없는 언어는 영어로 처리합니다.
func For(l Lang) Messages {
	if l == Arabic {
		return arabic
	}
	return english
}

// DisplayName 아랍어 설정이고 아랍어 이름이 있으면 아랍어 이름을, 아니면 영어 이름을 반환합니다.
func DisplayName(l Lang, name, arabicName string) string {
	if l == Arabic && strings.TrimSpace(arabicName) != "" {
		return arabicName
	}
	return name
}

// TierNote 장바구니 항목에 적용된 가격 구간 안내 문구를 반환합니다.
func TierNote(l Lang, wholesale bool) string {
	m := For(l)
	if wholesale {
		return m.AppliedBulk
	}
	return m.AppliedRetail
}

// ====================================================================================================
// 속성값 번역
// ====================================================================================================

func lookup(l Lang, table map[string]string, v string) string {
	if l != Arabic || v == "" {
		return v
	}
	if t, ok := table[v]; ok {
		return t
	}
	return v
}

// Category 카테고리 값을 번역합니다.
func Category(l Lang, v string) string { return lookup(l, arabicCategories, v) }

// Collection 컬렉션 값을 번역합니다.
func Collection(l Lang, v string) string { return lookup(l, arabicCollections, v) }

// TargetMarket 대상 고객층 값을 번역합니다.
func TargetMarket(l Lang, v string) string { return lookup(l, arabicTargetMarkets, v) }

// Color 색상 이름 하나를 번역합니다.
func Color(l Lang, v string) string { return lookup(l, arabicColors, strings.TrimSpace(v)) }

// Colors 색상 목록을 번역합니다. 원본 슬라이스는 변경하지 않습니다.
func Colors(l Lang, colors []string) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = Color(l, c)
	}
	return out
}

var dimensionsPattern = regexp.MustCompile(`(\d+)\s*[*x]\s*(\d+)\s*[*x]\s*(\d+)`)

// Dimensions "10x20x30" 형태의 치수를 "10 × 20 × 30 مم"으로 바꿉니다.
func Dimensions(l Lang, v string) string {
	if l != Arabic || v == "" {
		return v
	}
	return dimensionsPattern.ReplaceAllString(v, "${1} × ${2} × ${3} مم")
}

// 공백을 정규화한 영어 설명 → 아랍어 번역
var arabicDescriptionsByText = func() map[string]string {
	m := make(map[string]string, len(arabicDescriptions))
	for k, v := range arabicDescriptions {
		m[strutil.NormalizeSpaces(k)] = v
	}
	return m
}()

type templateRule struct {
	pattern *regexp.Regexp
	render  func(groups []string) string
}

var descriptionTemplates = []templateRule{
	{
		pattern: regexp.MustCompile(`(?i)Upgrade your (.*?) with the (.*?)\.`),
		render: func(g []string) string {
			return strings.NewReplacer("{area}", g[1], "{product}", g[2]).Replace(arabicTemplateUpgrade)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)Expertly designed for (.*?), this high-quality accessory provides (.*?)\.`),
		render: func(g []string) string {
			target := strings.TrimSpace(g[1])
			benefit := strings.TrimSpace(g[2])
			return strings.NewReplacer(
				"{target}", lookup(Arabic, arabicTargetMarkets, target),
				"{benefit}", lookup(Arabic, arabicBenefits, benefit),
			).Replace(arabicTemplateExpertly)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)Its durable construction ensures longevity, making it a perfect fit for any (.*?)\.`),
		render: func(g []string) string {
			return strings.ReplaceAll(arabicTemplateDurable, "{context}", strings.TrimSpace(g[1]))
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)Easy to use and clean, it combines functionality with a sleek aesthetic\.`),
		render:  func([]string) string { return arabicTemplateEasy },
	},
	{
		pattern: regexp.MustCompile(`(?i)Dimensions: (.*?)\.`),
		render: func(g []string) string {
			return strings.ReplaceAll(arabicTemplateDimensions, "{dims}", Dimensions(Arabic, strings.TrimSpace(g[1])))
		},
	},
}

// Description 상품 설명을 번역합니다.
//
// 공백을 정규화한 원문이 번역표에 있으면 해당 번역을 사용하고,
// 없으면 정형화된 문장 템플릿들을 문장 단위로 치환합니다.
func Description(l Lang, v string) string {
	if l != Arabic || v == "" {
		return v
	}
	if t, ok := arabicDescriptionsByText[strutil.NormalizeSpaces(v)]; ok {
		return t
	}

	translated := v
	for _, r := range descriptionTemplates {
		translated = r.pattern.ReplaceAllStringFunc(translated, func(match string) string {
			return r.render(r.pattern.FindStringSubmatch(match))
		})
	}
	return translated
}
