// Package search 상품 목록에 대한 가중치 기반 퍼지 검색을 제공합니다.
//
// 검색 대상 필드와 가중치:
//
//	name                 1.0
//	arabicName           1.0
//	itemNumber           0.8
//	category             0.6
//	price                0.4
//	normalizedName       0.9
//	normalizedArabicName 0.9
//
// 점수는 (근사 부분 문자열 편집 오류 수 / 검색어 길이)이며 0.4 이하일 때 일치로 봅니다.
// 퍼지 검색 결과가 없으면 단순 부분 문자열 검색으로 한 번 더 찾습니다.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/darkkaiser/rarities-store/internal/catalog/textnorm"
)

// DefaultThreshold 허용 오차 비율의 기본값입니다.
const DefaultThreshold = 0.4

// epsilon 완전 일치(점수 0)인 필드가 곱셈 결합에서 다른 필드를 지우지 않도록 사용하는 하한입니다.
const epsilon = 1e-3

type field struct {
	weight     float64
	normalized bool // 정규화된 아랍어 검색어와 비교
	extract    func(p *product.Product) string
}

var fields = []field{
	{1.0, false, func(p *product.Product) string { return textnorm.Lower(p.Name) }},
	{1.0, false, func(p *product.Product) string { return textnorm.Lower(p.ArabicName) }},
	{0.8, false, func(p *product.Product) string { return p.SearchKey.NormalizedItemNumber }},
	{0.6, false, func(p *product.Product) string { return p.SearchKey.NormalizedCategory }},
	{0.4, false, func(p *product.Product) string { return p.SearchKey.NormalizedPrice }},
	{0.9, false, func(p *product.Product) string { return p.SearchKey.NormalizedName }},
	{0.9, true, func(p *product.Product) string { return p.SearchKey.NormalizedArabicName }},
}

type document [][]rune

type config struct {
	threshold float64
}

// Option 인덱스 동작을 변경합니다.
type Option func(*config)

// WithThreshold 허용 오차 비율을 지정합니다. 0이면 완전 포함만 일치합니다.
func WithThreshold(threshold float64) Option {
	return func(c *config) { c.threshold = threshold }
}

// Index 카탈로그 적재 시 한 번 생성하는 검색 인덱스입니다. 생성 이후에는 읽기 전용이며
// 여러 고루틴에서 동시에 사용할 수 있습니다.
type Index struct {
	products []product.Product
	docs     []document
	bySeq    map[int]document
	opts     []Option
	cfg      config
}

// NewIndex 상품 목록으로 인덱스를 생성합니다. 입력 순서가 동점 결과의 순서가 됩니다.
func NewIndex(products []product.Product, opts ...Option) *Index {
	return build(products, nil, opts)
}

func build(products []product.Product, parent map[int]document, opts []Option) *Index {
	cfg := config{threshold: DefaultThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	idx := &Index{
		products: products,
		docs:     make([]document, len(products)),
		bySeq:    make(map[int]document, len(products)),
		opts:     opts,
		cfg:      cfg,
	}

	for i := range products {
		doc, ok := parent[products[i].SequenceIndex]
		if !ok {
			doc = make(document, len(fields))
			for f := range fields {
				doc[f] = []rune(fields[f].extract(&products[i]))
			}
		}
		idx.docs[i] = doc
		idx.bySeq[products[i].SequenceIndex] = doc
	}

	return idx
}

// Len 인덱스에 포함된 상품 수를 반환합니다.
func (idx *Index) Len() int {
	return len(idx.products)
}

// Restrict 주어진 상품들만 대상으로 하는 인덱스를 같은 옵션으로 생성합니다.
// 이미 인덱싱된 상품의 필드 텍스트는 재사용합니다.
func (idx *Index) Restrict(products []product.Product) *Index {
	return build(products, idx.bySeq, idx.opts)
}

type hit struct {
	pos   int
	score float64
}

// Search 검색어와 일치하는 상품을 점수 순으로 반환합니다. 점수가 같으면 인덱스 순서를 유지합니다.
// 빈 검색어는 모든 상품을 인덱스 순서대로 반환합니다.
func (idx *Index) Search(query string) []product.Product {
	if strings.TrimSpace(query) == "" {
		return append([]product.Product(nil), idx.products...)
	}

	tokens, operators := parseQuery(query)
	if len(tokens) > 0 || operators {
		var hits []hit
		for pos, doc := range idx.docs {
			// 연산자 기호가 상품명의 일부일 수 있으므로 검색어 전체를 포함하는 상품명은 항상 일치로 봅니다.
			if operators && idx.containsWholeQuery(pos, query) {
				hits = append(hits, hit{pos: pos, score: 0})
				continue
			}
			if len(tokens) == 0 {
				continue
			}
			if sc, ok := idx.match(doc, tokens); ok {
				hits = append(hits, hit{pos: pos, score: sc})
			}
		}

		if len(hits) > 0 {
			sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })

			result := make([]product.Product, len(hits))
			for i, h := range hits {
				result[i] = idx.products[h.pos]
			}
			return result
		}
	}

	return idx.substringFallback(query)
}

// match 모든 토큰이 하나 이상의 필드와 일치해야 합니다. 결합 점수는 일치한 필드마다
// score^weight를 곱한 값이며 작을수록 더 좋은 결과입니다.
func (idx *Index) match(doc document, tokens []token) (float64, bool) {
	total := 1.0

	for _, t := range tokens {
		matched := false

		for f, fd := range fields {
			pattern := t.plain
			if fd.normalized {
				pattern = t.normalized
			}
			if len(pattern) == 0 || len(doc[f]) == 0 {
				continue
			}

			sc, ok := t.score(pattern, doc[f], idx.cfg.threshold)
			if t.kind == matchInverse {
				if ok {
					return 0, false
				}
				continue
			}
			if ok {
				matched = true
				total *= math.Pow(math.Max(sc, epsilon), fd.weight)
			}
		}

		if !matched && t.kind != matchInverse {
			return 0, false
		}
	}

	return total, true
}

// containsWholeQuery 상품명 또는 아랍어 이름이 검색어 전체를 포함하는지 확인합니다.
func (idx *Index) containsWholeQuery(pos int, query string) bool {
	key := idx.products[pos].SearchKey

	if lower := textnorm.Lower(strings.TrimSpace(query)); lower != "" && strings.Contains(key.NormalizedName, lower) {
		return true
	}
	normalized := textnorm.NormalizeArabic(query)
	return normalized != "" && strings.Contains(key.NormalizedArabicName, normalized)
}

// substringFallback 상품명, 품번, 카테고리는 대소문자 구분 없이, 아랍어 이름은 정규화하여
// 검색어 전체를 부분 문자열로 찾습니다.
func (idx *Index) substringFallback(query string) []product.Product {
	lower := textnorm.Lower(strings.TrimSpace(query))
	normalized := textnorm.NormalizeArabic(query)

	var result []product.Product
	for i := range idx.products {
		p := &idx.products[i]
		if strings.Contains(p.SearchKey.NormalizedName, lower) ||
			strings.Contains(p.SearchKey.NormalizedItemNumber, lower) ||
			strings.Contains(p.SearchKey.NormalizedCategory, lower) ||
			(normalized != "" && strings.Contains(p.SearchKey.NormalizedArabicName, normalized)) {
			result = append(result, *p)
		}
	}
	return result
}
