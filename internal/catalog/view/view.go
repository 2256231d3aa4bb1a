// Package view 카테고리 필터, 검색, 정렬을 조합하여 화면에 보여줄 상품 순서를 결정합니다.
package view

import (
	"strings"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/darkkaiser/rarities-store/internal/catalog/search"
)

// CategoryAll 카테고리 필터를 적용하지 않음을 나타냅니다.
const CategoryAll = "all"

// Query 목록 조회 조건입니다.
type Query struct {
	Category string
	Term     string
	Sort     SortKey
}

// View 다음 순서로 상품 목록을 만듭니다. 입력 슬라이스는 변경하지 않습니다.
//
//  1. Category가 비어 있지 않고 "all"이 아니면 카테고리가 같은 상품만 남깁니다.
//  2. Term이 공백이 아니면 1의 결과로 제한한 인덱스에서 검색합니다.
//  3. Sort 기준으로 안정 정렬합니다.
func View(products []product.Product, idx *search.Index, q Query) []product.Product {
	result := products
	if q.Category != "" && q.Category != CategoryAll {
		result = make([]product.Product, 0, len(products))
		for _, p := range products {
			if p.Category == q.Category {
				result = append(result, p)
			}
		}
	}

	if strings.TrimSpace(q.Term) != "" {
		if idx == nil {
			idx = search.NewIndex(result)
		} else {
			idx = idx.Restrict(result)
		}
		result = idx.Search(q.Term)
	} else {
		result = append([]product.Product(nil), result...)
	}

	sortProducts(result, q.Sort)

	return result
}
