package view

import (
	"sort"
	"strings"
	"sync"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey 상품 목록 정렬 기준입니다.
type SortKey string

const (
	SortDefault      SortKey = "default"
	SortNameAsc      SortKey = "name-asc"
	SortNameDesc     SortKey = "name-desc"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortCategoryAsc  SortKey = "category-asc"
	SortCategoryDesc SortKey = "category-desc"
	SortArabicAsc    SortKey = "arabic-asc"
	SortArabicDesc   SortKey = "arabic-desc"
)

// ParseSortKey 문자열을 SortKey로 변환합니다. 알 수 없는 값은 SortDefault입니다.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc,
		SortCategoryAsc, SortCategoryDesc, SortArabicAsc, SortArabicDesc:
		return k
	default:
		return SortDefault
	}
}

// collate.Collator는 동시 사용이 안전하지 않으므로 풀에서 빌려 씁니다.
var (
	englishCollators = sync.Pool{New: func() any { return collate.New(language.English) }}
	arabicCollators  = sync.Pool{New: func() any { return collate.New(language.Arabic) }}
)

// sortProducts products를 제자리에서 안정 정렬합니다. 같은 키를 가진 상품은 기존 순서를 유지합니다.
func sortProducts(products []product.Product, key SortKey) {
	var less func(a, b *product.Product) int

	switch key {
	case SortNameAsc, SortNameDesc:
		c := englishCollators.Get().(*collate.Collator)
		defer englishCollators.Put(c)
		less = func(a, b *product.Product) int { return c.CompareString(a.Name, b.Name) }

	case SortArabicAsc, SortArabicDesc:
		c := arabicCollators.Get().(*collate.Collator)
		defer arabicCollators.Put(c)
		less = func(a, b *product.Product) int { return c.CompareString(a.ArabicName, b.ArabicName) }

	case SortPriceAsc, SortPriceDesc:
		amounts := make(map[int]decimal.Decimal, len(products))
		for i := range products {
			// 해석할 수 없는 가격은 0으로 취급합니다.
			amt, _ := products[i].RetailAmount()
			amounts[products[i].SequenceIndex] = amt
		}
		less = func(a, b *product.Product) int { return amounts[a.SequenceIndex].Cmp(amounts[b.SequenceIndex]) }

	case SortCategoryAsc, SortCategoryDesc:
		less = func(a, b *product.Product) int { return strings.Compare(a.Category, b.Category) }

	default:
		return
	}

	desc := strings.HasSuffix(string(key), "-desc")
	sort.SliceStable(products, func(i, j int) bool {
		c := less(&products[i], &products[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}
