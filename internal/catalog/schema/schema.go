// Package schema 스프레드시트 헤더를 표준 상품 필드로 해석합니다.
//
// 스프레드시트의 컬럼 이름과 순서는 편집될 때마다 바뀔 수 있으므로, 필드마다 정의된
// 규칙 표(rules)를 순서대로 적용하여 실제 헤더를 찾습니다. 결과는 헤더 집합에만
// 의존하며 헤더 순서, 대소문자, 공백의 영향을 받지 않습니다.
package schema

import (
	"sort"
	"strings"

	"github.com/darkkaiser/rarities-store/pkg/strutil"
)

// Field 표준 상품 필드 이름입니다.
type Field string

const (
	FieldName             Field = "name"
	FieldItemNumber       Field = "itemNumber"
	FieldImage            Field = "image"
	FieldDocumentLink     Field = "documentLink"
	FieldRetailPrice      Field = "retailPrice"
	FieldWholesalePrice   Field = "wholesalePrice"
	FieldPrice            Field = "price"
	FieldCategory         Field = "category"
	FieldArabicName       Field = "arabicName"
	FieldDescription      Field = "description"
	FieldDimensions       Field = "dimensions"
	FieldCollection       Field = "collection"
	FieldTargetMarket     Field = "targetMarket"
	FieldBulkDiscountText Field = "bulkDiscountText"
	FieldAvailability     Field = "availability"
	FieldHidden           Field = "hidden"
	FieldColors           Field = "colors"
)

// ColumnMap 표준 필드에서 실제 헤더 문자열로의 매핑입니다. 해석되지 않은 필드는 키가 없습니다.
type ColumnMap map[Field]string

// Header 필드에 대응하는 헤더를 반환합니다.
func (m ColumnMap) Header(f Field) (string, bool) {
	h, ok := m[f]
	return h, ok
}

// Project 원본 행에서 해석된 컬럼만 골라 표준 필드 이름을 키로 하는 맵을 만듭니다.
func (m ColumnMap) Project(row map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for f, h := range m {
		if v, ok := row[h]; ok {
			out[string(f)] = v
		}
	}
	return out
}

// Resolve 첫 번째 데이터 행의 헤더 집합으로 ColumnMap을 만듭니다.
// 상품명 컬럼을 찾지 못한 경우에만 에러를 반환합니다.
func Resolve(headers []string) (ColumnMap, error) {
	hs := make([]header, 0, len(headers))
	seen := make(map[string]struct{}, len(headers))
	for _, raw := range headers {
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}
		hs = append(hs, header{raw: raw, norm: normalize(raw)})
	}

	sort.Slice(hs, func(i, j int) bool {
		if hs[i].norm != hs[j].norm {
			return hs[i].norm < hs[j].norm
		}
		return hs[i].raw < hs[j].raw
	})

	m := make(ColumnMap, len(rules))
	for _, r := range rules {
		if h, ok := match(hs, r.predicates); ok {
			m[r.field] = h
		}
	}

	if _, ok := m[FieldName]; !ok {
		return nil, newErrNameColumnNotFound(headers)
	}
	return m, nil
}

func match(hs []header, predicates []predicate) (string, bool) {
	for _, p := range predicates {
		for _, h := range hs {
			if p(h) {
				return h.raw, true
			}
		}
	}
	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strutil.NormalizeSpaces(s))
}
