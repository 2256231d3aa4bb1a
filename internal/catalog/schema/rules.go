package schema

import "strings"

// header 원본 헤더와 소문자/공백 정규화된 헤더를 함께 보관합니다.
// 가격 구간 기호("<", ">=")는 원본 텍스트에서 검사합니다.
type header struct {
	raw  string
	norm string
}

type predicate func(h header) bool

// rule 하나의 표준 필드에 대해 순서대로 시도할 조건 목록입니다.
type rule struct {
	field      Field
	predicates []predicate
}

func contains(subs ...string) predicate {
	return func(h header) bool {
		for _, s := range subs {
			if !strings.Contains(h.norm, s) {
				return false
			}
		}
		return true
	}
}

func equals(s string) predicate {
	return func(h header) bool { return h.norm == s }
}

func rawContains(subs ...string) predicate {
	return func(h header) bool {
		for _, s := range subs {
			if !strings.Contains(h.raw, s) {
				return false
			}
		}
		return true
	}
}

func not(p predicate) predicate {
	return func(h header) bool { return !p(h) }
}

func allOf(ps ...predicate) predicate {
	return func(h header) bool {
		for _, p := range ps {
			if !p(h) {
				return false
			}
		}
		return true
	}
}

func anyOf(ps ...predicate) predicate {
	return func(h header) bool {
		for _, p := range ps {
			if p(h) {
				return true
			}
		}
		return false
	}
}

// rules 필드별 헤더 해석 규칙입니다. 각 필드는 조건 순서대로 검사하며,
// 하나의 조건에 대해 정렬된 헤더 중 처음 일치하는 항목을 선택합니다.
var rules = []rule{
	{FieldName, []predicate{contains("product", "name"), equals("name"), equals("title")}},
	{FieldItemNumber, []predicate{contains("no"), contains("number"), equals("id")}},
	{FieldImage, []predicate{contains("image"), contains("photo"), contains("url")}},
	{FieldDocumentLink, []predicate{equals("document link"), contains("document", "link"), equals("link")}},
	{FieldRetailPrice, []predicate{rawContains("<", "25"), contains("retail"), equals("price")}},
	{FieldWholesalePrice, []predicate{rawContains(">=", "25"), contains("wholesale"), contains("bulk")}},
	{FieldPrice, []predicate{allOf(contains("price"), not(rawContains("25"))), contains("cost")}},
	{FieldCategory, []predicate{contains("category"), contains("type")}},
	{FieldArabicName, []predicate{contains("arabic", "name"), equals("arabic name")}},
	{FieldDescription, []predicate{contains("description"), contains("details"), contains("about")}},
	{FieldDimensions, []predicate{contains("dimension")}},
	{FieldCollection, []predicate{contains("collection")}},
	{FieldTargetMarket, []predicate{contains("target", "market"), contains("target")}},
	{FieldBulkDiscountText, []predicate{allOf(contains("discount"), anyOf(contains("25"), contains(">")))}},
	{FieldAvailability, []predicate{contains("availab")}},
	{FieldHidden, []predicate{equals("hidden")}},
	{FieldColors, []predicate{contains("color")}},
}
