// Package product 스프레드시트 행을 표준 상품 레코드로 정규화합니다.
package product

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawRow 헤더 문자열을 키로 하는 스프레드시트 한 행입니다.
// 헤더의 이름과 존재 여부는 시트가 편집될 때마다 바뀔 수 있습니다.
type RawRow map[string]string

// SearchKey 검색용으로 미리 계산해 둔 소문자/정규화 텍스트입니다.
type SearchKey struct {
	NormalizedName       string `json:"normalized_name"`
	NormalizedArabicName string `json:"normalized_arabic_name"`
	NormalizedItemNumber string `json:"normalized_item_number"`
	NormalizedCategory   string `json:"normalized_category"`
	NormalizedPrice      string `json:"normalized_price"`
}

// Product 정규화가 끝난 상품입니다. 생성 이후에는 변경하지 않습니다.
//
// 가격은 시트에 적힌 표시 문자열 그대로 보관하며, 계산이 필요할 때 ParsePrice로 해석합니다.
// 빈 문자열은 값이 없음을 뜻합니다.
type Product struct {
	Name         string `json:"name"`
	ItemNumber   string `json:"item_number"`
	ImageRef     string `json:"image_ref,omitempty"`
	DocumentLink string `json:"document_link,omitempty"`

	RetailPrice     string `json:"retail_price,omitempty"`
	WholesalePrice  string `json:"wholesale_price,omitempty"`
	DiscountPercent *int   `json:"discount_percent,omitempty"`

	Category         string `json:"category,omitempty"`
	ArabicName       string `json:"arabic_name,omitempty"`
	Description      string `json:"description,omitempty"`
	Dimensions       string `json:"dimensions,omitempty"`
	Collection       string `json:"collection,omitempty"`
	TargetMarket     string `json:"target_market,omitempty"`
	BulkDiscountText string `json:"bulk_discount_text,omitempty"`

	Availability string   `json:"availability"`
	Hidden       bool     `json:"hidden"`
	Colors       []string `json:"colors"`

	SearchKey     SearchKey `json:"-"`
	SequenceIndex int       `json:"index"`
}

// Available 품절("no") 표시가 아니면 true를 반환합니다.
func (p Product) Available() bool {
	return !strings.EqualFold(strings.TrimSpace(p.Availability), "no")
}

// RetailAmount 소매가를 숫자로 해석합니다.
func (p Product) RetailAmount() (decimal.Decimal, bool) {
	return ParsePrice(p.RetailPrice)
}

// WholesaleAmount 도매가를 숫자로 해석합니다.
func (p Product) WholesaleAmount() (decimal.Decimal, bool) {
	return ParsePrice(p.WholesalePrice)
}

// DefaultColor 색상 목록의 첫 번째 항목을 반환합니다. 색상이 없으면 빈 문자열입니다.
func (p Product) DefaultColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0]
}
