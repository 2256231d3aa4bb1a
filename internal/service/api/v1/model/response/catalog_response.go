// Package response v1 API 응답 모델을 정의합니다.
package response

import (
	"time"

	"github.com/darkkaiser/rarities-store/internal/catalog/media"
)

// ColorOption 상품 색상 선택지. Value는 장바구니 요청에 그대로 사용하고 Label은 화면 표시용입니다.
type ColorOption struct {
	Value string `json:"value" example:"Gold"`
	Label string `json:"label" example:"ذهبي"`
}

// Card 화면에 표시할 상품 카드
type Card struct {
	Index       int    `json:"index" example:"3"`
	Name        string `json:"name" example:"Crystal Vase"`
	EnglishName string `json:"english_name" example:"Crystal Vase"`
	ArabicName  string `json:"arabic_name,omitempty"`
	ItemNumber  string `json:"item_number" example:"CR-1001"`

	Category     string `json:"category,omitempty" example:"Vases"`
	Collection   string `json:"collection,omitempty"`
	TargetMarket string `json:"target_market,omitempty"`
	Dimensions   string `json:"dimensions,omitempty" example:"10 × 20 × 30 mm"`
	Description  string `json:"description,omitempty"`

	RetailPrice      string `json:"retail_price,omitempty" example:"12.5"`
	WholesalePrice   string `json:"wholesale_price,omitempty" example:"9"`
	DiscountPercent  *int   `json:"discount_percent,omitempty" example:"28"`
	BulkDiscountText string `json:"bulk_discount_text,omitempty"`

	Available bool          `json:"available" example:"true"`
	Colors    []ColorOption `json:"colors"`

	DocumentLink string        `json:"document_link,omitempty"`
	Image        media.Sources `json:"image"`
}

// CategoryOption 카테고리 필터 선택지. 첫 항목은 항상 전체(all)입니다.
type CategoryOption struct {
	Value string `json:"value" example:"Vases"`
	Label string `json:"label" example:"مزهريات"`
}

// CatalogResponse 카탈로그 조회 결과
type CatalogResponse struct {
	Lang       string           `json:"lang" example:"en"`
	Dir        string           `json:"dir" example:"ltr"`
	Category   string           `json:"category" example:"all"`
	Sort       string           `json:"sort" example:"default"`
	Query      string           `json:"q,omitempty"`
	Count      int              `json:"count" example:"42"`
	Categories []CategoryOption `json:"categories"`
	Cards      []Card           `json:"cards"`
	LoadedAt   time.Time        `json:"loaded_at"`
}

// CategoriesResponse 카테고리 목록
type CategoriesResponse struct {
	Lang       string           `json:"lang" example:"en"`
	Categories []CategoryOption `json:"categories"`
}

// ReloadResponse 카탈로그 수동 갱신 결과
type ReloadResponse struct {
	Products   int       `json:"products" example:"120"`
	Categories int       `json:"categories" example:"8"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// StreamMeta 카탈로그 스트림의 첫 이벤트(meta)
type StreamMeta struct {
	Pass  uint64 `json:"pass" example:"1"`
	Total int    `json:"total" example:"42"`
	Lang  string `json:"lang" example:"en"`
	Dir   string `json:"dir" example:"ltr"`
}

// StreamCard 카탈로그 스트림의 card 이벤트. Position은 정렬된 목록에서의 위치입니다.
type StreamCard struct {
	Pass     uint64 `json:"pass" example:"1"`
	Position int    `json:"position" example:"0"`
	Card     Card   `json:"card"`
}

// StreamDone 카탈로그 스트림의 마지막 이벤트(done)
type StreamDone struct {
	Pass     uint64 `json:"pass" example:"1"`
	Rendered int    `json:"rendered" example:"42"`
}
