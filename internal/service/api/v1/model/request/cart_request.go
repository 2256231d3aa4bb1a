// Package request v1 API 요청 본문 모델을 정의합니다.
package request

// AddCartItemRequest 장바구니 담기 요청
type AddCartItemRequest struct {
	// Index 상품 순번 (카탈로그 응답의 index)
	Index *int `json:"index" validate:"required,min=0" example:"3"`

	// Color 선택한 색상. 비우면 상품의 첫 번째 색상을 사용합니다.
	Color string `json:"color,omitempty" validate:"max=100" example:"Gold"`
}

// ChangeQuantityRequest 장바구니 수량 변경 요청
type ChangeQuantityRequest struct {
	// Color 항목의 색상. 색상 없이 담긴 항목이면 비웁니다.
	Color string `json:"color,omitempty" validate:"max=100" example:"Gold"`

	// Delta 수량 변화량. 결과 수량이 0 이하이면 항목이 제거됩니다.
	Delta int `json:"delta" validate:"ne=0,min=-1000,max=1000" example:"1"`
}
