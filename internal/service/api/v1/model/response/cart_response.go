package response

// CartLine 가격이 계산된 장바구니 항목
type CartLine struct {
	Index      int    `json:"index" example:"3"`
	Name       string `json:"name" example:"Crystal Vase"`
	ItemNumber string `json:"item_number" example:"CR-1001"`
	Color      string `json:"color,omitempty" example:"Gold"`
	ColorLabel string `json:"color_label,omitempty" example:"Gold"`
	Thumbnail  string `json:"thumbnail"`

	Quantity     int    `json:"quantity" example:"2"`
	ItemQuantity int    `json:"item_quantity" example:"26"`
	Tier         string `json:"tier" example:"wholesale"`
	TierNote     string `json:"tier_note" example:"Bulk price applied"`
	UnitPrice    string `json:"unit_price" example:"9.000 JOD"`
	Subtotal     string `json:"subtotal" example:"18.000 JOD"`
}

// CartResponse 장바구니 조회/변경 결과
type CartResponse struct {
	Lang          string     `json:"lang" example:"en"`
	Lines         []CartLine `json:"lines"`
	TotalQuantity int        `json:"total_quantity" example:"2"`
	Threshold     int        `json:"threshold" example:"25"`
	Total         string     `json:"total" example:"25.000 JOD"`
	Empty         bool       `json:"empty" example:"false"`
}

// NoticeResponse 사용자에게 보여줄 안내 문구. 장바구니 비우기, 빈 장바구니 주문, 품절 상품 담기 등에 사용합니다.
type NoticeResponse struct {
	ResultCode int    `json:"result_code" example:"409"`
	Title      string `json:"title,omitempty" example:"Cart is empty"`
	Message    string `json:"message" example:"Add some products before checking out."`
}

// ClearCartResponse 장바구니 비우기 결과
type ClearCartResponse struct {
	Notice NoticeResponse `json:"notice"`
	Cart   CartResponse   `json:"cart"`
}

// CheckoutResponse 주문 메시지와 WhatsApp 딥링크
type CheckoutResponse struct {
	Message  string `json:"message"`
	DeepLink string `json:"deep_link" example:"https://wa.me/962795965910?text=..."`
	Total    string `json:"total" example:"25.000 JOD"`
}
