package cart

import (
	"math"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/shopspring/decimal"
)

// DefaultWholesaleThreshold 같은 품번의 합산 수량이 이 값 이상이면 도매가가 적용됩니다.
const DefaultWholesaleThreshold = 25

// MaxLineQuantity 한 항목이 가질 수 있는 최대 수량입니다. 이를 넘는 수량은 이 값으로 제한됩니다.
const MaxLineQuantity = 1_000_000

// clampQuantity 수량을 MaxLineQuantity 이하로 제한합니다.
func clampQuantity(n int64) int {
	if n > MaxLineQuantity {
		return MaxLineQuantity
	}
	return int(n)
}

// addQuantity 두 수량의 합을 반환하며 int 범위를 넘으면 math.MaxInt에서 멈춥니다.
func addQuantity(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Tier 장바구니 항목에 적용된 가격 구간입니다.
type Tier string

const (
	TierRetail    Tier = "retail"
	TierWholesale Tier = "wholesale"
)

// QuotedLine 가격이 계산된 장바구니 항목입니다.
type QuotedLine struct {
	Line

	Tier Tier `json:"tier"`

	// ItemQuantity 같은 품번을 가진 모든 항목(색상 포함)의 수량 합계
	ItemQuantity int `json:"item_quantity"`

	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Quote 장바구니 전체의 가격 계산 결과입니다.
type Quote struct {
	Lines         []QuotedLine    `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	TotalQuantity int             `json:"total_quantity"`
	Threshold     int             `json:"threshold"`
}

// Empty 계산 대상 항목이 없으면 true를 반환합니다.
func (q Quote) Empty() bool {
	return len(q.Lines) == 0
}

// PriceCart 장바구니 항목들의 단가, 소계, 합계를 계산합니다.
//
// 가격 구간은 항목 단위가 아니라 품번 단위로 결정됩니다. 같은 품번의 수량을 색상과
// 관계없이 모두 더한 값이 threshold 이상이고 도매가를 해석할 수 있으면 도매가를,
// 그 외에는 소매가를 적용합니다. 해석할 수 없는 단가는 0으로 계산합니다.
// 입력 항목의 순서는 결과에서도 유지됩니다.
func PriceCart(lines []Line, threshold int) Quote {
	itemQuantities := make(map[string]int, len(lines))
	for _, l := range lines {
		itemQuantities[l.ItemNumber] = addQuantity(itemQuantities[l.ItemNumber], l.Quantity)
	}

	q := Quote{
		Lines:     make([]QuotedLine, 0, len(lines)),
		Total:     decimal.Zero,
		Threshold: threshold,
	}
	for _, l := range lines {
		itemQty := itemQuantities[l.ItemNumber]

		tier := TierRetail
		unit, ok := product.ParsePrice(l.RetailPrice)
		if itemQty >= threshold {
			if w, wok := product.ParsePrice(l.WholesalePrice); wok {
				tier, unit, ok = TierWholesale, w, true
			}
		}
		if !ok {
			unit = decimal.Zero
		}

		subtotal := unit.Mul(decimal.NewFromInt(int64(l.Quantity)))

		q.Lines = append(q.Lines, QuotedLine{
			Line:         l,
			Tier:         tier,
			ItemQuantity: itemQty,
			UnitPrice:    unit,
			Subtotal:     subtotal,
		})
		q.Total = q.Total.Add(subtotal)
		q.TotalQuantity = addQuantity(q.TotalQuantity, l.Quantity)
	}

	return q
}
