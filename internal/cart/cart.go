// Package cart 장바구니 상태와 수량 구간별 가격 계산을 담당합니다.
package cart

import (
	"github.com/darkkaiser/rarities-store/internal/catalog/product"
)

// Line 장바구니의 한 항목입니다. (상품, 색상) 조합마다 하나씩 존재합니다.
//
// 상품명과 가격은 담는 시점의 값을 복사해 둡니다. 카탈로그가 갱신되어도
// 이미 담긴 항목의 표시값은 바뀌지 않습니다.
type Line struct {
	ProductRef     int    `json:"index"`
	Name           string `json:"name"`
	ItemNumber     string `json:"no"`
	RetailPrice    string `json:"price"`
	WholesalePrice string `json:"bulkPrice"`
	ImageRef       string `json:"image"`

	// Color 빈 문자열이면 색상을 선택하지 않은 항목입니다.
	Color string `json:"color"`

	Quantity int `json:"quantity"`
}

func (l Line) matches(ref int, color string) bool {
	return l.ProductRef == ref && l.Color == color
}

// Cart 한 세션의 장바구니입니다.
//
// 합계 등 파생값은 보관하지 않고 Quote 호출 시마다 항목 목록에서 다시 계산합니다.
// 동시 접근에 안전하지 않으므로 호출자가 세션 단위로 직렬화해야 합니다.
type Cart struct {
	lines     []Line
	threshold int
}

// New 주어진 항목들로 장바구니를 생성합니다. threshold가 0 이하이면 기본값(25)을 사용합니다.
// 같은 (상품, 색상) 항목은 하나로 합치며 수량은 MaxLineQuantity로 제한됩니다.
func New(threshold int, lines ...Line) *Cart {
	if threshold <= 0 {
		threshold = DefaultWholesaleThreshold
	}

	c := &Cart{threshold: threshold}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		l.Quantity = clampQuantity(int64(l.Quantity))
		if i := c.find(l.ProductRef, l.Color); i >= 0 {
			c.lines[i].Quantity = clampQuantity(int64(c.lines[i].Quantity) + int64(l.Quantity))
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *Cart) find(ref int, color string) int {
	for i, l := range c.lines {
		if l.matches(ref, color) {
			return i
		}
	}
	return -1
}

// Add 상품을 하나 담습니다.
//
// 같은 (상품, 색상) 항목이 있으면 수량을 1 늘리고, 없으면 수량 1로 새 항목을 추가합니다.
// color가 비어 있고 상품에 색상 목록이 있으면 첫 번째 색상을 선택한 것으로 봅니다.
// 품절 상품은 ErrOutOfStock으로 거부합니다.
func (c *Cart) Add(p product.Product, color string) error {
	if !p.Available() {
		return newErrOutOfStock(p.ItemNumber, p.Name)
	}
	if color == "" {
		color = p.DefaultColor()
	}

	if i := c.find(p.SequenceIndex, color); i >= 0 {
		if c.lines[i].Quantity < MaxLineQuantity {
			c.lines[i].Quantity++
		}
		return nil
	}

	c.lines = append(c.lines, Line{
		ProductRef:     p.SequenceIndex,
		Name:           p.Name,
		ItemNumber:     p.ItemNumber,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		ImageRef:       p.ImageRef,
		Color:          color,
		Quantity:       1,
	})
	return nil
}

// ChangeQuantity 항목의 수량을 delta만큼 변경합니다. 수량이 0 이하가 되면 항목을 제거하고
// MaxLineQuantity를 넘으면 MaxLineQuantity로 제한합니다.
// 항목이 없으면 false를 반환합니다.
func (c *Cart) ChangeQuantity(ref int, color string, delta int) bool {
	i := c.find(ref, color)
	if i < 0 {
		return false
	}

	switch quantity := c.lines[i].Quantity; {
	case delta <= -quantity:
		c.removeAt(i)
	case delta >= MaxLineQuantity-quantity:
		c.lines[i].Quantity = MaxLineQuantity
	default:
		c.lines[i].Quantity = quantity + delta
	}
	return true
}

// Remove 항목을 제거합니다. 항목이 없으면 false를 반환합니다.
func (c *Cart) Remove(ref int, color string) bool {
	i := c.find(ref, color)
	if i < 0 {
		return false
	}

	c.removeAt(i)
	return true
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Clear 모든 항목을 제거합니다. 이미 비어 있었다면 true를 반환합니다.
func (c *Cart) Clear() (wasEmpty bool) {
	wasEmpty = len(c.lines) == 0
	c.lines = nil
	return wasEmpty
}

// Lines 항목 목록의 복사본을 담은 순서대로 반환합니다.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len 항목 수를 반환합니다.
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalQuantity 모든 항목의 수량 합계를 반환합니다.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total = addQuantity(total, l.Quantity)
	}
	return total
}

// Threshold 도매가 적용 기준 수량을 반환합니다.
func (c *Cart) Threshold() int {
	return c.threshold
}

// Quote 현재 항목 목록으로 가격을 계산합니다.
func (c *Cart) Quote() Quote {
	return PriceCart(c.lines, c.threshold)
}
