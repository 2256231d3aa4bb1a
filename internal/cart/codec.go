package cart

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// wireLine 브라우저 localStorage의 cr_cart 항목 형식입니다. 색상이 없으면 null로 저장합니다.
type wireLine struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	No        string  `json:"no"`
	Price     string  `json:"price"`
	BulkPrice string  `json:"bulkPrice"`
	Image     string  `json:"image"`
	Color     *string `json:"color"`
	Quantity  int     `json:"quantity"`
}

// Encode 장바구니 항목들을 cr_cart 형식의 JSON 배열로 직렬화합니다.
func Encode(lines []Line) ([]byte, error) {
	wire := make([]wireLine, 0, len(lines))
	for _, l := range lines {
		w := wireLine{
			Index:     l.ProductRef,
			Name:      l.Name,
			No:        l.ItemNumber,
			Price:     l.RetailPrice,
			BulkPrice: l.WholesalePrice,
			Image:     l.ImageRef,
			Quantity:  l.Quantity,
		}
		if l.Color != "" {
			color := l.Color
			w.Color = &color
		}
		wire = append(wire, w)
	}

	return json.Marshal(wire)
}

// Decode cr_cart 형식의 JSON 배열을 장바구니 항목들로 해석합니다.
//
// 브라우저에서 저장된 데이터는 버전마다 형태가 조금씩 달라 항목 단위로 관대하게 읽습니다.
//   - 숫자로 저장된 가격/품번은 문자열로 변환합니다.
//   - null 또는 누락된 색상은 "색상 없음"으로 봅니다.
//   - 품번이 없으면 상품 위치로 ITEM-{index+1}을 만듭니다.
//   - index가 없거나 수량이 1 미만인 항목은 버립니다.
//   - MaxLineQuantity를 넘는 수량은 MaxLineQuantity로 제한합니다.
//
// 최상위 값이 JSON 배열이 아닐 때만 에러를 반환합니다. 빈 입력은 빈 장바구니입니다.
func Decode(data []byte) ([]Line, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, newErrInvalidCartData("JSON 문법 오류")
	}

	root := gjson.ParseBytes(data)
	if root.Type == gjson.Null {
		return nil, nil
	}
	if !root.IsArray() {
		return nil, newErrInvalidCartData("최상위 값이 배열이 아닙니다")
	}

	var lines []Line
	root.ForEach(func(_, item gjson.Result) bool {
		index := item.Get("index")
		if !index.Exists() || !isNumeric(index) {
			return true
		}
		raw := item.Get("quantity").Int()
		if raw < 1 {
			return true
		}
		quantity := clampQuantity(raw)

		l := Line{
			ProductRef:     int(index.Int()),
			Name:           item.Get("name").String(),
			ItemNumber:     item.Get("no").String(),
			RetailPrice:    item.Get("price").String(),
			WholesalePrice: item.Get("bulkPrice").String(),
			ImageRef:       item.Get("image").String(),
			Color:          item.Get("color").String(),
			Quantity:       quantity,
		}
		if l.ItemNumber == "" {
			l.ItemNumber = fmt.Sprintf("ITEM-%d", l.ProductRef+1)
		}

		lines = append(lines, l)
		return true
	})

	return lines, nil
}

func isNumeric(r gjson.Result) bool {
	switch r.Type {
	case gjson.Number:
		return true
	case gjson.String:
		_, err := strconv.Atoi(r.Str)
		return err == nil
	default:
		return false
	}
}
