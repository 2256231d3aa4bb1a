package product

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingDecimal 숫자와 소수점만 남긴 문자열의 앞부분에서 읽을 수 있는 가장 긴 십진수입니다.
var leadingDecimal = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)`)

// ParsePrice "10.000 JOD", "JD 7.5" 같은 표시 문자열을 금액으로 해석합니다.
//
// 숫자와 '.' 이외의 문자를 모두 제거한 뒤 앞에서부터 읽을 수 있는 십진수를 취합니다.
// ("1.2.3" -> 1.2) 읽을 수 있는 숫자가 없으면 false를 반환합니다.
func ParsePrice(s string) (decimal.Decimal, bool) {
	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)

	num := leadingDecimal.FindString(stripped)
	if num == "" {
		return decimal.Zero, false
	}

	num = strings.TrimSuffix(num, ".")
	if strings.HasPrefix(num, ".") {
		num = "0" + num
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

var hundred = decimal.NewFromInt(100)

// discountPercent 소매가 대비 도매가 할인율을 정수 퍼센트로 계산합니다.
// 두 가격이 모두 해석되고 소매가가 도매가보다 클 때만 값을 가집니다.
func discountPercent(retail, wholesale string) *int {
	r, ok := ParsePrice(retail)
	if !ok {
		return nil
	}
	w, ok := ParsePrice(wholesale)
	if !ok || !r.GreaterThan(w) {
		return nil
	}

	pct := int(r.Sub(w).Div(r).Mul(hundred).Round(0).IntPart())
	return &pct
}
