// Package checkout 장바구니를 주문 메시지로 만들고 메신저 딥링크를 생성합니다.
//
// 주문은 메시지 전달로 끝나며 응답을 기다리지 않습니다.
package checkout

import (
	"strconv"
	"strings"

	"github.com/darkkaiser/rarities-store/internal/cart"
	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	"github.com/darkkaiser/rarities-store/pkg/strutil"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency 주문 메시지에 표시하는 통화 단위입니다.
	DefaultCurrency = "JOD"

	// moneyDecimals 금액 표시 소수 자릿수 (JOD는 1/1000 단위)
	moneyDecimals = 3

	separator = "--------------------------"
)

type messageOptions struct {
	currency string
}

// MessageOption 주문 메시지 생성 옵션입니다.
type MessageOption func(*messageOptions)

// WithCurrency 통화 표기를 변경합니다. 빈 값은 무시합니다.
func WithCurrency(currency string) MessageOption {
	return func(o *messageOptions) {
		if currency != "" {
			o.currency = currency
		}
	}
}

// FormatMoney 금액을 "12.500 JOD" 형식으로 표시합니다.
func FormatMoney(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(moneyDecimals) + " " + currency
}

// BuildMessage 가격이 계산된 장바구니로 주문 메시지를 만듭니다.
//
// 메시지는 다음 형식이며 머리말과 라벨은 lang에 따라 바뀝니다.
//
//	*Creative Rarities Store - New Order*
//
//	*{상품명}*
//	ID: {품번} | Color: {색상|Default}
//	Qty: {수량} PCS x {단가} JOD = {소계} JOD
//
//	--------------------------
//	*Order Total: {합계} JOD*
func BuildMessage(q cart.Quote, lang i18n.Lang, opts ...MessageOption) (string, error) {
	if q.Empty() {
		return "", ErrEmptyCart
	}

	o := messageOptions{currency: DefaultCurrency}
	for _, opt := range opts {
		opt(&o)
	}

	t := i18n.For(lang)

	var sb strings.Builder
	sb.WriteString(t.WhatsAppOrderHeader)
	sb.WriteString("\n\n")

	for _, l := range q.Lines {
		color := l.Color
		if color == "" {
			color = t.DefaultColor
		}

		sb.WriteString("*" + l.Name + "*\n")
		sb.WriteString("ID: " + l.ItemNumber + " | " + t.Color + ": " + color + "\n")
		sb.WriteString(t.Qty + ": " + strconv.Itoa(l.Quantity) + " " + t.PCS +
			" x " + FormatMoney(l.UnitPrice, o.currency) +
			" = " + FormatMoney(l.Subtotal, o.currency) + "\n\n")
	}

	sb.WriteString(separator + "\n")
	sb.WriteString("*" + t.WhatsAppOrderTotal + " " + FormatMoney(q.Total, o.currency) + "*")

	return sb.String(), nil
}

// DeepLink 메시지가 미리 입력된 WhatsApp 대화 링크를 반환합니다.
func DeepLink(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + strutil.EncodeURIComponent(message)
}
