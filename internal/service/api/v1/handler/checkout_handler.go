package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/darkkaiser/rarities-store/internal/cart"
	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	"github.com/darkkaiser/rarities-store/internal/checkout"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// CheckoutHandler godoc
// @Summary WhatsApp 주문
// @Description 장바구니로 주문 메시지를 만들고 가게 WhatsApp 대화를 여는 딥링크를 반환합니다.
// @Description 결제나 주문 저장은 하지 않으며 장바구니도 그대로 유지됩니다.
// @Description 장바구니가 비어 있으면 409와 안내 문구를 반환합니다.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Param lang query string false "메시지 언어" Enums(en, ar)
// @Success 200 {object} response.CheckoutResponse "주문 메시지와 딥링크"
// @Failure 409 {object} response.NoticeResponse "빈 장바구니"
// @Router /api/v1/checkout [post]
func (h *Handler) CheckoutHandler(c echo.Context) error {
	lang := h.resolveLang(c)

	var quote cart.Quote
	err := h.withSession(c, func(ctx context.Context, session string) error {
		ct, err := h.loadCart(ctx, session)
		if err != nil {
			return err
		}
		quote = ct.Quote()
		return nil
	})
	if err != nil {
		return err
	}

	result, err := h.checkout.Checkout(quote, lang)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			m := i18n.For(lang)
			return c.JSON(http.StatusConflict, response.NoticeResponse{
				ResultCode: http.StatusConflict,
				Title:      m.CartEmptyCheckoutTitle,
				Message:    m.CartEmptyCheckoutMsg,
			})
		}
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"lines":          len(quote.Lines),
		"total_quantity": quote.TotalQuantity,
		"total":          result.Total,
	}).Info("주문 메시지 생성")

	return c.JSON(http.StatusOK, response.CheckoutResponse{
		Message:  result.Message,
		DeepLink: result.DeepLink,
		Total:    result.Total,
	})
}
