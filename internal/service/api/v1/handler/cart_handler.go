package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/darkkaiser/rarities-store/internal/cart"
	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/service/api/httputil"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/request"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// errCartLineNotFound 수량 변경/삭제 대상 항목이 장바구니에 없을 때 withSession 밖으로 전달하는 에러
var errCartLineNotFound = httputil.NewNotFoundError(constants.ErrMsgCartLineNotFound)

func pathIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, httputil.NewBadRequestError(constants.ErrMsgInvalidProductIndex)
	}
	return index, nil
}

// GetCartHandler godoc
// @Summary 장바구니 조회
// @Description 장바구니 항목과 가격 계산 결과를 반환합니다.
// @Description 같은 품번의 수량을 색상과 관계없이 합산하여 기준 수량(기본 25) 이상이면 도매가를 적용합니다.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Param lang query string false "표시 언어" Enums(en, ar)
// @Success 200 {object} response.CartResponse "장바구니"
// @Router /api/v1/cart [get]
func (h *Handler) GetCartHandler(c echo.Context) error {
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

	return c.JSON(http.StatusOK, h.newCartResponse(quote, lang))
}

// AddCartItemHandler godoc
// @Summary 장바구니 담기
// @Description 상품을 하나 담습니다. 같은 (상품, 색상) 항목이 있으면 수량을 1 늘립니다.
// @Description 색상을 비우면 상품의 첫 번째 색상이 선택됩니다. 품절 상품은 409와 안내 문구를 반환합니다.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Param item body request.AddCartItemRequest true "담을 상품"
// @Success 200 {object} response.CartResponse "변경된 장바구니"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Failure 409 {object} response.NoticeResponse "품절 상품"
// @Failure 503 {object} response.ErrorResponse "카탈로그 미적재"
// @Router /api/v1/cart/items [post]
func (h *Handler) AddCartItemHandler(c echo.Context) error {
	req := new(request.AddCartItemRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	snap, err := h.catalog.Current()
	if err != nil {
		return err
	}

	p, ok := snap.Product(*req.Index)
	if !ok {
		return httputil.NewNotFoundError(constants.ErrMsgProductNotFound)
	}
	if req.Color != "" && !slices.Contains(p.Colors, req.Color) {
		return httputil.NewBadRequestError(constants.ErrMsgInvalidColor)
	}

	lang := h.resolveLang(c)

	var quote cart.Quote
	err = h.withSession(c, func(ctx context.Context, session string) error {
		ct, err := h.loadCart(ctx, session)
		if err != nil {
			return err
		}
		if err := ct.Add(p, req.Color); err != nil {
			return err
		}
		if err := h.saveCart(ctx, session, ct); err != nil {
			return err
		}
		quote = ct.Quote()
		return nil
	})
	if err != nil {
		if errors.Is(err, cart.ErrOutOfStock) {
			m := i18n.For(lang)
			return c.JSON(http.StatusConflict, response.NoticeResponse{
				ResultCode: http.StatusConflict,
				Title:      i18n.DisplayName(lang, p.Name, p.ArabicName),
				Message:    m.OutOfStock,
			})
		}
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"index":       p.SequenceIndex,
		"item_number": p.ItemNumber,
		"lines":       len(quote.Lines),
	}).Debug("장바구니 담기")

	return c.JSON(http.StatusOK, h.newCartResponse(quote, lang))
}

// ChangeCartItemHandler godoc
// @Summary 장바구니 수량 변경
// @Description 항목의 수량을 delta만큼 바꿉니다. 결과 수량이 0 이하이면 항목을 제거합니다.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Param index path int true "상품 순번"
// @Param change body request.ChangeQuantityRequest true "수량 변화"
// @Success 200 {object} response.CartResponse "변경된 장바구니"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "장바구니에 없는 항목"
// @Router /api/v1/cart/items/{index} [patch]
func (h *Handler) ChangeCartItemHandler(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return err
	}

	req := new(request.ChangeQuantityRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	return h.mutateLine(c, func(ct *cart.Cart) bool {
		return ct.ChangeQuantity(index, req.Color, req.Delta)
	})
}

// RemoveCartItemHandler godoc
// @Summary 장바구니 항목 삭제
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Param index path int true "상품 순번"
// @Param color query string false "항목의 색상"
// @Success 200 {object} response.CartResponse "변경된 장바구니"
// @Failure 404 {object} response.ErrorResponse "장바구니에 없는 항목"
// @Router /api/v1/cart/items/{index} [delete]
func (h *Handler) RemoveCartItemHandler(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return err
	}

	color := c.QueryParam("color")

	return h.mutateLine(c, func(ct *cart.Cart) bool {
		return ct.Remove(index, color)
	})
}

// mutateLine 장바구니 항목 하나를 변경하고 저장한 뒤 장바구니를 응답합니다.
// mutate가 false를 반환하면 저장하지 않고 404를 반환합니다.
func (h *Handler) mutateLine(c echo.Context, mutate func(*cart.Cart) bool) error {
	lang := h.resolveLang(c)

	var quote cart.Quote
	err := h.withSession(c, func(ctx context.Context, session string) error {
		ct, err := h.loadCart(ctx, session)
		if err != nil {
			return err
		}
		if !mutate(ct) {
			return errCartLineNotFound
		}
		if err := h.saveCart(ctx, session, ct); err != nil {
			return err
		}
		quote = ct.Quote()
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.newCartResponse(quote, lang))
}

// ClearCartHandler godoc
// @Summary 장바구니 비우기
// @Description 모든 항목을 제거하고 안내 문구를 반환합니다. 이미 비어 있었다면 그에 맞는 문구를 반환합니다.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Success 200 {object} response.ClearCartResponse "안내 문구와 빈 장바구니"
// @Router /api/v1/cart [delete]
func (h *Handler) ClearCartHandler(c echo.Context) error {
	lang := h.resolveLang(c)
	m := i18n.For(lang)

	var (
		wasEmpty bool
		quote    cart.Quote
	)
	err := h.withSession(c, func(ctx context.Context, session string) error {
		ct, err := h.loadCart(ctx, session)
		if err != nil {
			return err
		}
		wasEmpty = ct.Clear()
		if !wasEmpty {
			if err := h.saveCart(ctx, session, ct); err != nil {
				return err
			}
		}
		quote = ct.Quote()
		return nil
	})
	if err != nil {
		return err
	}

	notice := response.NoticeResponse{
		ResultCode: http.StatusOK,
		Title:      m.CartClearedTitle,
		Message:    m.CartClearedMsg,
	}
	if wasEmpty {
		notice.Title = m.CartTitle
		notice.Message = m.CartAlreadyEmptyMsg
	}

	return c.JSON(http.StatusOK, response.ClearCartResponse{
		Notice: notice,
		Cart:   h.newCartResponse(quote, lang),
	})
}

// ImportCartHandler godoc
// @Summary 브라우저 장바구니 가져오기
// @Description 브라우저 localStorage의 cr_cart 값(JSON 배열)을 그대로 받아 세션 장바구니를 교체합니다.
// @Description 숫자로 저장된 가격/품번, null 색상 등 이전 버전의 형식도 받아들입니다. 수량이 1 미만인 항목은 버립니다.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Param cart body []object true "cr_cart JSON 배열"
// @Success 200 {object} response.CartResponse "가져온 장바구니"
// @Failure 400 {object} response.ErrorResponse "JSON 배열이 아님"
// @Router /api/v1/cart/import [post]
func (h *Handler) ImportCartHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// 본문 크기 제한(413)은 그대로 전달
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestBodyRead)
	}

	lines, err := cart.Decode(body)
	if err != nil {
		return err
	}

	lang := h.resolveLang(c)

	var quote cart.Quote
	err = h.withSession(c, func(ctx context.Context, session string) error {
		ct := cart.New(h.cfg.WholesaleThreshold, lines...)
		if err := h.saveCart(ctx, session, ct); err != nil {
			return err
		}
		quote = ct.Quote()
		return nil
	})
	if err != nil {
		return err
	}

	h.log(c).WithField("lines", len(quote.Lines)).Info("브라우저 장바구니 가져오기 완료")

	return c.JSON(http.StatusOK, h.newCartResponse(quote, lang))
}
