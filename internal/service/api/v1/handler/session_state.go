package handler

import (
	"context"

	"github.com/darkkaiser/rarities-store/internal/cart"
	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/darkkaiser/rarities-store/internal/service/api/middleware"
	"github.com/darkkaiser/rarities-store/internal/storage"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

const componentSession = "api.handler.session"

// loadCart 세션의 장바구니를 읽습니다. 저장된 값이 없으면 빈 장바구니입니다.
//
// 저장된 값을 해석할 수 없으면 경고를 남기고 빈 장바구니로 시작합니다.
func (h *Handler) loadCart(ctx context.Context, session string) (*cart.Cart, error) {
	data, err := h.store.Get(ctx, session, storage.KeyCart)
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return cart.New(h.cfg.WholesaleThreshold), nil
		}
		return nil, err
	}

	lines, err := cart.Decode(data)
	if err != nil {
		applog.WithComponentAndFields(componentSession, applog.Fields{
			"session_id": session,
			"error":      err,
		}).Warn("저장된 장바구니 무시: 데이터를 해석할 수 없음")

		return cart.New(h.cfg.WholesaleThreshold), nil
	}

	return cart.New(h.cfg.WholesaleThreshold, lines...), nil
}

// saveCart 장바구니를 저장합니다. 비어 있으면 저장된 값을 삭제합니다.
func (h *Handler) saveCart(ctx context.Context, session string, ct *cart.Cart) error {
	if ct.Len() == 0 {
		return h.store.Delete(ctx, session, storage.KeyCart)
	}

	data, err := cart.Encode(ct.Lines())
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "장바구니 직렬화 실패")
	}

	return h.store.Put(ctx, session, storage.KeyCart, data)
}

// loadLang 세션에 저장된 언어 설정을 읽습니다. 없거나 읽을 수 없으면 기본 언어입니다.
func (h *Handler) loadLang(ctx context.Context, session string) i18n.Lang {
	data, err := h.store.Get(ctx, session, storage.KeyLang)
	if err != nil {
		if !apperrors.Is(err, apperrors.NotFound) {
			applog.WithComponentAndFields(componentSession, applog.Fields{
				"session_id": session,
				"error":      err,
			}).Warn("언어 설정 조회 실패: 기본 언어 사용")
		}
		return i18n.Default
	}

	lang, _ := i18n.ParseLang(string(data))
	return lang
}

// resolveLang lang 쿼리 파라미터가 유효하면 그 값을, 아니면 세션에 저장된 언어를 사용합니다.
// 쿼리 파라미터는 이번 요청에만 적용되며 저장하지 않습니다.
func (h *Handler) resolveLang(c echo.Context) i18n.Lang {
	if lang, ok := i18n.ParseLang(c.QueryParam("lang")); ok {
		return lang
	}
	return h.loadLang(c.Request().Context(), middleware.SessionID(c))
}

// withSession 같은 세션의 다른 요청과 겹치지 않도록 fn을 실행합니다.
func (h *Handler) withSession(c echo.Context, fn func(ctx context.Context, session string) error) error {
	session := middleware.SessionID(c)
	return h.sessions.WithLock(session, func() error {
		return fn(c.Request().Context(), session)
	})
}
