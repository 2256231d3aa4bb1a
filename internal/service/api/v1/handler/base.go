// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 카탈로그 조회, 장바구니, 주문(WhatsApp 메시지), 세션 언어 설정을 처리합니다.
// 장바구니와 언어 설정은 세션 단위로 저장소에 보관하며, 같은 세션의 요청은 순서대로 처리됩니다.
package handler

import (
	"context"
	"time"

	"github.com/darkkaiser/rarities-store/internal/cart"
	"github.com/darkkaiser/rarities-store/internal/catalog"
	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	"github.com/darkkaiser/rarities-store/internal/checkout"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/storage"
	"github.com/darkkaiser/rarities-store/pkg/concurrency"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// Catalog 현재 카탈로그 스냅샷 조회와 수동 갱신을 제공합니다.
type Catalog interface {
	Current() (*catalog.Snapshot, error)
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

// Checkout 가격이 계산된 장바구니로 주문 메시지를 만듭니다.
type Checkout interface {
	Checkout(q cart.Quote, lang i18n.Lang) (checkout.Result, error)
}

var (
	_ Catalog  = (*catalog.Service)(nil)
	_ Checkout = (*checkout.Service)(nil)
)

// Config 핸들러 동작 설정입니다.
type Config struct {
	// WholesaleThreshold 도매가 적용 기준 수량 (0 이하이면 기본값 25)
	WholesaleThreshold int

	// Currency 금액 표시에 사용할 통화 코드 (비어 있으면 JOD)
	Currency string

	// RenderBatchSize, RenderStagger 카탈로그 스트림의 묶음 크기와 카드 사이 간격
	RenderBatchSize int
	RenderStagger   time.Duration
}

// Handler v1 API 요청을 처리합니다.
type Handler struct {
	catalog  Catalog
	store    storage.Store
	checkout Checkout

	cfg Config

	// sessions 같은 세션의 장바구니 읽기-수정-저장을 직렬화합니다.
	sessions *concurrency.KeyedMutex[string]

	streams *streamRegistry
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(catalogService Catalog, store storage.Store, checkoutService Checkout, cfg Config) *Handler {
	if catalogService == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if store == nil {
		panic(constants.PanicMsgStoreRequired)
	}
	if checkoutService == nil {
		panic(constants.PanicMsgCheckoutRequired)
	}

	if cfg.WholesaleThreshold <= 0 {
		cfg.WholesaleThreshold = cart.DefaultWholesaleThreshold
	}
	if cfg.Currency == "" {
		cfg.Currency = checkout.DefaultCurrency
	}

	return &Handler{
		catalog:  catalogService,
		store:    store,
		checkout: checkoutService,

		cfg: cfg,

		sessions: concurrency.NewKeyedMutex[string](),

		streams: newStreamRegistry(),
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
