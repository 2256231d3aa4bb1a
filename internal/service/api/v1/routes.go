// Package v1 Rarities Store API의 v1 버전 라우트를 정의합니다.
//
// 모든 엔드포인트는 /api/v1 하위에 있으며 Session 미들웨어로 브라우저 세션을 식별합니다.
//
// 주요 엔드포인트:
//   - GET    /api/v1/catalog                 - 상품 카드 목록 (필터, 검색, 정렬)
//   - GET    /api/v1/catalog/stream          - 상품 카드 스트림 (SSE)
//   - GET    /api/v1/cart                    - 장바구니
//   - POST   /api/v1/checkout                - WhatsApp 주문 메시지
//   - GET    /api/v1/session/language        - 언어 설정
package v1

import (
	"github.com/darkkaiser/rarities-store/internal/service/api/middleware"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// secureCookie가 true이면 새로 발급하는 세션 쿠키에 Secure 속성을 붙입니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, secureCookie bool) {
	g := e.Group("/api/v1", middleware.Session(secureCookie))

	jsonBody := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	// 카탈로그
	g.GET("/catalog", h.GetCatalogHandler)
	g.GET("/catalog/categories", h.GetCategoriesHandler)
	g.GET("/catalog/products/:index", h.GetProductHandler)
	g.GET("/catalog/stream", h.StreamCatalogHandler)
	g.POST("/catalog/reload", h.ReloadCatalogHandler)

	// 장바구니
	g.GET("/cart", h.GetCartHandler)
	g.DELETE("/cart", h.ClearCartHandler)
	g.POST("/cart/items", h.AddCartItemHandler, jsonBody)
	g.PATCH("/cart/items/:index", h.ChangeCartItemHandler, jsonBody)
	g.DELETE("/cart/items/:index", h.RemoveCartItemHandler)
	g.POST("/cart/import", h.ImportCartHandler, jsonBody)

	// 주문
	g.POST("/checkout", h.CheckoutHandler)

	// 세션
	g.GET("/session/language", h.GetLanguageHandler)
	g.PUT("/session/language", h.PutLanguageHandler, jsonBody)
}
