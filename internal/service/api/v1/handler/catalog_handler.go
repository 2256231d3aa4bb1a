package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/rarities-store/internal/catalog/view"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/service/api/httputil"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// catalogQuery 카탈로그 조회 쿼리 파라미터를 해석합니다.
func catalogQuery(c echo.Context) view.Query {
	category := c.QueryParam("category")
	if category == "" {
		category = view.CategoryAll
	}

	return view.Query{
		Category: category,
		Term:     c.QueryParam("q"),
		Sort:     view.ParseSortKey(c.QueryParam("sort")),
	}
}

// GetCatalogHandler godoc
// @Summary 상품 카탈로그 조회
// @Description 카테고리 필터, 퍼지 검색, 정렬을 차례로 적용한 상품 카드 목록을 반환합니다.
// @Description 검색어는 공백으로 나뉜 단어가 모두 일치해야 하며 아랍어 표기 차이(أ/إ/آ, ة/ه, ى/ي)를 무시합니다.
// @Description 카탈로그가 아직 한 번도 적재되지 않았으면 503을 반환합니다.
// @Tags Catalog
// @Produce json
// @Param category query string false "카테고리 (all 또는 생략 시 전체)"
// @Param q query string false "검색어"
// @Param sort query string false "정렬 기준" Enums(default, name-asc, name-desc, price-asc, price-desc, category-asc, category-desc, arabic-asc, arabic-desc)
// @Param lang query string false "표시 언어 (생략 시 세션 설정)" Enums(en, ar)
// @Param X-Session-ID header string false "세션 ID"
// @Success 200 {object} response.CatalogResponse "카탈로그"
// @Failure 503 {object} response.ErrorResponse "카탈로그 미적재"
// @Router /api/v1/catalog [get]
func (h *Handler) GetCatalogHandler(c echo.Context) error {
	snap, err := h.catalog.Current()
	if err != nil {
		return err
	}

	lang := h.resolveLang(c)
	q := catalogQuery(c)

	products := snap.View(q)

	return c.JSON(http.StatusOK, response.CatalogResponse{
		Lang:       string(lang),
		Dir:        lang.Dir(),
		Category:   q.Category,
		Sort:       string(q.Sort),
		Query:      q.Term,
		Count:      len(products),
		Categories: newCategoryOptions(snap.Categories, lang),
		Cards:      newCards(products, lang),
		LoadedAt:   snap.LoadedAt,
	})
}

// GetCategoriesHandler godoc
// @Summary 카테고리 목록 조회
// @Description 카탈로그에 있는 카테고리를 중복 없이 정렬하여 반환합니다. 첫 항목은 전체(all)입니다.
// @Tags Catalog
// @Produce json
// @Param lang query string false "표시 언어" Enums(en, ar)
// @Success 200 {object} response.CategoriesResponse "카테고리 목록"
// @Failure 503 {object} response.ErrorResponse "카탈로그 미적재"
// @Router /api/v1/catalog/categories [get]
func (h *Handler) GetCategoriesHandler(c echo.Context) error {
	snap, err := h.catalog.Current()
	if err != nil {
		return err
	}

	lang := h.resolveLang(c)

	return c.JSON(http.StatusOK, response.CategoriesResponse{
		Lang:       string(lang),
		Categories: newCategoryOptions(snap.Categories, lang),
	})
}

// GetProductHandler godoc
// @Summary 상품 상세 조회
// @Tags Catalog
// @Produce json
// @Param index path int true "상품 순번"
// @Param lang query string false "표시 언어" Enums(en, ar)
// @Success 200 {object} response.Card "상품 카드"
// @Failure 400 {object} response.ErrorResponse "잘못된 순번"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Failure 503 {object} response.ErrorResponse "카탈로그 미적재"
// @Router /api/v1/catalog/products/{index} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return httputil.NewBadRequestError(constants.ErrMsgInvalidProductIndex)
	}

	snap, err := h.catalog.Current()
	if err != nil {
		return err
	}

	p, ok := snap.Product(index)
	if !ok {
		return httputil.NewNotFoundError(constants.ErrMsgProductNotFound)
	}

	return c.JSON(http.StatusOK, newCard(p, h.resolveLang(c)))
}

// ReloadCatalogHandler godoc
// @Summary 카탈로그 수동 갱신
// @Description 스프레드시트를 다시 읽어 카탈로그를 교체합니다. 실패하면 기존 카탈로그를 유지하고 에러를 반환합니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.ReloadResponse "갱신 결과"
// @Failure 503 {object} response.ErrorResponse "원본을 가져올 수 없음"
// @Router /api/v1/catalog/reload [post]
func (h *Handler) ReloadCatalogHandler(c echo.Context) error {
	snap, err := h.catalog.Reload(c.Request().Context())
	if err != nil {
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"products":   len(snap.Products),
		"categories": len(snap.Categories),
	}).Info("카탈로그 수동 갱신 완료")

	return c.JSON(http.StatusOK, response.ReloadResponse{
		Products:   len(snap.Products),
		Categories: len(snap.Categories),
		LoadedAt:   snap.LoadedAt,
	})
}
