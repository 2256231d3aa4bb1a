package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/rarities-store/internal/catalog"
	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/darkkaiser/rarities-store/internal/catalog/schema"
	"github.com/darkkaiser/rarities-store/internal/checkout"
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/service/api/httputil"
	apiresponse "github.com/darkkaiser/rarities-store/internal/service/api/model/response"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/handler"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/response"
	"github.com/darkkaiser/rarities-store/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

const testPhone = "962795965910"

type fakeCatalog struct {
	snap      *catalog.Snapshot
	err       error
	reloadErr error
}

func (f *fakeCatalog) Current() (*catalog.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

func (f *fakeCatalog) Reload(context.Context) (*catalog.Snapshot, error) {
	if f.reloadErr != nil {
		return nil, f.reloadErr
	}
	return f.snap, nil
}

// newTestSnapshot 정규화를 거친 상품 3개(조명 2개, 품절 화병 1개)로 스냅샷을 만듭니다.
//
//	index 0: CR-101 Aquarium Lamp (Red, Blue) 10.000 / 7.000
//	index 1: CR-202 Crystal Vase 품절
//	index 2: CR-303 Candle (색상 없음) 5 / 4
func newTestSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()

	headers := []string{"Item No.", "Product Name", "Arabic Name", "Category", "Price (<25)", "Price (>=25)", "Available", "Colors"}
	columns, err := schema.Resolve(headers)
	require.NoError(t, err)

	products := product.NewNormalizer(columns).NormalizeAll([]product.RawRow{
		{"Item No.": "CR-101", "Product Name": "Aquarium Lamp", "Arabic Name": "مصباح", "Category": "Lighting", "Price (<25)": "10.000", "Price (>=25)": "7.000", "Colors": "Red, Blue"},
		{"Item No.": "CR-202", "Product Name": "Crystal Vase", "Category": "Vases", "Price (<25)": "20.000", "Price (>=25)": "15.000", "Available": "No"},
		{"Item No.": "CR-303", "Product Name": "Candle", "Category": "Lighting", "Price (<25)": "5", "Price (>=25)": "4"},
	})
	require.Len(t, products, 3)

	return catalog.NewSnapshot(products, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
}

type testServer struct {
	e       *echo.Echo
	catalog *fakeCatalog
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	fc := &fakeCatalog{snap: newTestSnapshot(t)}

	h := handler.NewHandler(fc, store, checkout.NewService(testPhone, "JOD", nil), handler.Config{
		RenderBatchSize: 2,
		RenderStagger:   0,
	})

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Validator = httputil.NewRequestValidator()
	RegisterRoutes(e, h, false)

	return &testServer{e: e, catalog: fc}
}

func (s *testServer) do(t *testing.T, method, target, session, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if session != "" {
		req.Header.Set(constants.HeaderSessionID, session)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// =============================================================================
// 카탈로그
// =============================================================================

func TestCatalog_NotLoaded(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.catalog.err = apperrors.Wrapf(catalog.ErrNotLoaded, apperrors.Unavailable, "카탈로그가 아직 적재되지 않았습니다: %s", "HTTP 404")

	for _, path := range []string{"/api/v1/catalog", "/api/v1/catalog/categories", "/api/v1/catalog/stream", "/api/v1/catalog/products/0"} {
		rec := s.do(t, http.MethodGet, path, "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
		res := decode[apiresponse.ErrorResponse](t, rec)
		assert.Equal(t, "카탈로그가 아직 적재되지 않았습니다: HTTP 404", res.Message, path)
	}
}

func TestCatalog_List(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	t.Run("전체 조회", func(t *testing.T) {
		t.Parallel()

		rec := s.do(t, http.MethodGet, "/api/v1/catalog", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		res := decode[response.CatalogResponse](t, rec)
		assert.Equal(t, "en", res.Lang)
		assert.Equal(t, "ltr", res.Dir)
		assert.Equal(t, "all", res.Category)
		assert.Equal(t, 3, res.Count)
		require.Len(t, res.Cards, 3)
		require.NotEmpty(t, res.Categories)
		assert.Equal(t, "all", res.Categories[0].Value)
		assert.NotEmpty(t, rec.Header().Get(constants.HeaderSessionID))
	})

	t.Run("카테고리 필터", func(t *testing.T) {
		t.Parallel()

		rec := s.do(t, http.MethodGet, "/api/v1/catalog?category=Lighting", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		res := decode[response.CatalogResponse](t, rec)
		assert.Equal(t, 2, res.Count)
		for _, card := range res.Cards {
			assert.Equal(t, "Lighting", card.Category)
		}
	})

	t.Run("아랍어 표시", func(t *testing.T) {
		t.Parallel()

		rec := s.do(t, http.MethodGet, "/api/v1/catalog?lang=ar", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		res := decode[response.CatalogResponse](t, rec)
		assert.Equal(t, "ar", res.Lang)
		assert.Equal(t, "rtl", res.Dir)

		var lamp *response.Card
		for i := range res.Cards {
			if res.Cards[i].ItemNumber == "CR-101" {
				lamp = &res.Cards[i]
			}
		}
		require.NotNil(t, lamp)
		assert.Equal(t, "مصباح", lamp.Name)
		assert.Equal(t, "Aquarium Lamp", lamp.EnglishName)
	})
}

func TestCatalog_Product(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/catalog/products/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	card := decode[response.Card](t, rec)
	assert.Equal(t, "Crystal Vase", card.Name)
	assert.False(t, card.Available)

	rec = s.do(t, http.MethodGet, "/api/v1/catalog/products/99", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.ErrMsgProductNotFound, decode[apiresponse.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodGet, "/api/v1/catalog/products/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalog_Reload(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/catalog/reload", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[response.ReloadResponse](t, rec)
	assert.Equal(t, 3, res.Products)
	assert.Equal(t, 2, res.Categories)

	s.catalog.reloadErr = apperrors.New(apperrors.Unavailable, "No data found in the spreadsheet.")
	rec = s.do(t, http.MethodPost, "/api/v1/catalog/reload", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "No data found in the spreadsheet.", decode[apiresponse.ErrorResponse](t, rec).Message)
}

func TestCatalog_Stream(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/catalog/stream?category=all", uuid.NewString(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, "event: meta\n"))
	assert.Equal(t, 3, strings.Count(body, "event: card\n"))
	assert.Equal(t, 1, strings.Count(body, "event: done\n"))
	assert.Contains(t, body, `"total":3`)
	assert.Contains(t, body, `"rendered":3`)
	assert.Less(t, strings.Index(body, "event: meta"), strings.Index(body, "event: card"))
	assert.Greater(t, strings.Index(body, "event: done"), strings.LastIndex(body, "event: card"))
}

// =============================================================================
// 장바구니
// =============================================================================

func TestCart_Flow(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	// 비어 있는 장바구니
	rec := s.do(t, http.MethodGet, "/api/v1/cart", session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	cartRes := decode[response.CartResponse](t, rec)
	assert.True(t, cartRes.Empty)
	assert.Equal(t, 25, cartRes.Threshold)
	assert.Equal(t, "0.000 JOD", cartRes.Total)

	// 색상을 비우면 첫 번째 색상
	rec = s.do(t, http.MethodPost, "/api/v1/cart/items", session, `{"index":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cartRes = decode[response.CartResponse](t, rec)
	require.Len(t, cartRes.Lines, 1)
	assert.Equal(t, "Red", cartRes.Lines[0].Color)
	assert.Equal(t, 1, cartRes.Lines[0].Quantity)
	assert.Equal(t, "10.000 JOD", cartRes.Total)

	rec = s.do(t, http.MethodPost, "/api/v1/cart/items", session, `{"index":0,"color":"Blue"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cartRes = decode[response.CartResponse](t, rec)
	require.Len(t, cartRes.Lines, 2)
	assert.Equal(t, "20.000 JOD", cartRes.Total)

	// 같은 품번의 수량 합계가 기준 이상이면 모든 색상에 도매가
	rec = s.do(t, http.MethodPatch, "/api/v1/cart/items/0", session, `{"color":"Red","delta":24}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cartRes = decode[response.CartResponse](t, rec)
	assert.Equal(t, 26, cartRes.TotalQuantity)
	for _, l := range cartRes.Lines {
		assert.Equal(t, "wholesale", l.Tier)
		assert.Equal(t, 26, l.ItemQuantity)
		assert.Equal(t, "7.000 JOD", l.UnitPrice)
	}
	assert.Equal(t, "182.000 JOD", cartRes.Total)

	// 항목 삭제
	rec = s.do(t, http.MethodDelete, "/api/v1/cart/items/0?color=Blue", session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	cartRes = decode[response.CartResponse](t, rec)
	require.Len(t, cartRes.Lines, 1)
	assert.Equal(t, "wholesale", cartRes.Lines[0].Tier)

	// 저장된 장바구니를 다시 읽는다
	rec = s.do(t, http.MethodGet, "/api/v1/cart", session, "")
	cartRes = decode[response.CartResponse](t, rec)
	require.Len(t, cartRes.Lines, 1)
	assert.Equal(t, 25, cartRes.Lines[0].Quantity)

	// 다른 세션은 영향을 받지 않는다
	rec = s.do(t, http.MethodGet, "/api/v1/cart", uuid.NewString(), "")
	assert.True(t, decode[response.CartResponse](t, rec).Empty)
}

func TestCart_AddErrors(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"index 누락", `{}`, http.StatusBadRequest},
		{"음수 index", `{"index":-1}`, http.StatusBadRequest},
		{"잘못된 JSON", `{"index":`, http.StatusBadRequest},
		{"없는 상품", `{"index":99}`, http.StatusNotFound},
		{"선택할 수 없는 색상", `{"index":0,"color":"Green"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		rec := s.do(t, http.MethodPost, "/api/v1/cart/items", session, tt.body)
		assert.Equal(t, tt.wantCode, rec.Code, tt.name)
	}

	t.Run("품절 상품은 안내 문구와 함께 거부된다", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/cart/items", session, `{"index":1}`)
		require.Equal(t, http.StatusConflict, rec.Code)

		notice := decode[response.NoticeResponse](t, rec)
		assert.Equal(t, "Crystal Vase", notice.Title)
		assert.Equal(t, "Out of Stock", notice.Message)

		rec = s.do(t, http.MethodGet, "/api/v1/cart", session, "")
		assert.True(t, decode[response.CartResponse](t, rec).Empty)
	})

	t.Run("JSON이 아닌 본문은 415", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader("index=0"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestCart_MutateMissingLine(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	rec := s.do(t, http.MethodPatch, "/api/v1/cart/items/2", session, `{"delta":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.ErrMsgCartLineNotFound, decode[apiresponse.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodDelete, "/api/v1/cart/items/2", session, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/v1/cart/items/2", session, `{"delta":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/cart/items/x", session, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_ChangeQuantityToZeroRemovesLine(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	rec := s.do(t, http.MethodPost, "/api/v1/cart/items", session, `{"index":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	line := decode[response.CartResponse](t, rec).Lines[0]
	assert.Empty(t, line.Color)
	assert.Equal(t, "Default", line.ColorLabel)

	rec = s.do(t, http.MethodPatch, "/api/v1/cart/items/2", session, `{"delta":-1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[response.CartResponse](t, rec).Empty)
}

func TestCart_Clear(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	rec := s.do(t, http.MethodDelete, "/api/v1/cart", session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[response.ClearCartResponse](t, rec)
	assert.Equal(t, "Your Cart", res.Notice.Title)
	assert.Equal(t, "Your cart is already empty.", res.Notice.Message)

	s.do(t, http.MethodPost, "/api/v1/cart/items", session, `{"index":0}`)

	rec = s.do(t, http.MethodDelete, "/api/v1/cart", session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[response.ClearCartResponse](t, rec)
	assert.Equal(t, "Cart Cleared", res.Notice.Title)
	assert.True(t, res.Cart.Empty)

	rec = s.do(t, http.MethodGet, "/api/v1/cart", session, "")
	assert.True(t, decode[response.CartResponse](t, rec).Empty)
}

func TestCart_Import(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	s.do(t, http.MethodPost, "/api/v1/cart/items", session, `{"index":0}`)

	// 브라우저 형식 그대로 가져오며 기존 장바구니를 대체한다
	rec := s.do(t, http.MethodPost, "/api/v1/cart/import", session,
		`[{"index":2,"name":"Candle","no":"CR-303","price":"5","bulkPrice":"4","quantity":3,"color":null},{"name":"broken","quantity":1}]`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[response.CartResponse](t, rec)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, "CR-303", res.Lines[0].ItemNumber)
	assert.Equal(t, 3, res.Lines[0].Quantity)
	assert.Equal(t, "15.000 JOD", res.Total)

	rec = s.do(t, http.MethodPost, "/api/v1/cart/import", session, `{"index":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// 주문
// =============================================================================

func TestCheckout(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	rec := s.do(t, http.MethodPost, "/api/v1/checkout", session, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	notice := decode[response.NoticeResponse](t, rec)
	assert.Equal(t, "Cart is Empty", notice.Title)

	s.do(t, http.MethodPost, "/api/v1/cart/items", session, `{"index":0}`)

	rec = s.do(t, http.MethodPost, "/api/v1/checkout", session, "")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[response.CheckoutResponse](t, rec)
	assert.Contains(t, res.Message, "Aquarium Lamp")
	assert.Contains(t, res.Message, "CR-101")
	assert.True(t, strings.HasPrefix(res.DeepLink, "https://wa.me/"+testPhone+"?text="))
	assert.Equal(t, "10.000 JOD", res.Total)

	// 주문 후에도 장바구니는 유지된다
	rec = s.do(t, http.MethodGet, "/api/v1/cart", session, "")
	assert.False(t, decode[response.CartResponse](t, rec).Empty)
}

func TestCheckout_세개_담고_비운_뒤_주문하면_빈_장바구니_안내(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	for _, body := range []string{`{"index":0,"color":"Red"}`, `{"index":0,"color":"Blue"}`, `{"index":2}`} {
		rec := s.do(t, http.MethodPost, "/api/v1/cart/items", session, body)
		require.Equal(t, http.StatusOK, rec.Code, body)
	}
	rec := s.do(t, http.MethodGet, "/api/v1/cart", session, "")
	require.Len(t, decode[response.CartResponse](t, rec).Lines, 3)

	rec = s.do(t, http.MethodDelete, "/api/v1/cart", session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := decode[response.ClearCartResponse](t, rec)
	assert.Equal(t, "Cart Cleared", cleared.Notice.Title)
	assert.True(t, cleared.Cart.Empty)

	rec = s.do(t, http.MethodPost, "/api/v1/checkout", session, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	notice := decode[response.NoticeResponse](t, rec)
	assert.Equal(t, "Cart is Empty", notice.Title)
	assert.Equal(t, "Please add some items to your cart before proceeding to checkout.", notice.Message)
}

// =============================================================================
// 언어 설정
// =============================================================================

func TestLanguage(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	session := uuid.NewString()

	rec := s.do(t, http.MethodGet, "/api/v1/session/language", session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", decode[response.LanguageResponse](t, rec).Lang)

	rec = s.do(t, http.MethodPut, "/api/v1/session/language", session, `{"lang":"ar"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[response.LanguageResponse](t, rec)
	assert.Equal(t, "ar", res.Lang)
	assert.Equal(t, "rtl", res.Dir)
	assert.Equal(t, "سلة التسوق", res.Messages.CartTitle)

	// 저장된 언어가 이후 요청에 적용된다
	rec = s.do(t, http.MethodGet, "/api/v1/catalog", session, "")
	assert.Equal(t, "ar", decode[response.CatalogResponse](t, rec).Lang)

	// lang 쿼리는 이번 요청에만 적용된다
	rec = s.do(t, http.MethodGet, "/api/v1/catalog?lang=en", session, "")
	assert.Equal(t, "en", decode[response.CatalogResponse](t, rec).Lang)
	rec = s.do(t, http.MethodGet, "/api/v1/session/language", session, "")
	assert.Equal(t, "ar", decode[response.LanguageResponse](t, rec).Lang)

	rec = s.do(t, http.MethodPut, "/api/v1/session/language", session, `{"lang":"fr"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
