package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/rarities-store/internal/catalog/source"
	"github.com/darkkaiser/rarities-store/internal/fetcher"
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Parse
// =============================================================================

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("헤더와 데이터 행", func(t *testing.T) {
		t.Parallel()

		csv := "Product Name , Price\nVase,12.5\n\n,\nLamp,\"1,200\"\n"
		sheet, err := source.Parse(strings.NewReader(csv))
		require.NoError(t, err)

		assert.Equal(t, []string{"Product Name", "Price"}, sheet.Headers)
		require.Len(t, sheet.Rows, 2)
		assert.Equal(t, "Vase", sheet.Rows[0]["Product Name"])
		assert.Equal(t, "1,200", sheet.Rows[1]["Price"])
	})

	t.Run("필드 수가 부족한 행은 빈 값으로 채움", func(t *testing.T) {
		t.Parallel()

		sheet, err := source.Parse(strings.NewReader("Name,Price,Category\nVase\n"))
		require.NoError(t, err)
		require.Len(t, sheet.Rows, 1)
		assert.Equal(t, "", sheet.Rows[0]["Category"])
		assert.Contains(t, sheet.Rows[0], "Price")
	})

	t.Run("데이터 없음", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"", "Name,Price\n", "Name,Price\n,\n\n"} {
			_, err := source.Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, source.ErrNoData, "input=%q", in)
			assert.Contains(t, source.ErrNoData.Error(), "No data found in the spreadsheet.")
		}
	})
}

// =============================================================================
// SheetLoader
// =============================================================================

func newLoader(url string) *source.SheetLoader {
	f := fetcher.New(fetcher.Config{
		Timeout:       5 * time.Second,
		MinRetryDelay: time.Millisecond,
		MaxRetryDelay: time.Millisecond,
	})
	return source.NewSheetLoader(f, url)
}

func TestSheetLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("CSV 적재", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			_, _ = w.Write([]byte("Name,Arabic Name\nVase,مزهرية\n"))
		}))
		defer srv.Close()

		sheet, err := newLoader(srv.URL).Load(context.Background())
		require.NoError(t, err)
		require.Len(t, sheet.Rows, 1)
		assert.Equal(t, "مزهرية", sheet.Rows[0]["Arabic Name"])
	})

	t.Run("HTML 페이지 응답", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<!DOCTYPE html><html><head><title> Sign-in required </title></head><body></body></html>"))
		}))
		defer srv.Close()

		_, err := newLoader(srv.URL).Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrNotPublished)
		assert.Contains(t, err.Error(), "Sign-in required")
	})

	t.Run("HTTP 오류", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newLoader(srv.URL).Load(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))

		var statusErr *fetcher.HTTPStatusError
		assert.True(t, errors.As(err, &statusErr))
	})

	t.Run("빈 시트", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("Name,Price\n"))
		}))
		defer srv.Close()

		_, err := newLoader(srv.URL).Load(context.Background())
		assert.ErrorIs(t, err, source.ErrNoData)
	})
}
