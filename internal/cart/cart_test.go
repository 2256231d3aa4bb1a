package cart

import (
	"math"
	"testing"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(index int, itemNumber string, colors ...string) product.Product {
	return product.Product{
		Name:           "Product " + itemNumber,
		ItemNumber:     itemNumber,
		RetailPrice:    "5.000",
		WholesalePrice: "4.000",
		Availability:   "Yes",
		Colors:         colors,
		SequenceIndex:  index,
	}
}

// ====================================================================================================
// 상태 전이
// ====================================================================================================

func TestCart_Add(t *testing.T) {
	t.Parallel()

	t.Run("처음 담으면 수량 1", func(t *testing.T) {
		t.Parallel()

		c := New(0)
		require.NoError(t, c.Add(newProduct(3, "X-1"), ""))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].ProductRef)
		assert.Equal(t, "X-1", lines[0].ItemNumber)
		assert.Equal(t, 1, lines[0].Quantity)
		assert.Empty(t, lines[0].Color)
	})

	t.Run("같은 상품과 색상은 수량 증가", func(t *testing.T) {
		t.Parallel()

		c := New(0)
		p := newProduct(3, "X-1", "Red", "Blue")
		require.NoError(t, c.Add(p, "Blue"))
		require.NoError(t, c.Add(p, "Blue"))
		require.NoError(t, c.Add(p, "Red"))

		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 3, c.TotalQuantity())
		assert.Equal(t, 2, c.Lines()[0].Quantity)
	})

	t.Run("색상 미선택시 첫 색상", func(t *testing.T) {
		t.Parallel()

		c := New(0)
		p := newProduct(1, "X-2", "Green", "Black")
		require.NoError(t, c.Add(p, ""))
		require.NoError(t, c.Add(p, "Green"))

		require.Equal(t, 1, c.Len())
		assert.Equal(t, "Green", c.Lines()[0].Color)
		assert.Equal(t, 2, c.Lines()[0].Quantity)
	})

	t.Run("품절 상품 거부", func(t *testing.T) {
		t.Parallel()

		c := New(0)
		p := newProduct(1, "X-3")
		p.Availability = " NO "

		err := c.Add(p, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfStock)
		assert.True(t, apperrors.Is(err, apperrors.Conflict))
		assert.Zero(t, c.Len())
	})
}

func TestCart_ChangeQuantity(t *testing.T) {
	t.Parallel()

	c := New(0)
	p := newProduct(0, "X-1", "Red")
	require.NoError(t, c.Add(p, "Red"))

	assert.True(t, c.ChangeQuantity(0, "Red", 4))
	assert.Equal(t, 5, c.TotalQuantity())

	assert.True(t, c.ChangeQuantity(0, "Red", -2))
	assert.Equal(t, 3, c.TotalQuantity())

	assert.False(t, c.ChangeQuantity(0, "Blue", 1), "없는 항목")
	assert.False(t, c.ChangeQuantity(9, "Red", 1), "없는 상품")

	assert.True(t, c.ChangeQuantity(0, "Red", -3))
	assert.Zero(t, c.Len(), "수량이 0이 되면 제거")
}

func TestCart_Remove(t *testing.T) {
	t.Parallel()

	c := New(0)
	p := newProduct(0, "X-1", "Red", "Blue")
	require.NoError(t, c.Add(p, "Red"))
	require.NoError(t, c.Add(p, "Blue"))

	assert.True(t, c.Remove(0, "Red"))
	assert.False(t, c.Remove(0, "Red"))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Blue", c.Lines()[0].Color)
}

func TestCart_Clear(t *testing.T) {
	t.Parallel()

	c := New(0)
	assert.True(t, c.Clear(), "빈 장바구니")

	require.NoError(t, c.Add(newProduct(0, "A"), ""))
	require.NoError(t, c.Add(newProduct(1, "B"), ""))
	require.NoError(t, c.Add(newProduct(2, "C"), ""))

	assert.False(t, c.Clear())
	assert.Zero(t, c.Len())
	assert.True(t, c.Quote().Empty())
}

func TestCart_Lines_복사본을_반환한다(t *testing.T) {
	t.Parallel()

	c := New(0)
	require.NoError(t, c.Add(newProduct(0, "A"), ""))

	lines := c.Lines()
	lines[0].Quantity = 100

	assert.Equal(t, 1, c.TotalQuantity())
}

func TestNew_중복_항목과_잘못된_수량을_정리한다(t *testing.T) {
	t.Parallel()

	c := New(-1,
		Line{ProductRef: 1, ItemNumber: "A", Color: "Red", Quantity: 2},
		Line{ProductRef: 1, ItemNumber: "A", Color: "Red", Quantity: 3},
		Line{ProductRef: 2, ItemNumber: "B", Quantity: 0},
	)

	assert.Equal(t, DefaultWholesaleThreshold, c.Threshold())
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 5, c.Lines()[0].Quantity)
}

// ====================================================================================================
// 수량 변경 후 가격 재계산
// ====================================================================================================

func TestCart_Quote_수량_변경이_구간을_다시_결정한다(t *testing.T) {
	t.Parallel()

	c := New(DefaultWholesaleThreshold)
	p := newProduct(0, "X-1", "Red", "Blue")
	other := newProduct(1, "Y-1")
	require.NoError(t, c.Add(p, "Red"))
	require.NoError(t, c.Add(p, "Blue"))
	require.NoError(t, c.Add(other, ""))
	c.ChangeQuantity(0, "Red", 14)  // 15
	c.ChangeQuantity(0, "Blue", 10) // 11

	q := c.Quote()
	assert.Equal(t, TierWholesale, q.Lines[0].Tier)
	assert.Equal(t, TierWholesale, q.Lines[1].Tier)
	assert.Equal(t, TierRetail, q.Lines[2].Tier)
	assert.Equal(t, "109.000", q.Total.StringFixed(3))

	c.ChangeQuantity(0, "Blue", -2) // 합계 24

	q = c.Quote()
	assert.Equal(t, TierRetail, q.Lines[0].Tier)
	assert.Equal(t, TierRetail, q.Lines[1].Tier)
	assert.Equal(t, "75.000", q.Lines[0].Subtotal.StringFixed(3))
	assert.Equal(t, "45.000", q.Lines[1].Subtotal.StringFixed(3))
	assert.Equal(t, "5.000", q.Lines[2].Subtotal.StringFixed(3))
	assert.Equal(t, "125.000", q.Total.StringFixed(3))
}

// ====================================================================================================
// 수량 상한
// ====================================================================================================

func TestCart_QuantityIsCapped(t *testing.T) {
	t.Parallel()

	t.Run("가져온 항목의 과도한 수량은 합산 전에 제한된다", func(t *testing.T) {
		t.Parallel()

		lines, err := Decode([]byte(`[
			{"index":0,"no":"X","price":"5.000","bulkPrice":"4.000","color":"Red","quantity":9223372036854775807},
			{"index":0,"no":"X","price":"5.000","bulkPrice":"4.000","color":"Red","quantity":5},
			{"index":0,"no":"X","price":"5.000","bulkPrice":"4.000","color":"Blue","quantity":1}
		]`))
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Equal(t, MaxLineQuantity, lines[0].Quantity)

		c := New(0, lines...)
		require.Equal(t, 2, c.Len())
		assert.Equal(t, MaxLineQuantity, c.Lines()[0].Quantity)
		assert.Equal(t, MaxLineQuantity+1, c.TotalQuantity())

		q := c.Quote()
		assert.Equal(t, MaxLineQuantity+1, q.TotalQuantity)
		for _, l := range q.Lines {
			assert.Equal(t, TierWholesale, l.Tier)
			assert.Equal(t, MaxLineQuantity+1, l.ItemQuantity)
			assert.True(t, l.Subtotal.IsPositive())
		}
	})

	t.Run("ChangeQuantity와 Add는 상한을 넘지 않는다", func(t *testing.T) {
		t.Parallel()

		c := New(0)
		p := newProduct(0, "X-1")
		require.NoError(t, c.Add(p, ""))

		assert.True(t, c.ChangeQuantity(0, "", math.MaxInt))
		assert.Equal(t, MaxLineQuantity, c.TotalQuantity())

		require.NoError(t, c.Add(p, ""))
		assert.Equal(t, MaxLineQuantity, c.TotalQuantity())

		assert.True(t, c.ChangeQuantity(0, "", math.MinInt))
		assert.Zero(t, c.Len())
	})

	t.Run("수량 합계는 int 범위에서 멈춘다", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, math.MaxInt, addQuantity(math.MaxInt, 1))
		assert.Equal(t, 7, addQuantity(3, 4))

		q := PriceCart([]Line{
			{ItemNumber: "X", RetailPrice: "1.000", Quantity: math.MaxInt},
			{ItemNumber: "X", RetailPrice: "1.000", Quantity: 1},
		}, DefaultWholesaleThreshold)
		assert.Equal(t, math.MaxInt, q.TotalQuantity)
		assert.Equal(t, math.MaxInt, q.Lines[0].ItemQuantity)
	})
}
