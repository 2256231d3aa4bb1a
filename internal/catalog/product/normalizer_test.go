package product

import (
	"strconv"
	"testing"

	"github.com/darkkaiser/rarities-store/internal/catalog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func newTestNormalizer(t *testing.T, headers ...string) *Normalizer {
	t.Helper()

	columns, err := schema.Resolve(headers)
	require.NoError(t, err)
	return NewNormalizer(columns)
}

// =============================================================================
// 단일 행 변환
// =============================================================================

func TestNormalize_FullRow(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(t, "Item No.", "Product Name", "Arabic Name", "Category", "Price (<25)", "Price (>=25)", "Available", "Hidden", "Colors")

	p, ok := n.Normalize(RawRow{
		"Item No.":     " CR-101 ",
		"Product Name": "Aquarium Lamp",
		"Arabic Name":  "مصباح أكواريوم",
		"Category":     "Lighting",
		"Price (<25)":  "10.000",
		"Price (>=25)": "7.000",
		"Available":    "",
		"Hidden":       "no",
		"Colors":       "Red, Blue,, ",
	}, 4)

	require.True(t, ok)
	assert.Equal(t, "Aquarium Lamp", p.Name)
	assert.Equal(t, "CR-101", p.ItemNumber)
	assert.Equal(t, "10.000", p.RetailPrice)
	assert.Equal(t, "7.000", p.WholesalePrice)
	require.NotNil(t, p.DiscountPercent)
	assert.Equal(t, 30, *p.DiscountPercent)
	assert.Equal(t, "Yes", p.Availability)
	assert.True(t, p.Available())
	assert.False(t, p.Hidden)
	assert.Equal(t, []string{"Red", "Blue"}, p.Colors)
	assert.Equal(t, "Red", p.DefaultColor())
	assert.Equal(t, 4, p.SequenceIndex)

	assert.Equal(t, SearchKey{
		NormalizedName:       "aquarium lamp",
		NormalizedArabicName: "مصباح اكواريوم",
		NormalizedItemNumber: "cr-101",
		NormalizedCategory:   "lighting",
		NormalizedPrice:      "10.000",
	}, p.SearchKey)
}

func TestNormalize_Defaults(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(t, "Name", "Price")

	p, ok := n.Normalize(RawRow{"Name": "Coral Stone", "Price": "3.5"}, 9)

	require.True(t, ok)
	assert.Equal(t, "ITEM-10", p.ItemNumber)
	assert.Equal(t, "3.5", p.RetailPrice)
	assert.Empty(t, p.WholesalePrice)
	assert.Nil(t, p.DiscountPercent)
	assert.Equal(t, "Yes", p.Availability)
	assert.Empty(t, p.Colors)
	assert.NotNil(t, p.Colors)
}

func TestNormalize_GenericPriceFallback(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(t, "Name", "Retail", "Unit Cost")

	p, ok := n.Normalize(RawRow{"Name": "Shell", "Retail": " ", "Unit Cost": "2.250"}, 0)
	require.True(t, ok)
	assert.Equal(t, "2.250", p.RetailPrice)

	p, ok = n.Normalize(RawRow{"Name": "Shell", "Retail": "3.000", "Unit Cost": "2.250"}, 0)
	require.True(t, ok)
	assert.Equal(t, "3.000", p.RetailPrice)
}

func TestNormalize_MalformedValuesDoNotDiscard(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(t, "Name", "Retail Price", "Wholesale Price", "Availability")

	p, ok := n.Normalize(RawRow{"Name": "Driftwood", "Retail Price": "ask", "Wholesale Price": "??", "Availability": "No"}, 1)

	require.True(t, ok)
	assert.Nil(t, p.DiscountPercent)
	_, parsed := p.RetailAmount()
	assert.False(t, parsed)
	assert.False(t, p.Available())
}

func TestNormalize_HiddenIsCaseInsensitiveYes(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(t, "Name", "Hidden")

	for in, want := range map[string]bool{"YES": true, " yes ": true, "Yes": true, "y": false, "true": false, "": false} {
		p, ok := n.Normalize(RawRow{"Name": "x", "Hidden": in}, 0)
		require.True(t, ok)
		assert.Equal(t, want, p.Hidden, "hidden=%q", in)
	}
}

// =============================================================================
// 전체 변환
// =============================================================================

func TestNormalizeAll_FiltersAndReverses(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(t, "Product Name", "Category", "Hidden")

	rows := []RawRow{
		{"Product Name": "First", "Category": "A"},
		{"Product Name": "", "Category": "A"},
		{"Product Name": "Secret", "Hidden": "Yes"},
		{"Product Name": "   ", "Category": "B"},
		{"Product Name": "Last", "Category": "B"},
	}

	got := n.NormalizeAll(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "Last", got[0].Name)
	assert.Equal(t, 4, got[0].SequenceIndex)
	assert.Equal(t, "First", got[1].Name)
	assert.Equal(t, 0, got[1].SequenceIndex)
}

func TestNormalizeAll_SequenceIndexUnique(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(t, "Name")

	rows := make([]RawRow, 50)
	for i := range rows {
		rows[i] = RawRow{"Name": "P" + strconv.Itoa(i)}
	}

	seen := map[int]bool{}
	for _, p := range n.NormalizeAll(rows) {
		assert.False(t, seen[p.SequenceIndex])
		seen[p.SequenceIndex] = true
	}
	assert.Len(t, seen, 50)
}
