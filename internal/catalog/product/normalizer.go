package product

import (
	"strconv"
	"strings"

	"github.com/darkkaiser/rarities-store/internal/catalog/schema"
	"github.com/darkkaiser/rarities-store/internal/catalog/textnorm"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/darkkaiser/rarities-store/pkg/maputil"
)

const component = "catalog.product"

// record ColumnMap으로 투영된 행을 디코딩한 중간 레코드입니다.
// 원본 행의 느슨한 형태는 이 패키지 밖으로 나가지 않습니다.
type record struct {
	Name             string   `json:"name"`
	ItemNumber       string   `json:"itemNumber"`
	Image            string   `json:"image"`
	DocumentLink     string   `json:"documentLink"`
	RetailPrice      string   `json:"retailPrice"`
	WholesalePrice   string   `json:"wholesalePrice"`
	Price            string   `json:"price"`
	Category         string   `json:"category"`
	ArabicName       string   `json:"arabicName"`
	Description      string   `json:"description"`
	Dimensions       string   `json:"dimensions"`
	Collection       string   `json:"collection"`
	TargetMarket     string   `json:"targetMarket"`
	BulkDiscountText string   `json:"bulkDiscountText"`
	Availability     string   `json:"availability"`
	Hidden           string   `json:"hidden"`
	Colors           []string `json:"colors"`
}

// Normalizer 하나의 ColumnMap을 기준으로 행들을 Product로 변환합니다.
type Normalizer struct {
	columns schema.ColumnMap
}

// NewNormalizer 헤더 해석 결과로 Normalizer를 생성합니다.
func NewNormalizer(columns schema.ColumnMap) *Normalizer {
	return &Normalizer{columns: columns}
}

// Normalize 한 행을 Product로 변환합니다. 상품명이 비어 있으면 false를 반환합니다.
// index는 원본 시트에서의 데이터 행 위치(0부터)이며 SequenceIndex가 됩니다.
func (n *Normalizer) Normalize(row RawRow, index int) (Product, bool) {
	rec, err := maputil.Decode[record](n.columns.Project(row))
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"index": index,
			"error": err,
		}).Warn("행 디코딩 실패: 해당 행을 건너뜁니다")
		return Product{}, false
	}

	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return Product{}, false
	}

	p := Product{
		Name:             name,
		ItemNumber:       strings.TrimSpace(rec.ItemNumber),
		ImageRef:         strings.TrimSpace(rec.Image),
		DocumentLink:     strings.TrimSpace(rec.DocumentLink),
		RetailPrice:      strings.TrimSpace(rec.RetailPrice),
		WholesalePrice:   strings.TrimSpace(rec.WholesalePrice),
		Category:         strings.TrimSpace(rec.Category),
		ArabicName:       strings.TrimSpace(rec.ArabicName),
		Description:      strings.TrimSpace(rec.Description),
		Dimensions:       strings.TrimSpace(rec.Dimensions),
		Collection:       strings.TrimSpace(rec.Collection),
		TargetMarket:     strings.TrimSpace(rec.TargetMarket),
		BulkDiscountText: strings.TrimSpace(rec.BulkDiscountText),
		Availability:     strings.TrimSpace(rec.Availability),
		Hidden:           strings.EqualFold(strings.TrimSpace(rec.Hidden), "yes"),
		Colors:           rec.Colors,
		SequenceIndex:    index,
	}

	if p.ItemNumber == "" {
		p.ItemNumber = "ITEM-" + strconv.Itoa(index+1)
	}
	if p.RetailPrice == "" {
		p.RetailPrice = strings.TrimSpace(rec.Price)
	}
	if p.Availability == "" {
		p.Availability = "Yes"
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}

	p.DiscountPercent = discountPercent(p.RetailPrice, p.WholesalePrice)
	p.SearchKey = SearchKey{
		NormalizedName:       textnorm.Lower(p.Name),
		NormalizedArabicName: textnorm.NormalizeArabic(p.ArabicName),
		NormalizedItemNumber: textnorm.Lower(p.ItemNumber),
		NormalizedCategory:   textnorm.Lower(p.Category),
		NormalizedPrice:      textnorm.Lower(p.RetailPrice),
	}

	return p, true
}

// NormalizeAll 모든 행을 변환한 뒤 숨김 상품과 이름 없는 행을 제외하고,
// 최근에 추가된 행이 먼저 오도록 순서를 뒤집어 반환합니다.
func (n *Normalizer) NormalizeAll(rows []RawRow) []Product {
	products := make([]Product, 0, len(rows))
	var hidden, discarded int

	for i, row := range rows {
		p, ok := n.Normalize(row, i)
		switch {
		case !ok:
			discarded++
		case p.Hidden:
			hidden++
		default:
			products = append(products, p)
		}
	}

	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"rows":      len(rows),
		"visible":   len(products),
		"hidden":    hidden,
		"discarded": discarded,
	}).Debug("상품 정규화 완료")

	return products
}
