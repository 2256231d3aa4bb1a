package handler

import (
	"github.com/darkkaiser/rarities-store/internal/cart"
	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	"github.com/darkkaiser/rarities-store/internal/catalog/media"
	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/darkkaiser/rarities-store/internal/catalog/view"
	"github.com/darkkaiser/rarities-store/internal/checkout"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/response"
)

// newCard 상품을 lang 언어의 화면용 카드로 변환합니다.
func newCard(p product.Product, lang i18n.Lang) response.Card {
	m := i18n.For(lang)

	colors := make([]response.ColorOption, 0, len(p.Colors))
	for _, c := range p.Colors {
		colors = append(colors, response.ColorOption{Value: c, Label: i18n.Color(lang, c)})
	}

	return response.Card{
		Index:       p.SequenceIndex,
		Name:        i18n.DisplayName(lang, p.Name, p.ArabicName),
		EnglishName: p.Name,
		ArabicName:  p.ArabicName,
		ItemNumber:  p.ItemNumber,

		Category:     i18n.Category(lang, p.Category),
		Collection:   i18n.Collection(lang, p.Collection),
		TargetMarket: i18n.TargetMarket(lang, p.TargetMarket),
		Dimensions:   i18n.Dimensions(lang, p.Dimensions),
		Description:  i18n.Description(lang, p.Description),

		RetailPrice:      p.RetailPrice,
		WholesalePrice:   p.WholesalePrice,
		DiscountPercent:  p.DiscountPercent,
		BulkDiscountText: p.BulkDiscountText,

		Available: p.Available(),
		Colors:    colors,

		DocumentLink: p.DocumentLink,
		Image:        media.ImageSources(p, m.NoPreview),
	}
}

func newCards(products []product.Product, lang i18n.Lang) []response.Card {
	cards := make([]response.Card, len(products))
	for i, p := range products {
		cards[i] = newCard(p, lang)
	}
	return cards
}

// newCategoryOptions 전체(all) 항목을 맨 앞에 두고 카테고리 선택지를 만듭니다.
func newCategoryOptions(categories []string, lang i18n.Lang) []response.CategoryOption {
	options := make([]response.CategoryOption, 0, len(categories)+1)
	options = append(options, response.CategoryOption{Value: view.CategoryAll, Label: i18n.For(lang).AllCategories})
	for _, c := range categories {
		options = append(options, response.CategoryOption{Value: c, Label: i18n.Category(lang, c)})
	}
	return options
}

// newCartResponse 장바구니 가격 계산 결과를 화면용 응답으로 변환합니다.
func (h *Handler) newCartResponse(q cart.Quote, lang i18n.Lang) response.CartResponse {
	m := i18n.For(lang)

	lines := make([]response.CartLine, 0, len(q.Lines))
	for _, l := range q.Lines {
		colorLabel := m.DefaultColor
		if l.Color != "" {
			colorLabel = i18n.Color(lang, l.Color)
		}

		lines = append(lines, response.CartLine{
			Index:      l.ProductRef,
			Name:       l.Name,
			ItemNumber: l.ItemNumber,
			Color:      l.Color,
			ColorLabel: colorLabel,
			Thumbnail:  media.ThumbnailURL(l.ImageRef),

			Quantity:     l.Quantity,
			ItemQuantity: l.ItemQuantity,
			Tier:         string(l.Tier),
			TierNote:     i18n.TierNote(lang, l.Tier == cart.TierWholesale),
			UnitPrice:    checkout.FormatMoney(l.UnitPrice, h.cfg.Currency),
			Subtotal:     checkout.FormatMoney(l.Subtotal, h.cfg.Currency),
		})
	}

	return response.CartResponse{
		Lang:          string(lang),
		Lines:         lines,
		TotalQuantity: q.TotalQuantity,
		Threshold:     q.Threshold,
		Total:         checkout.FormatMoney(q.Total, h.cfg.Currency),
		Empty:         q.Empty(),
	}
}
