package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Lang
		wantOK bool
	}{
		{"en", English, true},
		{"ar", Arabic, true},
		{" AR ", Arabic, true},
		{"fr", English, false},
		{"", English, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseLang(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestLang_ToggleAndDir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Arabic, English.Toggle())
	assert.Equal(t, English, Arabic.Toggle())
	assert.Equal(t, "rtl", Arabic.Dir())
	assert.Equal(t, "ltr", English.Dir())
}

func TestFor_모든_문구가_채워져_있다(t *testing.T) {
	t.Parallel()

	for _, l := range []Lang{English, Arabic} {
		m := For(l)
		assert.NotEmpty(t, m.WhatsAppOrderHeader)
		assert.NotEmpty(t, m.CartAlreadyEmptyMsg)
		assert.NotEmpty(t, m.DefaultColor)
		assert.NotEmpty(t, m.NoPreview)
	}
	assert.Equal(t, "*Creative Rarities Store - طلب جديد*", For(Arabic).WhatsAppOrderHeader)
	assert.Equal(t, "Default", For("xx").DefaultColor)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "مصباح", DisplayName(Arabic, "Lamp", "مصباح"))
	assert.Equal(t, "Lamp", DisplayName(Arabic, "Lamp", "  "))
	assert.Equal(t, "Lamp", DisplayName(English, "Lamp", "مصباح"))
}

func TestTierNote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(Applied Wholesale Price for >= 25 qty)", TierNote(English, true))
	assert.Equal(t, "(Applied Retail Price for < 25 qty)", TierNote(English, false))
}

func TestValueTranslations(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "عالم الحشرات", Collection(Arabic, "Bug World"))
	assert.Equal(t, "Bug World", Collection(English, "Bug World"))
	assert.Equal(t, "Unknown Collection", Collection(Arabic, "Unknown Collection"))
	assert.Equal(t, "أصحاب القطط", TargetMarket(Arabic, "Cat Owners"))
	assert.Equal(t, "تجهيزات الحفلات / إكسسوارات التنكر", Category(Arabic, "Party Favors / Costume Accessories"))

	colors := []string{"Black", " Gold ", "Teal"}
	assert.Equal(t, []string{"أسود", "ذهبي", "Teal"}, Colors(Arabic, colors))
	assert.Equal(t, []string{"Black", " Gold ", "Teal"}, colors)
}

func TestDimensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10 × 20 × 30 مم", Dimensions(Arabic, "10x20x30"))
	assert.Equal(t, "W: 5 × 6 × 7 مم", Dimensions(Arabic, "W: 5 * 6 * 7"))
	assert.Equal(t, "10x20x30", Dimensions(English, "10x20x30"))
	assert.Equal(t, "about 10cm", Dimensions(Arabic, "about 10cm"))
}

func TestDescription(t *testing.T) {
	t.Parallel()

	t.Run("번역표 일치", func(t *testing.T) {
		t.Parallel()

		for en, ar := range arabicDescriptions {
			assert.Equal(t, ar, Description(Arabic, "  "+en+"\n"))
		}
	})

	t.Run("템플릿 치환", func(t *testing.T) {
		t.Parallel()

		in := "Expertly designed for Cat Owners, this high-quality accessory provides hours of entertainment and comfort for your feline friend. Easy to use and clean, it combines functionality with a sleek aesthetic."
		want := "تم تصميمه باحتراف لـ أصحاب القطط، ويوفر هذا الملحق عالي الجودة ساعات من الترفيه والراحة لصديقك القط. سهل الاستخدام والتنظيف، ويجمع بين الوظيفة والجمال الأنيق."
		assert.Equal(t, want, Description(Arabic, in))
	})

	t.Run("치수 문장", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "الأبعاد: 10 × 20 × 30 مم مم.", Description(Arabic, "Dimensions: 10x20x30."))
	})

	t.Run("영어는 그대로", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Dimensions: 10x20x30.", Description(English, "Dimensions: 10x20x30."))
	})
}
