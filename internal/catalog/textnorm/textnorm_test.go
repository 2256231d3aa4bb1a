package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArabic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"알리프 변형 통일", "أإآ", "ااا"},
		{"타 마르부타", "مكتبة", "مكتبه"},
		{"알리프 막수라", "مستشفى", "مستشفي"},
		{"발음 부호 제거", "مَكْتَبَةٌ", "مكْتبه"},
		{"샷다 제거", "سُكَّر", "سكر"},
		{"라틴 문자 소문자화 및 공백 제거", "  Aquarium LAMP ", "aquarium lamp"},
		{"빈 문자열", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeArabic(tt.in))
		})
	}
}

func TestNormalizeArabic_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"حَوْضُ سَمَكٍ",
		"إضاءة أكواريوم",
		"  Mixed مَزيج Text  ",
		"ىىىةةة",
		"",
	}

	for _, in := range inputs {
		once := NormalizeArabic(in)
		assert.Equal(t, once, NormalizeArabic(once), "input=%q", in)
	}
}
