package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Product Name", NormalizeSpaces("  Product \t  Name \n"))
	assert.Equal(t, "", NormalizeSpaces("   "))
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"Red, Blue ,Green", []string{"Red", "Blue", "Green"}},
		{"a,,  ,b", []string{"a", "b"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitAndTrim(tt.in, ","), "input=%q", tt.in)
	}
}

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", MaskSensitiveData(""))
	assert.Equal(t, "***", MaskSensitiveData("abc"))
	assert.Equal(t, "abcd***", MaskSensitiveData("abcdefgh"))
	assert.Equal(t, "1234***wxyz", MaskSensitiveData("1234567890:ABCDEFwxyz"))
}

func TestEncodeURIComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "Hello%20World"},
		{"*Lamp*\nQty: 2", "*Lamp*%0AQty%3A%202"},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
		{"(it's) ~ok!", "(it's)%20~ok!"},
		{"طلب", "%D8%B7%D9%84%D8%A8"},
		{"a|b", "a%7Cb"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeURIComponent(tt.in), "input=%q", tt.in)
	}
}
