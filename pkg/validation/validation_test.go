package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		origin string
		valid  bool
	}{
		{"*", true},
		{"https://shop.example.com", true},
		{"http://localhost:8080", true},
		{"http://127.0.0.1:3000", true},
		{"", false},
		{"https://shop.example.com/", false},
		{"ftp://shop.example.com", false},
		{"https://shop.example.com/path", false},
		{"https://shop.example.com?x=1", false},
		{"https://user@shop.example.com", false},
		{"https://shop.example.com:70000", false},
		{"https://-bad-.example.com", false},
		{"https://under_score.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateCronExpression(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCronExpression("0 */30 * * * *"))
	assert.NoError(t, ValidateCronExpression("@hourly"))
	assert.Error(t, ValidateCronExpression("*/30 * * * *"), "5필드 표현식은 허용되지 않습니다")
	assert.Error(t, ValidateCronExpression("not a cron"))
}

func TestValidateURL(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateURL("https://docs.google.com/spreadsheets/d/e/abc/pub?output=csv"))
	assert.Error(t, ValidateURL("file:///etc/passwd"))
	assert.Error(t, ValidateURL("https://"))
	assert.Error(t, ValidateURL("::"))
}

func TestValidatePhoneNumber(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePhoneNumber("962795965910"))
	assert.Error(t, ValidatePhoneNumber("+962795965910"))
	assert.Error(t, ValidatePhoneNumber("1234"))
	assert.Error(t, ValidatePhoneNumber("96279-596591"))
}
