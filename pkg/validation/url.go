package validation

import (
	"fmt"
	"net/url"
)

// ValidateURL http 또는 https 스키마와 호스트를 가진 절대 URL인지 검증합니다.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("잘못된 URL 형식입니다 (url=%q): %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL은 http 또는 https 스키마를 사용해야 합니다 (url=%q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL에 호스트가 없습니다 (url=%q)", raw)
	}
	return nil
}

// ValidatePhoneNumber 국가 코드를 포함한 숫자만으로 이루어진 전화번호(8-15자리)인지 검증합니다.
// 메시징 딥 링크는 '+' 기호나 구분자를 허용하지 않습니다.
func ValidatePhoneNumber(phone string) error {
	if len(phone) < 8 || len(phone) > 15 {
		return fmt.Errorf("전화번호는 8-15자리여야 합니다 (phone=%q)", phone)
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("전화번호는 숫자만 포함해야 합니다 (phone=%q)", phone)
		}
	}
	return nil
}
