package response

import "github.com/darkkaiser/rarities-store/internal/catalog/i18n"

// LanguageResponse 언어 설정과 해당 언어의 화면 문구
type LanguageResponse struct {
	Lang     string        `json:"lang" example:"ar"`
	Dir      string        `json:"dir" example:"rtl"`
	Messages i18n.Messages `json:"messages"`
}
