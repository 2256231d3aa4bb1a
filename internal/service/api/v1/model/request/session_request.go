package request

// LanguageRequest 언어 설정 변경 요청
type LanguageRequest struct {
	Lang string `json:"lang" validate:"required,oneof=en ar" example:"ar"`
}
