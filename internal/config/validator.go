package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/darkkaiser/rarities-store/pkg/validation"
	"github.com/go-playground/validator/v10"
)

var (
	// 텔레그램 봇 토큰 검증을 위한 정규식 (예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
	telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)
)

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 이름을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validations := map[string]validator.Func{
		"cors_origin":        validateCORSOrigin,
		"cron_spec":          validateCronSpec,
		"telegram_bot_token": validateTelegramBotToken,
		"source_url":         validateSourceURL,
		"phone_number":       validatePhoneNumber,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return validation.ValidateCronExpression(fl.Field().String()) == nil
}

func validateTelegramBotToken(fl validator.FieldLevel) bool {
	return telegramBotTokenRegex.MatchString(fl.Field().String())
}

func validateSourceURL(fl validator.FieldLevel) bool {
	return validation.ValidateURL(fl.Field().String()) == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return validation.ValidatePhoneNumber(fl.Field().String()) == nil
}

func newInvalidInput(message string) error {
	return apperrors.New(apperrors.InvalidInput, message)
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 오류를 사용자 친화적인 도메인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]

	switch firstErr.StructField() {
	case "SourceURL":
		return newInvalidInput(fmt.Sprintf("카탈로그 원본 URL(source_url)은 http 또는 https 절대 URL이어야 합니다: '%v'", firstErr.Value()))
	case "WholesaleThreshold":
		return newInvalidInput(fmt.Sprintf("도매가 적용 기준 수량(wholesale_threshold)은 1 이상이어야 합니다: '%v'", firstErr.Value()))
	case "MaxRetries":
		return newInvalidInput(fmt.Sprintf("HTTP 최대 재시도 횟수(max_retries)는 0에서 10 사이여야 합니다: '%v'", firstErr.Value()))
	case "RetryDelay":
		return newInvalidInput(fmt.Sprintf("HTTP 재시도 대기 시간(retry_delay)은 0보다 커야 합니다: '%v'", firstErr.Value()))
	case "ListenPort":
		return newInvalidInput("웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "WhatsAppPhone":
		return newInvalidInput(fmt.Sprintf("WhatsApp 번호(whatsapp_phone)는 국가 코드를 포함한 8-15자리 숫자여야 합니다: '%v'", firstErr.Value()))
	case "Driver":
		return newInvalidInput(fmt.Sprintf("저장소 드라이버(driver)는 'file' 또는 'sqlite'여야 합니다: '%v'", firstErr.Value()))
	case "ChatID":
		return newInvalidInput("텔레그램 알림 활성화 시 채팅 ID(chat_id)는 필수입니다")
	}

	switch firstErr.Tag() {
	case "cors_origin":
		return newInvalidInput(fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", firstErr.Value()))
	case "cron_spec":
		return newInvalidInput(fmt.Sprintf("Cron 표현식(time_spec)이 올바르지 않습니다: '%v' (초 단위를 포함한 6필드 형식)", firstErr.Value()))
	case "telegram_bot_token":
		return newInvalidInput("텔레그램 BotToken 형식이 올바르지 않습니다 (올바른 형식: 123456:ABC-DEF...)")
	case "required", "required_if":
		return newInvalidInput(fmt.Sprintf("%s의 필수 설정(%s)이 비어 있습니다", contextName, firstErr.Field()))
	}

	return newInvalidInput(fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
}
