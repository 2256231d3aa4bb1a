package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug    bool           `json:"debug"`
	Catalog  CatalogConfig  `json:"catalog"`
	Checkout CheckoutConfig `json:"checkout"`
	Storage  StorageConfig  `json:"storage"`
	Notifier NotifierConfig `json:"notifier"`
	HTTP     HTTPConfig     `json:"http"`
	Render   RenderConfig   `json:"render"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, &c.Catalog, "카탈로그(catalog)"); err != nil {
		return err
	}
	if err := checkStruct(v, &c.Checkout, "체크아웃(checkout)"); err != nil {
		return err
	}
	if err := checkStruct(v, &c.Storage, "저장소(storage)"); err != nil {
		return err
	}
	if err := checkStruct(v, &c.Notifier, "알림(notifier)"); err != nil {
		return err
	}
	if err := c.HTTP.validate(v); err != nil {
		return err
	}
	return checkStruct(v, &c.Render, "렌더링(render)")
}

// VerifyRecommendations 동작에는 문제가 없지만 권장되지 않는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	warnings := c.HTTP.VerifyRecommendations()

	if !c.Catalog.Refresh.Enabled {
		warnings = append(warnings, "카탈로그 주기적 갱신(catalog.refresh.enabled)이 비활성화되어 있습니다. 스프레드시트 변경 사항은 수동 갱신(POST /api/v1/catalog/reload) 또는 재시작 시에만 반영됩니다")
	}
	if c.Storage.Driver == StorageDriverFile && c.Storage.Dir == DefaultStorageDir {
		warnings = append(warnings, fmt.Sprintf("세션 저장 경로가 기본값(%s)입니다. 작업 디렉터리에 따라 위치가 달라질 수 있습니다", DefaultStorageDir))
	}

	return warnings
}

// CatalogConfig 상품 카탈로그 원본(게시된 스프레드시트 CSV)과 적재 정책 설정
type CatalogConfig struct {
	SourceURL          string        `json:"source_url" validate:"required,source_url"`
	WholesaleThreshold int           `json:"wholesale_threshold" validate:"min=1"`
	Refresh            RefreshConfig `json:"refresh"`
	Fetch              FetchConfig   `json:"fetch"`
}

// RefreshConfig 카탈로그 주기적 갱신 설정 (6필드 Cron 표현식)
type RefreshConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
}

// FetchConfig 스프레드시트 다운로드 시 사용하는 HTTP 정책
type FetchConfig struct {
	Timeout    time.Duration `json:"timeout" validate:"gt=0"`
	MaxRetries int           `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay time.Duration `json:"retry_delay" validate:"gt=0"`
	MaxBytes   int64         `json:"max_bytes" validate:"min=-1"`
}

// CheckoutConfig 주문 메시지를 받을 WhatsApp 번호와 통화 설정
type CheckoutConfig struct {
	WhatsAppPhone string `json:"whatsapp_phone" validate:"required,phone_number"`
	Currency      string `json:"currency" validate:"required,len=3,uppercase"`
}

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// StorageConfig 세션별 장바구니/언어 설정 저장소
type StorageConfig struct {
	Driver string `json:"driver" validate:"oneof=file sqlite"`
	Dir    string `json:"dir" validate:"required_if=Driver file"`
	DSN    string `json:"dsn" validate:"required_if=Driver sqlite"`
}

// NotifierConfig 주문 알림 채널 설정
type NotifierConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 주문 발생 시 가게 주인에게 텔레그램 메시지를 보내기 위한 설정
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

// HTTPConfig API 서버 설정
type HTTPConfig struct {
	ListenPort     int           `json:"listen_port" validate:"min=1,max=65535"`
	AllowOrigins   []string      `json:"allow_origins"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`

	// SecureCookie 세션 쿠키에 Secure 속성을 붙일지 여부 (HTTPS 리버스 프록시 뒤에서 운영할 때)
	SecureCookie bool `json:"secure_cookie"`
}

// corsOrigins 와일드카드가 아닌 CORS 허용 목록을 검증하기 위한 구조체
type corsOrigins struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *HTTPConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "HTTP 서버(http)"); err != nil {
		return err
	}

	if len(c.AllowOrigins) == 0 {
		return newInvalidInput("CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	if slices.Contains(c.AllowOrigins, "*") {
		if len(c.AllowOrigins) > 1 {
			return newInvalidInput("와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
		return nil
	}

	return checkStruct(v, &corsOrigins{AllowOrigins: c.AllowOrigins}, "HTTP 서버(http)")
}

func (c *HTTPConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}
	if slices.Contains(c.AllowOrigins, "*") {
		warnings = append(warnings, "CORS 허용 도메인이 와일드카드(*)로 설정되어 있습니다. 운영 환경에서는 상점 도메인만 허용하는 것을 권장합니다")
	}

	return warnings
}

// RenderConfig 카탈로그 스트림의 단계적 렌더링 설정
type RenderConfig struct {
	BatchSize int           `json:"batch_size" validate:"min=1"`
	Stagger   time.Duration `json:"stagger" validate:"min=0"`
}
