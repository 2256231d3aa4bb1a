// Package config 애플리케이션 설정을 기본값, JSON 설정 파일, 환경 변수 순서로 읽어 검증합니다.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "rarities-store"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자입니다. 예: RARITIES_CATALOG__SOURCE_URL -> catalog.source_url
	EnvPrefix = "RARITIES_"

	// ------------------------------------------------------------------------------------------------
	// 기본값
	// ------------------------------------------------------------------------------------------------

	DefaultSourceURL          = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSTejg41yuaKcYa0CbOodUP9osmE5DIv8ZNQyMXlHJLLh2pQUZ5EoMT93UgV3LZfhAJcPEL8uEfK9Y4/pub?gid=897526080&single=true&output=csv"
	DefaultWholesaleThreshold = 25
	DefaultRefreshTimeSpec    = "0 */30 * * * *"
	DefaultFetchTimeout       = 30 * time.Second
	DefaultMaxRetries         = 3
	DefaultRetryDelay         = 2 * time.Second
	DefaultMaxBytes           = 10 * 1024 * 1024
	DefaultWhatsAppPhone      = "962795965910"
	DefaultCurrency           = "JOD"
	DefaultStorageDriver      = "file"
	DefaultStorageDir         = "data/sessions"
	DefaultListenPort         = 8080
	DefaultRequestTimeout     = 30 * time.Second
	DefaultRenderBatchSize    = 10
	DefaultRenderStagger      = 150 * time.Millisecond
)

// Default 모든 항목이 기본값으로 채워진 설정을 반환합니다.
func Default() AppConfig {
	return AppConfig{
		Catalog: CatalogConfig{
			SourceURL:          DefaultSourceURL,
			WholesaleThreshold: DefaultWholesaleThreshold,
			Refresh: RefreshConfig{
				Enabled:  true,
				TimeSpec: DefaultRefreshTimeSpec,
			},
			Fetch: FetchConfig{
				Timeout:    DefaultFetchTimeout,
				MaxRetries: DefaultMaxRetries,
				RetryDelay: DefaultRetryDelay,
				MaxBytes:   DefaultMaxBytes,
			},
		},
		Checkout: CheckoutConfig{
			WhatsAppPhone: DefaultWhatsAppPhone,
			Currency:      DefaultCurrency,
		},
		Storage: StorageConfig{
			Driver: DefaultStorageDriver,
			Dir:    DefaultStorageDir,
		},
		Notifier: NotifierConfig{
			Telegram: TelegramConfig{},
		},
		HTTP: HTTPConfig{
			ListenPort:     DefaultListenPort,
			AllowOrigins:   []string{"*"},
			RequestTimeout: DefaultRequestTimeout,
		},
		Render: RenderConfig{
			BatchSize: DefaultRenderBatchSize,
			Stagger:   DefaultRenderStagger,
		},
	}
}

// LoadDotEnv .env 파일의 값을 프로세스 환경 변수로 읽어들입니다. 파일이 없으면 무시합니다.
// 이미 설정된 환경 변수는 덮어쓰지 않습니다.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return apperrors.Wrapf(err, apperrors.System, ".env 파일 로드에 실패했습니다: '%s'", name)
		}
	}

	return nil
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
// 설정 파일이 없으면 기본값과 환경 변수만으로 구성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
		}
	}

	// 3. 환경 변수 로드 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true, // 구조체에 없는 설정 키가 있으면 에러
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
