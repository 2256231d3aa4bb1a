// Package maputil 느슨한 타입의 맵 데이터를 구조체로 디코딩하는 유틸리티를 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode input을 새 T 값으로 디코딩합니다.
//
// 기본 동작:
//   - json 태그 사용
//   - 약한 타입 변환 허용 ("3" -> 3)
//   - 알 수 없는 키 무시
//   - 콤마로 구분된 문자열을 []string으로 변환하며 각 요소의 공백을 제거
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo input을 이미 존재하는 output에 병합하여 디코딩합니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
		trimSpace:        true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		DecodeHook:       cfg.buildDecodeHook(),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}
	return nil
}

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	trimSpace        bool
	extraHooks       []mapstructure.DecodeHookFunc
}

func (c *decodingConfig) buildDecodeHook() mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(c.extraHooks)+2)
	hooks = append(hooks, c.extraHooks...)
	hooks = append(hooks,
		mapstructure.TextUnmarshallerHookFunc(),
		stringToSliceHookFunc(c.trimSpace),
	)
	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

// Option 디코딩 동작을 변경합니다.
type Option func(*decodingConfig)

// WithTagName 구조체 태그 이름을 지정합니다. (기본값: json)
func WithTagName(tagName string) Option {
	return func(c *decodingConfig) { c.tagName = tagName }
}

// WithErrorUnused 구조체에 없는 키가 있으면 에러를 반환합니다.
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) { c.errorUnused = enable }
}

// WithTrimSpace 문자열 분할 시 요소의 공백 제거 여부를 지정합니다.
func WithTrimSpace(enable bool) Option {
	return func(c *decodingConfig) { c.trimSpace = enable }
}

// WithDecodeHook 기본 훅보다 먼저 실행될 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) { c.extraHooks = append(c.extraHooks, hooks...) }
}
