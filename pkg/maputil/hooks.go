package maputil

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// stringToSliceHookFunc "a, b,,c" 형태의 문자열을 []string으로 변환합니다.
// 빈 문자열은 빈 슬라이스가 되며, trimSpace가 true이면 공백만 남은 요소는 버립니다.
func stringToSliceHookFunc(trimSpace bool) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if strings.TrimSpace(s) == "" {
			return []string{}, nil
		}

		parts := strings.Split(s, ",")
		if !trimSpace {
			return parts, nil
		}

		out := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}
}
