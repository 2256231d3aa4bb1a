// Package log logrus 기반의 애플리케이션 로깅을 제공합니다.
//
// 모든 패키지는 component 상수를 선언하고 WithComponent 또는
// WithComponentAndFields로 로그를 남깁니다.
//
//	applog.WithComponentAndFields(component, applog.Fields{"count": n}).Info("카탈로그 적재 완료")
package log

import (
	"github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus 로거를 반환합니다.
// echo, cron 등 외부 라이브러리의 로거 어댑터에 전달할 때 사용합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetDebugMode 디버그 모드면 TRACE, 아니면 INFO 레벨로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// WithComponent component 필드를 가진 로그 엔트리를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드에 추가 필드를 합친 로그 엔트리를 반환합니다.
// 전달된 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}
