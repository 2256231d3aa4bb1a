// Package cronx robfig/cron 사용 시 애플리케이션 전역에서 공유하는 설정을 제공합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 단위를 포함한 6필드 형식의 파서를 반환합니다.
//
//   - 필드 순서: [초] [분] [시] [일] [월] [요일]
//   - @hourly, @every 10m 등 Descriptor 지원
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
