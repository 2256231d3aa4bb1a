package validation

import (
	"fmt"

	"github.com/darkkaiser/rarities-store/pkg/cronx"
)

// ValidateCronExpression 초 단위를 포함하는 6필드 Cron 표현식인지 검증합니다.
// 예: "0 */30 * * * *" (30분마다)
func ValidateCronExpression(spec string) error {
	if _, err := cronx.StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
