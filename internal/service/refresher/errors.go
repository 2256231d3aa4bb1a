package refresher

import (
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

// NewErrInvalidTimeSpec Cron 표현식이 올바르지 않아 갱신 스케줄 등록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidTimeSpec(timeSpec string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "갱신 스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec='%s')", timeSpec)
}
