package schema

import (
	"strings"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

var (
	// ErrNameColumnNotFound 헤더 중 상품명 컬럼으로 해석할 수 있는 항목이 없을 때 반환됩니다.
	// 행 단위가 아닌 카탈로그 전체의 적재 실패로 취급합니다.
	ErrNameColumnNotFound = apperrors.New(apperrors.NotFound, "상품명(Product Name) 컬럼을 찾을 수 없습니다")
)

func newErrNameColumnNotFound(headers []string) error {
	return apperrors.Wrapf(ErrNameColumnNotFound, apperrors.NotFound, "스프레드시트 헤더 해석 실패 (headers=[%s])", strings.Join(headers, ", "))
}
