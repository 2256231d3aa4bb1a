package catalog

import (
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

var (
	// ErrNotLoaded 아직 한 번도 카탈로그 적재에 성공하지 못했을 때 반환됩니다.
	ErrNotLoaded = apperrors.New(apperrors.Unavailable, "카탈로그가 아직 적재되지 않았습니다")

	// ErrProductNotFound 요청한 순번(index)의 상품이 현재 카탈로그에 없을 때 반환됩니다.
	ErrProductNotFound = apperrors.New(apperrors.NotFound, "상품을 찾을 수 없습니다")
)

func newErrNotLoaded(cause error) error {
	if cause == nil {
		return ErrNotLoaded
	}
	return apperrors.Wrapf(ErrNotLoaded, apperrors.Unavailable, "카탈로그가 아직 적재되지 않았습니다: %s", cause.Error())
}

func newErrProductNotFound(index int) error {
	return apperrors.Wrapf(ErrProductNotFound, apperrors.NotFound, "상품을 찾을 수 없습니다 (index=%d)", index)
}
