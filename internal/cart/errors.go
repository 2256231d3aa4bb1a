package cart

import (
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

var (
	// ErrOutOfStock 품절 상품을 장바구니에 담으려 할 때 반환됩니다.
	ErrOutOfStock = apperrors.New(apperrors.Conflict, "품절된 상품은 장바구니에 담을 수 없습니다")

	// ErrInvalidCartData 저장된 장바구니 데이터가 JSON 배열이 아닐 때 반환됩니다.
	ErrInvalidCartData = apperrors.New(apperrors.ParsingFailed, "장바구니 데이터 형식이 올바르지 않습니다")
)

func newErrOutOfStock(itemNumber, name string) error {
	return apperrors.Wrapf(ErrOutOfStock, apperrors.Conflict, "장바구니 추가 거부 (item_number=%s, name=%s)", itemNumber, name)
}

func newErrInvalidCartData(reason string) error {
	return apperrors.Wrapf(ErrInvalidCartData, apperrors.ParsingFailed, "장바구니 데이터 해석 실패: %s", reason)
}
