package checkout

import (
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

var (
	// ErrEmptyCart 빈 장바구니로 주문 메시지를 만들려고 할 때 반환됩니다.
	ErrEmptyCart = apperrors.New(apperrors.Conflict, "장바구니가 비어 있어 주문할 수 없습니다")
)
