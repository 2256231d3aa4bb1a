package source

import (
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

var (
	// ErrNoData 헤더를 제외한 데이터 행이 하나도 없을 때 반환됩니다.
	// 메시지는 그대로 사용자에게 노출됩니다.
	ErrNoData = apperrors.New(apperrors.NotFound, "No data found in the spreadsheet.")

	// ErrNotPublished CSV 대신 HTML 페이지(로그인 화면, 비공개 시트 안내 등)가 응답되었을 때 반환됩니다.
	ErrNotPublished = apperrors.New(apperrors.Unauthorized, "스프레드시트가 CSV로 게시되어 있지 않습니다")
)

func newErrNotPublished(title string) error {
	if title == "" {
		return ErrNotPublished
	}
	return apperrors.Wrapf(ErrNotPublished, apperrors.Unauthorized, "CSV 대신 HTML 페이지가 응답되었습니다 (title=%q)", title)
}

func newErrCSVParseFailed(err error) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, "스프레드시트 CSV 헤더를 해석할 수 없습니다")
}
