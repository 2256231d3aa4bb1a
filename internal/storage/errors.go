package storage

import (
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
)

var (
	// ErrNotFound 요청한 세션/키에 저장된 값이 없을 때 반환됩니다.
	ErrNotFound = apperrors.New(apperrors.NotFound, "저장된 값이 없습니다")

	// ErrPathTraversalDetected 파일 경로 생성 시 경로 이탈 시도가 감지되었을 때 반환됩니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrInvalidKey 세션 ID 또는 키가 비어 있을 때 반환됩니다.
	ErrInvalidKey = apperrors.New(apperrors.InvalidInput, "세션 ID와 키는 비어 있을 수 없습니다")
)

// NewErrUnsupportedDriver 지원하지 않는 저장소 드라이버가 지정되었을 때 반환하는 에러를 생성합니다.
func NewErrUnsupportedDriver(driver string) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 저장소 드라이버입니다 (driver=%s)", driver)
}

// NewErrDirectoryAccessFailed 저장소 초기화 시 디렉토리 생성 또는 접근에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir)
}

// NewErrPathResolutionFailed 파일 경로 해석에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrPathResolutionFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "보안 검증 실패: 파일 경로를 해석할 수 없습니다")
}

// NewErrReadFailed 저장된 값을 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrReadFailed(err error) error {
	return apperrors.Wrap(err, apperrors.System, "세션 데이터 조회 실패: 저장소 읽기 중 오류가 발생했습니다")
}

// NewErrWriteFailed 값을 저장하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrWriteFailed(err error, step string) error {
	return apperrors.Wrapf(err, apperrors.System, "세션 데이터 저장 실패: %s 중 오류가 발생했습니다", step)
}

// NewErrDatabaseOpenFailed 데이터베이스 연결 또는 스키마 준비에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDatabaseOpenFailed(err error, dsn string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 초기화 실패: 데이터베이스를 열 수 없습니다 (dsn=%s)", dsn)
}
