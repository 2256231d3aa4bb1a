package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류
	Internal

	// System 디스크, 데이터베이스 등 인프라 오류
	System

	// Unauthorized 인증 실패
	Unauthorized

	// Forbidden 권한 부족
	Forbidden

	// InvalidInput 잘못된 입력값
	InvalidInput

	// Conflict 현재 상태와 충돌하는 요청
	Conflict

	// NotFound 리소스 없음
	NotFound

	// ExecutionFailed 외부 호출 또는 작업 실행 실패
	ExecutionFailed

	// ParsingFailed 데이터 파싱 실패
	ParsingFailed

	// Timeout 시간 초과
	Timeout

	// Unavailable 일시적으로 사용 불가
	Unavailable
)
