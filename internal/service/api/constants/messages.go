package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 400 Bad Request
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgBadRequestBodyRead    = "요청 본문을 읽을 수 없습니다"
	ErrMsgInvalidProductIndex   = "상품 번호(index)가 올바르지 않습니다"
	ErrMsgInvalidColor          = "선택할 수 없는 색상입니다"
	ErrMsgInvalidLanguage       = "지원하지 않는 언어입니다 (en, ar)"

	// 404 Not Found
	ErrMsgNotFound         = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgProductNotFound  = "상품을 찾을 수 없습니다"
	ErrMsgCartLineNotFound = "장바구니에 해당 항목이 없습니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "서비스를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요"

	// 504 Gateway Timeout
	ErrMsgTimeout = "요청 처리 시간이 초과되었습니다"
)
