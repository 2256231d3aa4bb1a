package constants

// 서버 구성 시 필수 의존성이 누락되었을 때의 패닉 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired      = "AppConfig는 필수입니다"
	PanicMsgCatalogRequired        = "Catalog는 필수입니다"
	PanicMsgStoreRequired          = "Store는 필수입니다"
	PanicMsgCheckoutRequired       = "Checkout은 필수입니다"
	PanicMsgStatusProviderRequired = "StatusProvider는 필수입니다"

	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimit: requestsPerSecond는 양수여야 합니다 (현재값: %d)"
	PanicMsgRateLimitBurstInvalid             = "RateLimit: burst는 양수여야 합니다 (현재값: %d)"
)
