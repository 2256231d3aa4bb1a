package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	// DependencyCatalog 외부 의존성 ID: 상품 카탈로그 (Google Sheets)
	DependencyCatalog = "catalog"

	MsgDepStatusCatalogLoaded    = "상품 %d개 적재됨"
	MsgDepStatusCatalogNotLoaded = "카탈로그가 아직 적재되지 않음"
)
