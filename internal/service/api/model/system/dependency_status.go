package system

import "time"

// DependencyStatus 외부 의존성 헬스체크 결과
type DependencyStatus struct {
	// 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 상태 상세 정보 또는 에러 메시지
	Message string `json:"message,omitempty" example:"상품 120개 적재됨"`
	// 마지막으로 성공한 갱신 시각
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
