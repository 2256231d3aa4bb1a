// Package errors 카탈로그 서비스 전반에서 사용하는 타입 기반 에러를 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며, HTTP 계층은 UnderlyingType을 통해
// 응답 상태 코드를 결정합니다.
//
//	err := errors.New(errors.NotFound, "상품을 찾을 수 없습니다")
//
//	if err != nil {
//	    return errors.Wrap(err, errors.ExecutionFailed, "카탈로그 다운로드 실패")
//	}
//
//	if errors.Is(err, errors.NotFound) {
//	    // 404 응답
//	}
//
// # ErrorType 선택 기준
//
//   - InvalidInput: 요청 본문/쿼리 검증 실패, 잘못된 세션 식별자
//   - NotFound: 존재하지 않는 상품 인덱스, 이름 컬럼을 찾지 못한 스프레드시트
//   - Conflict: 빈 장바구니 주문, 품절 상품 담기
//   - ExecutionFailed: 외부 요청(스프레드시트, 텔레그램) 실패
//   - ParsingFailed: CSV/JSON 해석 실패
//   - System: 저장소 I/O 실패
//   - Unavailable: 카탈로그가 아직 적재되지 않음
package errors
