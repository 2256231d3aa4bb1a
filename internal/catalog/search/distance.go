package search

// approximateErrors 텍스트의 임의 위치에 있는 부분 문자열 중 pattern과 가장 가까운 것의
// 편집 거리(삽입, 삭제, 치환)를 계산합니다. 위치는 결과에 영향을 주지 않습니다.
func approximateErrors(pattern, text []rune) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}

	// prev[i]: 지금까지 읽은 텍스트의 어떤 접미사와 pattern[:i] 사이의 최소 편집 거리
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for i := range prev {
		prev[i] = i
	}

	best := m
	for _, c := range text {
		curr[0] = 0
		for i := 1; i <= m; i++ {
			v := prev[i-1]
			if pattern[i-1] != c {
				v++
			}
			v = min(v, prev[i]+1, curr[i-1]+1)
			curr[i] = v
		}
		if curr[m] < best {
			best = curr[m]
			if best == 0 {
				break
			}
		}
		prev, curr = curr, prev
	}

	return best
}
