package storage

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// filenameReplacer 파일 시스템에서 문제를 일으킬 수 있는 문자를 하이픈으로 치환합니다.
// 경로 이탈("..", 경로 구분자)과 Windows 예약 문자를 다룹니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// maxNamePartBytes 파일명 각 부분의 최대 바이트 길이
const maxNamePartBytes = 50

// generateFilename 세션 ID와 키로 사람이 읽을 수 있으면서 고유한 파일명을 생성합니다.
//
// 정제된 이름만으로는 서로 다른 입력이 같은 이름이 될 수 있으므로 원본 값의
// 64비트 해시를 덧붙입니다. 해시 입력은 "{길이}:{내용}|{길이}:{내용}" 형식이라
// ("ab","c")와 ("a","bc")가 충돌하지 않습니다.
//
// 형식: "session-{세션}-{키}-{16자리해시}.dat"
func generateFilename(session, key string) string {
	sessionName := truncateByBytes(sanitizeName(session), maxNamePartBytes)
	keyName := truncateByBytes(sanitizeName(key), maxNamePartBytes)

	hasher := fnv.New64a()
	_, _ = fmt.Fprintf(hasher, "%d:%s|%d:%s", len(session), session, len(key), key)

	return fmt.Sprintf("session-%s-%s-%016x.dat", sessionName, keyName, hasher.Sum64())
}

// sanitizeName Kebab-Case로 변환한 뒤 제어 문자와 위험 문자를 하이픈으로 치환합니다.
func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes UTF-8 문자가 중간에 잘리지 않도록 바이트 길이 기준으로 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	total := 0
	for total < len(s) {
		_, size := utf8.DecodeRuneInString(s[total:])
		if total+size > limit {
			break
		}
		total += size
	}
	return s[:total]
}
