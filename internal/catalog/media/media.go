// Package media 상품의 이미지/문서 참조를 표시 가능한 이미지 URL 목록으로 변환합니다.
//
// 구글 드라이브 파일은 공개 썸네일 제공자마다 제한이 달라, 기본 URL이 실패하면
// 정해진 순서의 대체 URL을 차례로 시도하고 마지막에는 플레이스홀더를 사용합니다.
package media

import (
	"regexp"
	"strings"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/darkkaiser/rarities-store/pkg/strutil"
)

var (
	drivePathPattern  = regexp.MustCompile(`/(?:file/)?d/([A-Za-z0-9_-]+)`)
	driveQueryPattern = regexp.MustCompile(`[?&]id=([A-Za-z0-9_-]+)`)
	bareIDPattern     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ExtractDriveID 드라이브 공유 URL 또는 파일 ID 문자열에서 파일 ID를 추출합니다.
//
// 다음 순서로 시도합니다.
//   - .../file/d/{id}/view, .../d/{id}
//   - ...?id={id}, ...&id={id}
//   - 20자를 넘는 영숫자/하이픈/밑줄 문자열 자체
func ExtractDriveID(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if m := drivePathPattern.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}
	if m := driveQueryPattern.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}
	if len(ref) > 20 && bareIDPattern.MatchString(ref) {
		return ref, true
	}
	return "", false
}

// Sources 하나의 상품 이미지에 대한 기본 URL과 실패 시 시도할 대체 URL 목록입니다.
// Fallbacks의 마지막 항목은 항상 플레이스홀더입니다.
type Sources struct {
	Primary     string   `json:"primary"`
	Fallbacks   []string `json:"fallbacks"`
	DriveID     string   `json:"drive_id,omitempty"`
	Placeholder bool     `json:"placeholder"`
}

// ImageSources 상품의 이미지 참조, 문서 링크 순으로 이미지 URL을 결정합니다.
// noPreviewLabel은 참조가 전혀 없을 때 플레이스홀더 이미지에 표시할 문구입니다.
func ImageSources(p product.Product, noPreviewLabel string) Sources {
	var driveID, direct string

	if p.ImageRef != "" {
		if id, ok := ExtractDriveID(p.ImageRef); ok {
			driveID = id
		} else if strings.HasPrefix(p.ImageRef, "http") || strings.HasPrefix(p.ImageRef, "data:") {
			direct = p.ImageRef
		}
	}
	if driveID == "" && direct == "" && p.DocumentLink != "" {
		driveID, _ = ExtractDriveID(p.DocumentLink)
	}

	switch {
	case driveID != "":
		return Sources{
			Primary: "https://lh3.googleusercontent.com/d/" + driveID + "=w800",
			Fallbacks: []string{
				"https://drive.google.com/thumbnail?id=" + driveID + "&sz=w800",
				"https://drive.google.com/thumbnail?id=" + driveID + "&sz=w800&retry=1",
				"https://drive.google.com/uc?export=view&id=" + driveID,
				AccessDeniedPlaceholder,
			},
			DriveID: driveID,
		}

	case direct != "":
		return Sources{
			Primary:   direct,
			Fallbacks: []string{AccessDeniedPlaceholder},
		}

	default:
		return Sources{
			Primary:     NoPreviewPlaceholder(noPreviewLabel),
			Fallbacks:   []string{AccessDeniedPlaceholder},
			Placeholder: true,
		}
	}
}

// ThumbnailURL 장바구니 등 작은 영역에 사용할 200px 썸네일 URL을 반환합니다.
func ThumbnailURL(imageRef string) string {
	if id, ok := ExtractDriveID(imageRef); ok {
		return "https://lh3.googleusercontent.com/d/" + id + "=w200"
	}
	if imageRef != "" {
		return imageRef
	}
	return EmptyThumbnail
}

const (
	// AccessDeniedPlaceholder 모든 대체 URL이 실패했을 때 사용하는 이미지입니다.
	AccessDeniedPlaceholder = "data:image/svg+xml;charset=UTF-8,%3Csvg%20width%3D%22800%22%20height%3D%22600%22%20xmlns%3D%22http%3A%2F%2Fwww.w3.org%2F2000%2Fsvg%22%3E%3Crect%20width%3D%22100%25%22%20height%3D%22100%25%22%20fill%3D%22%23fee2e2%22%2F%3E%3Ctext%20x%3D%2250%25%22%20y%3D%2250%25%22%20font-family%3D%22sans-serif%22%20font-size%3D%2220%22%20fill%3D%22%23ef4444%22%20text-anchor%3D%22middle%22%20dy%3D%22.3em%22%3EAccess%20Denied%20/%20Private%3C%2Ftext%3E%3C%2Fsvg%3E"

	// EmptyThumbnail 이미지 참조가 없는 장바구니 항목에 사용하는 단색 이미지입니다.
	EmptyThumbnail = "data:image/svg+xml;charset=UTF-8,%3Csvg%20width%3D%22200%22%20height%3D%22200%22%20xmlns%3D%22http%3A%2F%2Fwww.w3.org%2F2000%2Fsvg%22%3E%3Crect%20width%3D%22100%25%22%20height%3D%22100%25%22%20fill%3D%22%23f1f5f9%22%2F%3E%3C%2Fsvg%3E"

	noPreviewPrefix = "data:image/svg+xml;charset=UTF-8,%3Csvg%20width%3D%22800%22%20height%3D%22600%22%20xmlns%3D%22http%3A%2F%2Fwww.w3.org%2F2000%2Fsvg%22%3E%3Crect%20width%3D%22100%25%22%20height%3D%22100%25%22%20fill%3D%22%23f1f5f9%22%2F%3E%3Ctext%20x%3D%2250%25%22%20y%3D%2250%25%22%20font-family%3D%22sans-serif%22%20font-size%3D%2220%22%20font-weight%3D%22bold%22%20fill%3D%22%2394a3b8%22%20text-anchor%3D%22middle%22%20dy%3D%22.3em%22%3E"
	noPreviewSuffix = "%3C%2Ftext%3E%3C%2Fsvg%3E"
)

// NoPreviewPlaceholder 주어진 문구를 가운데에 표시하는 SVG 플레이스홀더를 반환합니다.
func NoPreviewPlaceholder(label string) string {
	return noPreviewPrefix + strutil.EncodeURIComponent(label) + noPreviewSuffix
}
