package media

import (
	"strings"
	"testing"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const driveID = "1AbCdEfGhIjKlMnOpQrStUvWxYz_-09"

func TestExtractDriveID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ref    string
		want   string
		wantOK bool
	}{
		{"file/d 경로", "https://drive.google.com/file/d/" + driveID + "/view?usp=sharing", driveID, true},
		{"d 경로", "https://docs.google.com/document/d/" + driveID + "/edit", driveID, true},
		{"open?id 쿼리", "https://drive.google.com/open?id=" + driveID, driveID, true},
		{"&id 쿼리", "https://drive.google.com/uc?export=view&id=" + driveID, driveID, true},
		{"ID 자체", driveID, driveID, true},
		{"짧은 문자열", "shortid123", "", false},
		{"허용되지 않는 문자", "not a drive id but long enough", "", false},
		{"빈 문자열", "", "", false},
		{"일반 URL", "https://example.com/image.png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ExtractDriveID(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageSources_DriveChain(t *testing.T) {
	t.Parallel()

	s := ImageSources(product.Product{ImageRef: "https://drive.google.com/file/d/" + driveID + "/view"}, "No Preview")

	assert.Equal(t, "https://lh3.googleusercontent.com/d/"+driveID+"=w800", s.Primary)
	assert.Equal(t, []string{
		"https://drive.google.com/thumbnail?id=" + driveID + "&sz=w800",
		"https://drive.google.com/thumbnail?id=" + driveID + "&sz=w800&retry=1",
		"https://drive.google.com/uc?export=view&id=" + driveID,
		AccessDeniedPlaceholder,
	}, s.Fallbacks)
	assert.Equal(t, driveID, s.DriveID)
	assert.False(t, s.Placeholder)
}

func TestImageSources_DirectURL(t *testing.T) {
	t.Parallel()

	s := ImageSources(product.Product{ImageRef: "https://cdn.example.com/lamp.jpg", DocumentLink: "https://drive.google.com/open?id=" + driveID}, "")

	assert.Equal(t, "https://cdn.example.com/lamp.jpg", s.Primary)
	assert.Equal(t, []string{AccessDeniedPlaceholder}, s.Fallbacks)
	assert.Empty(t, s.DriveID)
}

func TestImageSources_DocumentLinkFallback(t *testing.T) {
	t.Parallel()

	s := ImageSources(product.Product{ImageRef: "see folder", DocumentLink: "https://drive.google.com/open?id=" + driveID}, "")

	assert.Equal(t, driveID, s.DriveID)
}

func TestImageSources_Placeholder(t *testing.T) {
	t.Parallel()

	s := ImageSources(product.Product{}, "No Preview")

	require.True(t, s.Placeholder)
	assert.True(t, strings.HasPrefix(s.Primary, "data:image/svg+xml"))
	assert.Contains(t, s.Primary, "No%20Preview")
	assert.Equal(t, AccessDeniedPlaceholder, s.Fallbacks[len(s.Fallbacks)-1])
}

func TestThumbnailURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://lh3.googleusercontent.com/d/"+driveID+"=w200", ThumbnailURL(driveID))
	assert.Equal(t, "https://cdn.example.com/a.png", ThumbnailURL("https://cdn.example.com/a.png"))
	assert.Equal(t, EmptyThumbnail, ThumbnailURL(""))
}
