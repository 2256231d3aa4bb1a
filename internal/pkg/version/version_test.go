package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrich_FillsFromBuildInfo(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.3.1"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true
	}

	bi := enrich(Info{})

	assert.Equal(t, "v0.3.1", bi.Version)
	assert.Equal(t, "0123456789abcdef", bi.Commit)
	assert.Equal(t, "2026-10-01T00:00:00Z", bi.BuildDate)
	assert.True(t, bi.DirtyBuild)
	assert.NotEmpty(t, bi.GoVersion)
}

func TestEnrich_LdflagsTakePrecedence(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main:     debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fromvcs"}},
		}, true
	}

	bi := enrich(Info{Version: "v1.0.0", Commit: "ldflags"})
	assert.Equal(t, "v1.0.0", bi.Version)
	assert.Equal(t, "ldflags", bi.Commit)

	bi = enrich(Info{})
	assert.Equal(t, unknown, bi.Version, "(devel)은 버전으로 사용하지 않습니다")
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	s := Info{Version: "v1.2.0", Commit: "f25b8bf1234", BuildNumber: "42", DirtyBuild: true}.String()
	assert.Equal(t, "v1.2.0+dirty (commit: f25b8bf, build: 42)", s)
	assert.Equal(t, unknown, Info{}.String())
}

func TestGet_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Get().Version)
	assert.NotEmpty(t, Get().GoVersion)
}
