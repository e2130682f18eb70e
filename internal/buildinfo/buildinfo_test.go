package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withState(t *testing.T, info Info, read func() (*debug.BuildInfo, bool)) {
	t.Helper()
	prevInfo, prevRead := current, readBuildInfo
	current = info
	readBuildInfo = read
	t.Cleanup(func() {
		current = prevInfo
		readBuildInfo = prevRead
	})
}

func fakeBuild(revision, goVersion string) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: goVersion,
			Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: revision}},
		}, true
	}
}

func TestSetKeepsPlaceholdersForEmptyValues(t *testing.T) {
	withState(t, Info{Version: unknownVersion, Commit: unknownCommit, Date: unknownDate, BuiltBy: unknownBuilder}, fakeBuild("", ""))

	Set("1.2.0", "", "2026-01-02", "")

	assert.Equal(t, "1.2.0", Version())
	info := Get()
	assert.Equal(t, unknownCommit, info.Commit)
	assert.Equal(t, "2026-01-02", info.Date)
	assert.Equal(t, unknownBuilder, info.BuiltBy)
}

func TestGetEnrichesFromBuildInfo(t *testing.T) {
	withState(t, Info{Version: "dev", Commit: unknownCommit, Date: unknownDate, BuiltBy: unknownBuilder}, fakeBuild("abc123", "go1.25.0"))

	info := Get()
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "go1.25.0", info.BuiltBy)
	// enrichment does not stick to the stored metadata
	assert.Equal(t, unknownCommit, current.Commit)
}

func TestGetSkipsEnrichmentWhenComplete(t *testing.T) {
	called := false
	withState(t, Info{Version: "1.0.0", Commit: "deadbeef", Date: "today", BuiltBy: "goreleaser"}, func() (*debug.BuildInfo, bool) {
		called = true
		return nil, false
	})

	info := Get()
	assert.False(t, called)
	assert.Equal(t, "deadbeef", info.Commit)
}

func TestGetWithoutBuildInfo(t *testing.T) {
	withState(t, Info{Version: "dev", Commit: unknownCommit, Date: unknownDate, BuiltBy: unknownBuilder}, func() (*debug.BuildInfo, bool) {
		return nil, false
	})

	assert.Equal(t, unknownCommit, Get().Commit)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.0.0", Commit: "abc", Date: "2026-10-01", BuiltBy: "go1.25"}
	assert.Equal(t, "lazystay version 1.0.0\ncommit: abc\nbuilt at: 2026-10-01\nbuilt by: go1.25", info.String())
}
