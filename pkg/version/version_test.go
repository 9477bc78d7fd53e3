package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "v1.2.3"
	assert.Equal(t, "1.2.3", GetVersion())
	assert.True(t, IsRelease())

	v, err := Semver()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Major())

	version = "1.3.0-rc.1"
	assert.False(t, IsRelease())

	version = "not-a-version"
	assert.False(t, IsRelease())
	_, err = Semver()
	require.Error(t, err)
}

func TestDefaultsAreUsable(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.NotEmpty(t, GetGitCommit())
	assert.NotEmpty(t, GetBuildDate())

	_, err := Semver()
	require.NoError(t, err)
}
