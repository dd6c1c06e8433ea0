package viewerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avatar-engine/internal/avatar"
)

func TestLoadStylesMissingFile(t *testing.T) {
	opts, err := LoadStyles(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, avatar.DefaultOptions(), opts)
}

func TestLoadStylesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	sheet := `
markers:
  size: 0.02
  color: [1, 0, 0]
mesh:
  opacity: 0.5
rt:
  length: 0.2
global_frame:
  width: 3
`
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0644))

	opts, err := LoadStyles(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.02), opts.Markers.Size)
	assert.Equal(t, [3]float32{1, 0, 0}, opts.Markers.Color)
	assert.Equal(t, float32(1), opts.Markers.Opacity, "omitted fields keep defaults")
	assert.Equal(t, float32(0.5), opts.Mesh.Opacity)
	assert.Equal(t, float32(0.2), opts.RTLength)
	assert.Equal(t, float32(2), opts.RTWidth, "omitted axis fields keep defaults")
	assert.Equal(t, float32(3), opts.GlobalFrameWidth)
}

func TestLoadStylesRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("muscle:\n  opacity: 2\n"), 0644))
	_, err := LoadStyles(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("markers: [not, a, map]\n"), 0644))
	_, err = LoadStyles(path)
	assert.Error(t, err)
}

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.json")
	p := Prefs{ShowFPS: true, GridVisible: false, Background: [3]float32{0.1, 0.2, 0.3}}
	require.NoError(t, SavePrefs(path, p))

	got, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestLoadPrefsMissingOrInvalid(t *testing.T) {
	got, err := LoadPrefs(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefs(), got)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))
	got, err = LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefs(), got)
}
