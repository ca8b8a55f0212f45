package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pascal736/karamapper/internal/compiler"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, compiler.DefaultProfileName, s.Profile.Name)
	assert.True(t, s.Profile.Selected)
	assert.True(t, s.Device.IsKeyboard)
	assert.Zero(t, s.Device.VendorID)
	assert.Equal(t, "stdout", s.Output.Method)
	assert.Equal(t, "karabiner.json", filepath.Base(s.Output.Target))
	assert.Equal(t, "warn", s.Log.Level)
	assert.False(t, s.Log.JSON)
}

func TestLoadFile(t *testing.T) {
	isolateHome(t)
	path := writeSettings(t, `
[profile]
name = "work"
selected = false

[device]
vendor_id = 1452
product_id = 834

[output]
method = "extend"
target = "/tmp/karabiner.json"
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "work", s.Profile.Name)
	assert.False(t, s.Profile.Selected)
	assert.Equal(t, 1452, s.Device.VendorID)
	assert.Equal(t, 834, s.Device.ProductID)
	assert.True(t, s.Device.IsKeyboard, "unset keys keep defaults")
	assert.Equal(t, "extend", s.Output.Method)
	assert.Equal(t, "/tmp/karabiner.json", s.Output.Target)
}

func TestLoadDefaultPathFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "karamapper")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.toml"),
		[]byte("[log]\nlevel = \"debug\"\n"), 0o644))

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolateHome(t)
	path := writeSettings(t, "[profile]\nname = \"from-file\"\n")
	t.Setenv("KARAMAPPER_PROFILE_NAME", "from-env")
	t.Setenv("KARAMAPPER_LOG_JSON", "true")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Profile.Name)
	assert.True(t, s.Log.JSON)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolateHome(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}

func TestLoadMalformedFile(t *testing.T) {
	isolateHome(t)
	path := writeSettings(t, "[profile\nname = 1\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestCompileOptions(t *testing.T) {
	s := &Settings{
		Profile: ProfileSettings{Name: "p", Selected: true},
		Device:  DeviceSettings{VendorID: 1, ProductID: 2, IsKeyboard: true},
	}

	opts := s.CompileOptions()
	assert.Equal(t, "p", opts.ProfileName)
	assert.True(t, opts.Selected)
	assert.Equal(t, 1, opts.Device.VendorID)
	assert.Equal(t, 2, opts.Device.ProductID)
	assert.True(t, opts.Device.IsKeyboard)
}
