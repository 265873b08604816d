package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolution(t *testing.T) {
	require.Equal(t, "1920x1080 (16:9)", Default().Resolution())

	d := Display{Width: 1280, Height: 1024}
	require.Equal(t, "1280x1024 (5:4)", d.Resolution())
}

func TestLines(t *testing.T) {
	lines := Default().Lines()
	require.Equal(t, []string{
		"Resolution: 1920x1080 (16:9)",
		"Mode: windowed",
		"VSync: on",
		"Quality: high",
	}, lines)

	d := Default()
	d.VSync = false
	require.Contains(t, d.Lines(), "VSync: off")
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud", "settings.json")

	d := Display{
		Width:      2560,
		Height:     1440,
		WindowMode: "borderless",
		VSync:      false,
		Quality:    "ultra",
	}
	require.NoError(t, Save(path, d))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, d, got)
}

func TestLoadMissing(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.Equal(t, Default(), got)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	got, err := Load(path)
	require.Error(t, err)
	require.Equal(t, Default(), got)
}

func TestLoadPartial(t *testing.T) {
	// missing keys keep their defaults
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width":3440,"height":1440}`), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3440, got.Width)
	require.Equal(t, "windowed", got.WindowMode)
	require.True(t, got.VSync)
}
