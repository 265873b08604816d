package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bugVanisher/hud/common/errs"
	"github.com/bugVanisher/hud/settings"
)

func newTestPresenter(t *testing.T) *Presenter {
	p, err := New(Config{
		WindowCapacity:  4,
		PublishInterval: 1,
		SeedFrameTime:   1.0 / 64,
		HardwareLines:   []string{"CPU: test-cpu", "RAM: 16384 MiB"},
	})
	require.NoError(t, err)
	return p
}

func TestPresenterBadConfig(t *testing.T) {
	_, err := New(Config{WindowCapacity: 0})
	require.Equal(t, errs.ErrBadWindow, err)
}

func TestPresenterComposition(t *testing.T) {
	p := newTestPresenter(t)

	require.True(t, p.Tick(1.0/64, 0)) // first tick publishes
	text := p.Text()
	require.Contains(t, text, "FPS: 64")
	require.Contains(t, text, "CPU: test-cpu")
	require.Contains(t, text, "RAM: 16384 MiB")
	require.Contains(t, text, "Resolution: 1920x1080 (16:9)")
	require.Contains(t, text, "VSync: on")
}

func TestPresenterPublishCadence(t *testing.T) {
	p := newTestPresenter(t)

	require.True(t, p.Tick(1.0/64, 0))
	// within the publish interval: FPS line untouched even as samples land
	require.False(t, p.Tick(1.0/32, 0.5))
	require.Contains(t, p.Text(), "FPS: 64")

	// past the interval: re-rendered from current window state
	require.True(t, p.Tick(1.0/32, 1.1))
	require.Contains(t, p.Text(), "FPS: 42")
}

func TestPresenterSettingsEveryTick(t *testing.T) {
	p := newTestPresenter(t)
	require.True(t, p.Tick(1.0/64, 0))

	p.SetSettings(settings.Display{
		Width:      1280,
		Height:     1024,
		WindowMode: "fullscreen",
		VSync:      false,
		Quality:    "low",
	})

	// next tick does not publish, settings re-render anyway
	require.False(t, p.Tick(1.0/64, 0.2))
	text := p.Text()
	require.Contains(t, text, "Resolution: 1280x1024 (5:4)")
	require.Contains(t, text, "Mode: fullscreen")
	require.Contains(t, text, "FPS: 64")
}

func TestPresenterVisibility(t *testing.T) {
	p := newTestPresenter(t)
	require.True(t, p.Visible())
	require.True(t, p.Tick(1.0/64, 0))

	p.SetVisible(false)
	require.Equal(t, "", p.Text())

	// state keeps updating while hidden
	require.False(t, p.Tick(1.0/64, 0.1))
	require.Equal(t, "", p.Text())

	p.SetVisible(true)
	require.Contains(t, p.Text(), "FPS: 64")
}
