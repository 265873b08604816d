package overlay

import (
	"strings"

	"github.com/bugVanisher/hud/settings"
	"github.com/bugVanisher/hud/stats"
	"github.com/bugVanisher/hud/sysinfo"
)

// Config ...
type Config struct {
	WindowCapacity  int
	PublishInterval float64 // seconds between FPS re-renders
	ColorCode       bool
	SeedFrameTime   float64 // initial per-slot duration, 0 means stats.DefaultSeed

	// HardwareLines overrides the static block; nil captures a live
	// sysinfo snapshot.
	HardwareLines []string
}

// Presenter 叠加层文本聚合
//
// Owns the estimator and the display buffer: the hardware block is
// captured once at construction, the FPS line refreshes on the publish
// cadence, the settings block re-renders every tick. Driven by a single
// tick loop, not safe for concurrent use.
type Presenter struct {
	estimator *stats.Estimator
	hardware  []string
	display   settings.Display
	fpsLine   string
	buffer    string
	visible   bool
}

// New 创建Presenter实例
func New(cfg Config) (*Presenter, error) {
	est, err := stats.NewEstimator(cfg.WindowCapacity, cfg.PublishInterval, cfg.ColorCode, cfg.SeedFrameTime)
	if err != nil {
		return nil, err
	}

	hardware := cfg.HardwareLines
	if hardware == nil {
		hardware = sysinfo.Capture().Lines()
	}

	p := &Presenter{
		estimator: est,
		hardware:  hardware,
		display:   settings.Default(),
		fpsLine:   "FPS: " + stats.Placeholder,
		visible:   true,
	}
	p.rebuild()
	return p, nil
}

// SetSettings replaces the mutable display settings block. Takes effect
// on the next Tick.
func (p *Presenter) SetSettings(d settings.Display) {
	p.display = d
}

// SetVisible ...
func (p *Presenter) SetVisible(v bool) {
	p.visible = v
}

// Visible ...
func (p *Presenter) Visible() bool {
	return p.visible
}

// Tick feeds one frame duration (seconds) and rebuilds the display
// buffer. now is the host's monotonic clock reading used to gate the
// publish cadence. Reports whether the FPS line was republished.
func (p *Presenter) Tick(dt, now float64) bool {
	p.estimator.Sample(dt)
	text, published := p.estimator.MaybePublish(now)
	if published {
		p.fpsLine = "FPS: " + text
	}
	p.rebuild()
	return published
}

// Text returns the current display buffer, or "" while hidden. State
// keeps updating while hidden so re-showing is instant.
func (p *Presenter) Text() string {
	if !p.visible {
		return ""
	}
	return p.buffer
}

func (p *Presenter) rebuild() {
	var b strings.Builder
	b.WriteString(p.fpsLine)
	for _, line := range p.hardware {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	for _, line := range p.display.Lines() {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	p.buffer = b.String()
}
