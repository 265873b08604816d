package stats

import (
	"strconv"

	"github.com/bugVanisher/hud/common/errs"
)

const (
	// DefaultSeed pre-fills the window at 60fps so the first reading
	// is sane instead of a cold-start divide.
	DefaultSeed = 1.0 / 60

	// Placeholder is published when the window sum is zero and no
	// meaningful rate can be computed.
	Placeholder = "N/A"
)

// Estimator 帧率统计,滑动窗口平均
//
// Two cadences share the window: Sample runs once per tick, MaybePublish
// re-renders the text only after publishInterval has elapsed. The
// estimator is owned by a single tick loop and is not safe for
// concurrent use.
type Estimator struct {
	window   *durationWindow
	interval float64
	colorize bool

	lastPublish float64
	primed      bool
}

// NewEstimator 创建Estimator实例, capacity窗口容量, publishInterval发布间隔(秒)
// A non-positive seed falls back to DefaultSeed.
func NewEstimator(capacity int, publishInterval float64, colorize bool, seed float64) (*Estimator, error) {
	if capacity <= 0 {
		return nil, errs.ErrBadWindow
	}
	if publishInterval < 0 {
		publishInterval = 0
	}
	if seed <= 0 {
		seed = DefaultSeed
	}
	return &Estimator{
		window:   newDurationWindow(capacity, seed),
		interval: publishInterval,
		colorize: colorize,
	}, nil
}

// Sample records one frame duration in seconds. Called once per tick,
// regardless of publish timing.
func (e *Estimator) Sample(dt float64) {
	e.window.Push(dt)
}

// FPS returns N/Σdt over the window: total frames over total time,
// the time-weighted average rate, not an arithmetic mean of 1/dt.
func (e *Estimator) FPS() (float64, error) {
	sum := e.window.Sum()
	if sum == 0 {
		return 0, errs.ErrZeroWindow
	}
	return float64(e.window.Len()) / sum, nil
}

// MaybePublish returns a freshly formatted reading when at least the
// publish interval has passed since the last one, resetting the clock
// to now. Otherwise reports no change. The first call always publishes.
func (e *Estimator) MaybePublish(now float64) (string, bool) {
	if e.primed && now-e.lastPublish < e.interval {
		return "", false
	}
	e.lastPublish = now
	e.primed = true

	fps, err := e.FPS()
	if err != nil {
		return Placeholder, true
	}
	return Format(fps, e.colorize), true
}

// Format renders the floor of fps, optionally wrapped in a color
// marker picked from the threshold ladder.
func Format(fps float64, colorize bool) string {
	text := strconv.Itoa(int(fps))
	if !colorize {
		return text
	}
	return "[color=" + colorFor(fps) + "]" + text + "[/color]"
}
