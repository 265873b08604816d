package settings

import (
	"os"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/bugVanisher/hud/common/errs"
	"github.com/bugVanisher/hud/ratio"
)

// Display 显示设置,叠加层上展示的可变项
type Display struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	WindowMode string `json:"window_mode"` // windowed | borderless | fullscreen
	VSync      bool   `json:"vsync"`
	Quality    string `json:"quality"` // low | medium | high | ultra
}

// Default ...
func Default() Display {
	return Display{
		Width:      1920,
		Height:     1080,
		WindowMode: "windowed",
		VSync:      true,
		Quality:    "high",
	}
}

// Resolution formats width/height with the reduced aspect ratio,
// e.g. "1920x1080 (16:9)".
func (d Display) Resolution() string {
	return strconv.Itoa(d.Width) + "x" + strconv.Itoa(d.Height) +
		" (" + ratio.Ratio(d.Width, d.Height) + ")"
}

// Lines formats the settings as overlay display lines.
func (d Display) Lines() []string {
	vsync := "off"
	if d.VSync {
		vsync = "on"
	}
	return []string{
		"Resolution: " + d.Resolution(),
		"Mode: " + d.WindowMode,
		"VSync: " + vsync,
		"Quality: " + d.Quality,
	}
}

// Path returns the settings file location under the user config dir.
// The directory is not guaranteed to exist; Save creates it.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hud", "settings.json"), nil
}

// Load 从文件读取设置
func Load(path string) (Display, error) {
	d := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return d, errs.Wrapf(err, "read settings %s", path)
	}
	if err := jsoniter.Unmarshal(data, &d); err != nil {
		return Default(), errs.Wrapf(err, "parse settings %s", path)
	}
	return d, nil
}

// Save 将设置写入文件,目录不存在时创建
func Save(path string, d Display) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errs.Wrapf(err, "create settings dir")
	}
	data, err := jsoniter.MarshalIndent(d, "", "  ")
	if err != nil {
		return errs.Wrapf(err, "encode settings")
	}
	return os.WriteFile(path, data, 0644)
}
