package sysinfo

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot holds the static hardware/OS facts shown on the overlay.
// None of this changes over a run; capture it once at startup.
type Snapshot struct {
	Hostname    string
	OS          string
	Kernel      string
	CPU         string
	Cores       int
	Threads     int
	TotalRAMMiB uint64
	GoVersion   string
}

// Capture 采集一次系统信息,失败的字段降级为空
// Per-probe failures are logged and leave the field at its zero value;
// a partial snapshot is still usable display data.
func Capture() *Snapshot {
	s := &Snapshot{
		OS:        runtime.GOOS + "/" + runtime.GOARCH,
		Threads:   runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	if hi, err := host.Info(); err == nil {
		s.Hostname = hi.Hostname
		s.OS = strings.TrimSpace(hi.Platform + " " + hi.PlatformVersion)
		s.Kernel = hi.KernelVersion
	} else {
		log.Warn().Err(err).Msg("host info probe failed")
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		s.CPU = strings.TrimSpace(infos[0].ModelName)
	} else if err != nil {
		log.Warn().Err(err).Msg("cpu info probe failed")
	}
	if cores, err := cpu.Counts(false); err == nil && cores > 0 {
		s.Cores = cores
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.TotalRAMMiB = vm.Total / 1024 / 1024
	} else {
		log.Warn().Err(err).Msg("memory probe failed")
	}

	return s
}

// Lines formats the snapshot as overlay display lines, skipping fields
// that failed to probe.
func (s *Snapshot) Lines() []string {
	lines := make([]string, 0, 6)
	if s.Hostname != "" {
		lines = append(lines, "Host: "+s.Hostname)
	}
	lines = append(lines, "OS: "+s.OS)
	if s.Kernel != "" {
		lines = append(lines, "Kernel: "+s.Kernel)
	}
	if s.CPU != "" {
		cpuLine := "CPU: " + s.CPU
		if s.Cores > 0 {
			cpuLine += " (" + strconv.Itoa(s.Cores) + "C/" + strconv.Itoa(s.Threads) + "T)"
		}
		lines = append(lines, cpuLine)
	}
	if s.TotalRAMMiB > 0 {
		lines = append(lines, "RAM: "+strconv.FormatUint(s.TotalRAMMiB, 10)+" MiB")
	}
	lines = append(lines, "Runtime: "+s.GoVersion)
	return lines
}
