package stats

// 帧率分段配色,升序扫描,首个命中生效
type colorBand struct {
	below float64
	hex   string
}

var colorBands = []colorBand{
	{30, "#ff0000"},
	{60, "#ffff00"},
	{120, "#00ff00"},
	{240, "#00ffff"},
}

// everything at or above the last band's bound
const colorTop = "#ff00ff"

func colorFor(fps float64) string {
	for _, band := range colorBands {
		if fps < band.below {
			return band.hex
		}
	}
	return colorTop
}
