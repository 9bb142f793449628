package systemui

import (
	"github.com/go-drift/systemui/pkg/graphics"
	"github.com/go-drift/systemui/pkg/platform"
)

// styleLuminanceThreshold splits backgrounds into "needs dark icons" and
// "needs light icons". Relative luminance, not perceived lightness: mid
// grays land on the dark-icon side only when genuinely bright.
const styleLuminanceThreshold = 0.5

// RecommendedBarStyle returns the icon style that keeps bar icons legible on
// the given background: bright backgrounds get the "light" style (dark
// icons), dark backgrounds the "dark" style (light icons). Transparent
// backgrounds recommend the dark style, since content usually shows through.
func RecommendedBarStyle(bg graphics.Color) platform.BarStyle {
	if bg.Alpha() == 0 {
		return platform.BarStyleDark
	}
	if bg.Luminance() >= styleLuminanceThreshold {
		return platform.BarStyleLight
	}
	return platform.BarStyleDark
}
