package systemui

import (
	"github.com/go-drift/systemui/pkg/graphics"
	"github.com/go-drift/systemui/pkg/platform"
)

// Surface is the thin per-platform binding the controller drives. Each
// method maps to one primitive OS call and must be idempotent: re-applying
// the current value is a harmless no-op at the OS level.
//
// The production implementation is platform.Window; tests substitute a fake.
type Surface interface {
	SetDecorFits(fits bool) error
	SetContentBackground(c graphics.Color) error
	SetStatusBarColor(c graphics.Color) error
	SetNavigationBarColor(c graphics.Color) error
	SetStatusBarVisible(visible bool) error
	SetNavigationBarVisible(visible bool) error
	SetStatusBarStyle(style platform.BarStyle) error
	SetNavigationBarStyle(style platform.BarStyle) error
	SetOverlayRegions(regions []platform.OverlayRegion) error
	ClearOverlayRegions() error
	SetContentPadding(insets platform.EdgeInsets) error
	RequestInsets() error
	HasNavigationBar() (bool, error)
}

var _ Surface = (*platform.WindowService)(nil)
