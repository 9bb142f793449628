package platform

import (
	"fmt"
	"strings"

	"github.com/go-drift/systemui/pkg/graphics"
)

// BarStyle indicates a system bar's icon color scheme: "light" means dark
// icons for a light background, "dark" means light icons for a dark one.
type BarStyle string

const (
	BarStyleLight BarStyle = "light"
	BarStyleDark  BarStyle = "dark"
)

// ParseBarStyle validates a bar style string, case-insensitively.
func ParseBarStyle(s string) (BarStyle, error) {
	switch BarStyle(strings.ToLower(s)) {
	case BarStyleLight:
		return BarStyleLight, nil
	case BarStyleDark:
		return BarStyleDark, nil
	default:
		return "", fmt.Errorf("unknown bar style %q", s)
	}
}

// OverlayEdge identifies which window edge an overlay band is attached to.
type OverlayEdge string

const (
	OverlayTop    OverlayEdge = "top"
	OverlayBottom OverlayEdge = "bottom"
	OverlayLeft   OverlayEdge = "left"
	OverlayRight  OverlayEdge = "right"
)

// OverlayRegion is an app-drawn colored band covering a system-bar or cutout
// area during edge-to-edge mode. The band spans the full window along its
// edge; Thickness is its extent into the window in device pixels.
type OverlayRegion struct {
	Edge      OverlayEdge
	Thickness float64
	Color     graphics.Color
}

// Window is the method-channel binding to the native window chrome. Every
// method is a single idempotent native call; repeating a call with the same
// arguments converges to the same window state.
var Window = &WindowService{
	channel: NewMethodChannel("systemui/window"),
}

// WindowService issues window chrome operations to the native side.
type WindowService struct {
	channel *MethodChannel
}

// SetDecorFits controls whether the OS lays the content out inside the system
// bars (true) or lets it extend underneath them (false).
func (w *WindowService) SetDecorFits(fits bool) error {
	_, err := w.channel.Invoke("setDecorFits", map[string]any{"fits": fits})
	return err
}

// SetContentBackground paints the window's content surface.
func (w *WindowService) SetContentBackground(c graphics.Color) error {
	_, err := w.channel.Invoke("setContentBackground", map[string]any{"color": uint32(c)})
	return err
}

// SetStatusBarColor sets the status bar background via the standard
// (non-overlay) OS API.
func (w *WindowService) SetStatusBarColor(c graphics.Color) error {
	_, err := w.channel.Invoke("setStatusBarColor", map[string]any{"color": uint32(c)})
	return err
}

// SetNavigationBarColor sets the navigation bar background via the standard
// (non-overlay) OS API.
func (w *WindowService) SetNavigationBarColor(c graphics.Color) error {
	_, err := w.channel.Invoke("setNavigationBarColor", map[string]any{"color": uint32(c)})
	return err
}

// SetStatusBarVisible shows or hides the status bar. Hidden bars stay
// revealable by an edge swipe.
func (w *WindowService) SetStatusBarVisible(visible bool) error {
	_, err := w.channel.Invoke("setStatusBarVisible", map[string]any{"visible": visible})
	return err
}

// SetNavigationBarVisible shows or hides the navigation bar.
func (w *WindowService) SetNavigationBarVisible(visible bool) error {
	_, err := w.channel.Invoke("setNavigationBarVisible", map[string]any{"visible": visible})
	return err
}

// SetStatusBarStyle sets the status bar icon style.
func (w *WindowService) SetStatusBarStyle(style BarStyle) error {
	_, err := w.channel.Invoke("setStatusBarStyle", map[string]any{"style": string(style)})
	return err
}

// SetNavigationBarStyle sets the navigation bar icon style.
func (w *WindowService) SetNavigationBarStyle(style BarStyle) error {
	_, err := w.channel.Invoke("setNavigationBarStyle", map[string]any{"style": string(style)})
	return err
}

// SetOverlayRegions replaces the app-drawn overlay bands. Passing the full
// set on every update keeps the native side free of diffing.
func (w *WindowService) SetOverlayRegions(regions []OverlayRegion) error {
	encoded := make([]map[string]any, 0, len(regions))
	for _, r := range regions {
		encoded = append(encoded, map[string]any{
			"edge":      string(r.Edge),
			"thickness": r.Thickness,
			"color":     uint32(r.Color),
		})
	}
	_, err := w.channel.Invoke("setOverlayRegions", map[string]any{"regions": encoded})
	return err
}

// ClearOverlayRegions removes all app-drawn overlay bands.
func (w *WindowService) ClearOverlayRegions() error {
	_, err := w.channel.Invoke("clearOverlayRegions", nil)
	return err
}

// SetContentPadding pads the content surface away from the window edges.
func (w *WindowService) SetContentPadding(insets EdgeInsets) error {
	_, err := w.channel.Invoke("setContentPadding", map[string]any{
		"top":    insets.Top,
		"bottom": insets.Bottom,
		"left":   insets.Left,
		"right":  insets.Right,
	})
	return err
}

// RequestInsets asks native to re-measure and push a fresh geometry event.
func (w *WindowService) RequestInsets() error {
	_, err := w.channel.Invoke("requestInsets", nil)
	return err
}

// HasNavigationBar reports whether the platform has a navigation bar at all.
// Operations targeting a missing bar are no-ops, not errors.
func (w *WindowService) HasNavigationBar() (bool, error) {
	result, err := w.channel.Invoke("hasNavigationBar", nil)
	if err != nil {
		return false, err
	}
	m, ok := result.(map[string]any)
	if !ok {
		return false, fmt.Errorf("hasNavigationBar: unexpected response %T", result)
	}
	has, ok := m["hasNavigationBar"].(bool)
	if !ok {
		return false, fmt.Errorf("hasNavigationBar: unexpected response %v", result)
	}
	return has, nil
}
