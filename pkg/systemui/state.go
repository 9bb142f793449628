package systemui

import "github.com/go-drift/systemui/pkg/platform"

// State is the controller-owned window configuration. It lives for the whole
// app session and is mutated only by the controller's serialized pipeline.
type State struct {
	EdgeToEdge           bool
	SafeArea             bool
	StatusBarVisible     bool
	NavigationBarVisible bool

	// Zero styles mean the OS default has never been overridden.
	StatusBarStyle     platform.BarStyle
	NavigationBarStyle platform.BarStyle

	Colors   ColorSet
	Geometry platform.InsetGeometry
	Scheme   platform.ColorScheme
}

// defaultState returns the documented startup configuration: edge-to-edge
// off, both bars visible, safe area on, all colors unset.
func defaultState() State {
	return State{
		SafeArea:             true,
		StatusBarVisible:     true,
		NavigationBarVisible: true,
		Scheme:               platform.ColorSchemeLight,
	}
}

// Info is the consolidated snapshot returned by Controller.Info.
// All dimensions are in device pixels.
type Info struct {
	StatusBarHeight     float64
	NavigationBarHeight float64
	LeftInset           float64
	RightInset          float64

	CutoutTop   float64
	CutoutLeft  float64
	CutoutRight float64

	IsEdgeToEdgeEnabled    bool
	IsSafeAreaEnabled      bool
	IsStatusBarVisible     bool
	IsNavigationBarVisible bool

	ColorScheme platform.ColorScheme
}
