package systemui

import "github.com/go-drift/systemui/pkg/platform"

// overlayRegions computes the app-drawn bands for the current geometry and
// resolved colors. Bands with a zero inset are still passed with zero
// thickness so the native side replaces the previous set wholesale.
//
// The left and right bands double as cutout covers: when a cutout extends
// into an edge, that band takes the cutout color instead of the edge bar
// color so the camera-hole region blends with the status chrome rather than
// the navigation chrome.
func overlayRegions(g platform.InsetGeometry, colors ColorSet) []platform.OverlayRegion {
	left := colors.NavigationBarLeft.Effective()
	if g.CutoutLeft > 0 {
		left = colors.Cutout.Effective()
	}
	right := colors.NavigationBarRight.Effective()
	if g.CutoutRight > 0 {
		right = colors.Cutout.Effective()
	}

	return []platform.OverlayRegion{
		{Edge: platform.OverlayTop, Thickness: g.Top, Color: colors.StatusBar.Effective()},
		{Edge: platform.OverlayBottom, Thickness: g.Bottom, Color: colors.NavigationBar.Effective()},
		{Edge: platform.OverlayLeft, Thickness: g.Left, Color: left},
		{Edge: platform.OverlayRight, Thickness: g.Right, Color: right},
	}
}

// contentPadding computes the safe-area padding for the content surface in
// edge-to-edge mode. While the keyboard is visible its height supersedes the
// bottom inset and reverts to the navigation-bar inset when it hides.
func contentPadding(g platform.InsetGeometry, safeArea bool) platform.EdgeInsets {
	if !safeArea {
		return platform.EdgeInsets{}
	}
	bottom := g.Bottom
	if g.KeyboardVisible {
		bottom = g.KeyboardHeight
	}
	return platform.EdgeInsets{
		Top:    g.Top,
		Bottom: bottom,
		Left:   g.Left,
		Right:  g.Right,
	}
}
