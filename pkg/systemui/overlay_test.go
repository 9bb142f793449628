package systemui

import (
	"testing"

	"github.com/go-drift/systemui/pkg/graphics"
	"github.com/go-drift/systemui/pkg/platform"
)

func regionByEdge(t *testing.T, regions []platform.OverlayRegion, edge platform.OverlayEdge) platform.OverlayRegion {
	t.Helper()
	for _, r := range regions {
		if r.Edge == edge {
			return r
		}
	}
	t.Fatalf("no region for edge %q", edge)
	return platform.OverlayRegion{}
}

func TestOverlayRegionSizing(t *testing.T) {
	content := graphics.RGB(0x10, 0x10, 0x14)
	colors := Resolve(ColorSet{}, PartialColors{Content: &content})
	g := platform.InsetGeometry{Top: 80, Bottom: 48, Left: 12, Right: 16}

	regions := overlayRegions(g, colors)
	if len(regions) != 4 {
		t.Fatalf("got %d regions", len(regions))
	}

	if r := regionByEdge(t, regions, platform.OverlayTop); r.Thickness != 80 || r.Color != content {
		t.Errorf("top = %+v", r)
	}
	if r := regionByEdge(t, regions, platform.OverlayBottom); r.Thickness != 48 || r.Color != content {
		t.Errorf("bottom = %+v", r)
	}
	if r := regionByEdge(t, regions, platform.OverlayLeft); r.Thickness != 12 {
		t.Errorf("left = %+v", r)
	}
	if r := regionByEdge(t, regions, platform.OverlayRight); r.Thickness != 16 {
		t.Errorf("right = %+v", r)
	}
}

func TestOverlayUnsetColorsAreTransparent(t *testing.T) {
	g := platform.InsetGeometry{Top: 80, Bottom: 48}
	regions := overlayRegions(g, ColorSet{})

	for _, r := range regions {
		if r.Color != graphics.ColorTransparent {
			t.Errorf("%s region = %v, want transparent", r.Edge, r.Color)
		}
	}
}

func TestOverlayCutoutBandsTakeCutoutColor(t *testing.T) {
	cutout := graphics.ColorBlack
	barColor := graphics.RGB(0x20, 0x20, 0x20)
	colors := Resolve(ColorSet{}, PartialColors{
		NavigationBarLeft:  &barColor,
		NavigationBarRight: &barColor,
		Cutout:             &cutout,
	})

	// Landscape with the camera hole on the left edge.
	g := platform.InsetGeometry{Top: 24, Bottom: 48, Left: 80, Right: 16, CutoutLeft: 80, Landscape: true}
	regions := overlayRegions(g, colors)

	if r := regionByEdge(t, regions, platform.OverlayLeft); r.Color != cutout {
		t.Errorf("left band = %v, want cutout color %v", r.Color, cutout)
	}
	if r := regionByEdge(t, regions, platform.OverlayRight); r.Color != barColor {
		t.Errorf("right band = %v, want bar color %v", r.Color, barColor)
	}
}

func TestContentPadding(t *testing.T) {
	g := platform.InsetGeometry{Top: 80, Bottom: 48, Left: 12, Right: 16}

	got := contentPadding(g, true)
	want := platform.EdgeInsets{Top: 80, Bottom: 48, Left: 12, Right: 16}
	if got != want {
		t.Errorf("padding = %+v, want %+v", got, want)
	}

	if got := contentPadding(g, false); got != (platform.EdgeInsets{}) {
		t.Errorf("safe area off: padding = %+v, want zero", got)
	}
}

func TestContentPaddingKeyboardSupersedesBottom(t *testing.T) {
	g := platform.InsetGeometry{Top: 80, Bottom: 48, KeyboardVisible: true, KeyboardHeight: 600}

	if got := contentPadding(g, true); got.Bottom != 600 {
		t.Errorf("bottom = %v, want keyboard height 600", got.Bottom)
	}

	g.KeyboardVisible = false
	if got := contentPadding(g, true); got.Bottom != 48 {
		t.Errorf("bottom = %v, want bar inset 48 after keyboard hides", got.Bottom)
	}
}
