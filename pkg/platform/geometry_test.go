package platform

import (
	"testing"
)

func pushEvent(t *testing.T, channel string, payload any) {
	t.Helper()
	data, err := DefaultCodec.Encode(payload)
	if err != nil {
		t.Fatalf("encode event: %v", err)
	}
	if err := HandleEvent(channel, data); err != nil {
		t.Fatalf("HandleEvent(%s): %v", channel, err)
	}
}

func TestGeometryEventParsing(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	pushEvent(t, "systemui/geometry/events", map[string]any{
		"top":               80.0,
		"bottom":            48.0,
		"left":              0.0,
		"right":             0.0,
		"cutoutTop":         80.0,
		"isLandscape":       false,
		"isKeyboardVisible": true,
		"keyboardHeight":    600.0,
	})

	got := Geometry.Current()
	want := InsetGeometry{
		Top: 80, Bottom: 48,
		CutoutTop:       80,
		KeyboardVisible: true,
		KeyboardHeight:  600,
	}
	if got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
}

func TestGeometryReplacedWholesale(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	pushEvent(t, "systemui/geometry/events", map[string]any{
		"top": 80.0, "bottom": 48.0, "cutoutTop": 80.0,
	})
	// A later snapshot without the cutout drops it entirely.
	pushEvent(t, "systemui/geometry/events", map[string]any{
		"top": 48.0, "left": 80.0, "isLandscape": true,
	})

	got := Geometry.Current()
	if got.CutoutTop != 0 || got.Bottom != 0 {
		t.Errorf("stale fields survived replacement: %+v", got)
	}
	if !got.Landscape || got.Left != 80 {
		t.Errorf("new fields missing: %+v", got)
	}
}

func TestGeometryHandlerDedup(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	var calls int
	remove := Geometry.AddHandler(func(InsetGeometry) { calls++ })
	t.Cleanup(remove)

	payload := map[string]any{"top": 80.0, "bottom": 48.0}
	pushEvent(t, "systemui/geometry/events", payload)
	pushEvent(t, "systemui/geometry/events", payload)

	if calls != 1 {
		t.Errorf("expected 1 handler call for identical snapshots, got %d", calls)
	}

	pushEvent(t, "systemui/geometry/events", map[string]any{"top": 48.0})
	if calls != 2 {
		t.Errorf("expected 2 handler calls after a real change, got %d", calls)
	}
}

func TestGeometryHandlerRemoval(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	var calls int
	remove := Geometry.AddHandler(func(InsetGeometry) { calls++ })
	remove()

	pushEvent(t, "systemui/geometry/events", map[string]any{"top": 80.0})
	if calls != 0 {
		t.Errorf("removed handler was called %d times", calls)
	}
}

func TestGeometryIgnoresMalformedEvent(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	pushEvent(t, "systemui/geometry/events", map[string]any{"top": 80.0})
	pushEvent(t, "systemui/geometry/events", "not a map")

	if got := Geometry.Current(); got.Top != 80 {
		t.Errorf("malformed event clobbered state: %+v", got)
	}
}
