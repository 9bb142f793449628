package platform

import (
	"testing"
)

// schemeBridge answers appearance reads with a configurable scheme.
type schemeBridge struct {
	scheme  string
	invokes []string
}

func (b *schemeBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	b.invokes = append(b.invokes, channel+"/"+method)
	if channel == "systemui/appearance" && method == "getColorScheme" {
		return DefaultCodec.Encode(map[string]any{"colorScheme": b.scheme})
	}
	return DefaultCodec.Encode(nil)
}
func (b *schemeBridge) StartEventStream(string) error { return nil }
func (b *schemeBridge) StopEventStream(string) error  { return nil }

func TestParseColorScheme(t *testing.T) {
	if _, err := ParseColorScheme("light"); err != nil {
		t.Errorf("light: %v", err)
	}
	if _, err := ParseColorScheme("dark"); err != nil {
		t.Errorf("dark: %v", err)
	}
	if _, err := ParseColorScheme("sepia"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestAppearanceRefreshReadsLive(t *testing.T) {
	bridge := &schemeBridge{scheme: "dark"}
	SetNativeBridge(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	t.Cleanup(ResetForTest)

	scheme, err := Appearance.Refresh()
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if scheme != ColorSchemeDark {
		t.Errorf("Refresh() = %q, want dark", scheme)
	}
	if Appearance.Current() != ColorSchemeDark {
		t.Error("Refresh did not update the cache")
	}
}

func TestAppearanceEventDedup(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	var events []ColorScheme
	remove := Appearance.AddHandler(func(s ColorScheme) { events = append(events, s) })
	t.Cleanup(remove)

	pushEvent(t, "systemui/appearance/events", map[string]any{"colorScheme": "dark"})
	pushEvent(t, "systemui/appearance/events", map[string]any{"colorScheme": "dark"})
	pushEvent(t, "systemui/appearance/events", map[string]any{"colorScheme": "light"})

	want := []ColorScheme{ColorSchemeDark, ColorSchemeLight}
	if len(events) != len(want) {
		t.Fatalf("got %d events %v, want %v", len(events), events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestAppearanceIgnoresUnknownScheme(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	pushEvent(t, "systemui/appearance/events", map[string]any{"colorScheme": "dark"})
	pushEvent(t, "systemui/appearance/events", map[string]any{"colorScheme": "sepia"})

	if Appearance.Current() != ColorSchemeDark {
		t.Errorf("unknown scheme clobbered cache: %q", Appearance.Current())
	}
}

func TestAppearanceRechecksOnResume(t *testing.T) {
	bridge := &schemeBridge{scheme: "light"}
	SetNativeBridge(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	t.Cleanup(ResetForTest)

	var events []ColorScheme
	remove := Appearance.AddHandler(func(s ColorScheme) { events = append(events, s) })
	t.Cleanup(remove)

	// App goes to the background; the OS flips to dark while nobody is told.
	pushEvent(t, "systemui/lifecycle/events", map[string]any{"state": "paused"})
	bridge.scheme = "dark"

	pushEvent(t, "systemui/lifecycle/events", map[string]any{"state": "resumed"})

	if Appearance.Current() != ColorSchemeDark {
		t.Errorf("resume re-check missed the change: %q", Appearance.Current())
	}
	if len(events) != 1 || events[0] != ColorSchemeDark {
		t.Errorf("expected one dark event, got %v", events)
	}

	// Resuming again with no change must not emit a duplicate.
	pushEvent(t, "systemui/lifecycle/events", map[string]any{"state": "paused"})
	pushEvent(t, "systemui/lifecycle/events", map[string]any{"state": "resumed"})
	if len(events) != 1 {
		t.Errorf("duplicate event on unchanged resume: %v", events)
	}
}
