package platform

import (
	"encoding/json"
	"testing"

	"github.com/go-drift/systemui/pkg/graphics"
)

// recordingBridge captures invoked methods with their decoded arguments.
type recordingBridge struct {
	invokes  []recordedInvoke
	response any
	err      error
}

type recordedInvoke struct {
	channel, method string
	args            any
}

func (b *recordingBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	var decoded any
	_ = json.Unmarshal(args, &decoded)
	b.invokes = append(b.invokes, recordedInvoke{channel: channel, method: method, args: decoded})
	if b.err != nil {
		return nil, b.err
	}
	return DefaultCodec.Encode(b.response)
}
func (b *recordingBridge) StartEventStream(string) error { return nil }
func (b *recordingBridge) StopEventStream(string) error  { return nil }

func (b *recordingBridge) last(t *testing.T) recordedInvoke {
	t.Helper()
	if len(b.invokes) == 0 {
		t.Fatal("no invokes recorded")
	}
	return b.invokes[len(b.invokes)-1]
}

func setupRecording(t *testing.T) *recordingBridge {
	t.Helper()
	bridge := &recordingBridge{}
	SetNativeBridge(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	t.Cleanup(ResetForTest)
	return bridge
}

func TestParseBarStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    BarStyle
		wantErr bool
	}{
		{input: "light", want: BarStyleLight},
		{input: "dark", want: BarStyleDark},
		{input: "LIGHT", want: BarStyleLight},
		{input: "Dark", want: BarStyleDark},
		{input: "", wantErr: true},
		{input: "dim", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBarStyle(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBarStyle(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBarStyle(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestWindowInvokesMethodChannel(t *testing.T) {
	bridge := setupRecording(t)

	if err := Window.SetStatusBarColor(graphics.RGB(0x11, 0x22, 0x33)); err != nil {
		t.Fatalf("SetStatusBarColor: %v", err)
	}

	inv := bridge.last(t)
	if inv.channel != "systemui/window" || inv.method != "setStatusBarColor" {
		t.Errorf("invoked %s/%s", inv.channel, inv.method)
	}
	args, ok := inv.args.(map[string]any)
	if !ok {
		t.Fatalf("args = %T", inv.args)
	}
	if args["color"] != float64(0xFF112233) {
		t.Errorf("color arg = %v", args["color"])
	}
}

func TestWindowOverlayRegionEncoding(t *testing.T) {
	bridge := setupRecording(t)

	regions := []OverlayRegion{
		{Edge: OverlayTop, Thickness: 80, Color: graphics.ColorBlack},
		{Edge: OverlayBottom, Thickness: 48, Color: graphics.ColorTransparent},
	}
	if err := Window.SetOverlayRegions(regions); err != nil {
		t.Fatalf("SetOverlayRegions: %v", err)
	}

	inv := bridge.last(t)
	if inv.method != "setOverlayRegions" {
		t.Fatalf("method = %s", inv.method)
	}
	encoded := inv.args.(map[string]any)["regions"].([]any)
	if len(encoded) != 2 {
		t.Fatalf("encoded %d regions", len(encoded))
	}
	first := encoded[0].(map[string]any)
	if first["edge"] != "top" || first["thickness"] != float64(80) {
		t.Errorf("first region = %v", first)
	}
}

func TestWindowHasNavigationBar(t *testing.T) {
	tests := []struct {
		name      string
		response  any
		want      bool
		wantError bool
	}{
		{name: "present", response: map[string]any{"hasNavigationBar": true}, want: true},
		{name: "absent", response: map[string]any{"hasNavigationBar": false}, want: false},
		{name: "nil response", response: nil, wantError: true},
		{name: "wrong type", response: map[string]any{"hasNavigationBar": "yes"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bridge := &recordingBridge{response: tt.response}
			SetNativeBridge(bridge)
			RegisterDispatch(func(cb func()) { cb() })
			t.Cleanup(ResetForTest)

			got, err := Window.HasNavigationBar()
			if tt.wantError {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasNavigationBar() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvokeWithoutBridge(t *testing.T) {
	t.Cleanup(ResetForTest)
	ResetForTest()

	if err := Window.SetDecorFits(false); err != ErrPlatformUnavailable {
		t.Errorf("err = %v, want ErrPlatformUnavailable", err)
	}
}
