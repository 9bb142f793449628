package graphics

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "opaque lowercase", input: "#11aaff", want: Color(0xFF11AAFF)},
		{name: "opaque uppercase", input: "#11AAFF", want: Color(0xFF11AAFF)},
		{name: "mixed case", input: "#AbCdEf", want: Color(0xFFABCDEF)},
		{name: "with alpha", input: "#11aaff80", want: Color(0x8011AAFF)},
		{name: "fully transparent", input: "#00000000", want: Color(0x00000000)},
		{name: "surrounding whitespace", input: "  #112233  ", want: Color(0xFF112233)},
		{name: "missing hash", input: "112233", wantErr: true},
		{name: "short form", input: "#abc", wantErr: true},
		{name: "seven digits", input: "#1122334", wantErr: true},
		{name: "not hex", input: "#11223g", wantErr: true},
		{name: "not a color", input: "notacolor", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "bare hash", input: "#", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %#x, want %#x", tt.input, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color(0xFF11AAFF), "#11aaff"},
		{Color(0x8011AAFF), "#11aaff80"},
		{ColorBlack, "#000000"},
		{ColorTransparent, "#00000000"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex(%#x) = %q, want %q", uint32(tt.color), got, tt.want)
		}
		back, err := ParseHex(tt.color.Hex())
		if err != nil {
			t.Fatalf("ParseHex(Hex(%#x)): %v", uint32(tt.color), err)
		}
		if back != tt.color {
			t.Errorf("round trip %#x -> %q -> %#x", uint32(tt.color), tt.color.Hex(), uint32(back))
		}
	}
}

func TestLuminanceOrdering(t *testing.T) {
	white := ColorWhite.Luminance()
	gray := RGB(0x80, 0x80, 0x80).Luminance()
	black := ColorBlack.Luminance()

	if !(white > gray && gray > black) {
		t.Errorf("luminance not ordered: white=%v gray=%v black=%v", white, gray, black)
	}
	if white < 0.99 {
		t.Errorf("white luminance = %v, want ~1.0", white)
	}
	if black > 0.01 {
		t.Errorf("black luminance = %v, want ~0.0", black)
	}
}

func TestAlpha(t *testing.T) {
	if a := Color(0x8000FF00).Alpha(); a < 0.49 || a > 0.52 {
		t.Errorf("Alpha() = %v, want ~0.5", a)
	}
	if !ColorWhite.IsOpaque() {
		t.Error("white should be opaque")
	}
	if ColorTransparent.IsOpaque() {
		t.Error("transparent should not be opaque")
	}
	if got := ColorWhite.WithAlpha(0); got != Color(0x00FFFFFF) {
		t.Errorf("WithAlpha(0) = %#x", uint32(got))
	}
}
