package systemui

import (
	"testing"

	"github.com/go-drift/systemui/pkg/graphics"
	"github.com/go-drift/systemui/pkg/platform"
)

func TestRecommendedBarStyle(t *testing.T) {
	tests := []struct {
		name string
		bg   graphics.Color
		want platform.BarStyle
	}{
		{"white", graphics.ColorWhite, platform.BarStyleLight},
		{"black", graphics.ColorBlack, platform.BarStyleDark},
		{"near white", graphics.RGB(0xF0, 0xF0, 0xF0), platform.BarStyleLight},
		{"mid gray", graphics.RGB(0x80, 0x80, 0x80), platform.BarStyleDark},
		{"navy", graphics.RGB(0x10, 0x10, 0x40), platform.BarStyleDark},
		{"transparent", graphics.ColorTransparent, platform.BarStyleDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecommendedBarStyle(tt.bg); got != tt.want {
				t.Errorf("RecommendedBarStyle(%v) = %q, want %q", tt.bg.Hex(), got, tt.want)
			}
		})
	}
}
