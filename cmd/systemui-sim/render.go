package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/systemui/pkg/graphics"
	"github.com/go-drift/systemui/pkg/platform"
	"github.com/go-drift/systemui/pkg/systemui"
)

var keyboardGray = graphics.RGB(0x2b, 0x2b, 0x2e)

// writeSnapshot composites the device at native resolution, scales it, and
// writes it as a PNG.
func writeSnapshot(d *device, path string, scale float64) error {
	img := composite(d)

	if scale > 0 && scale != 1 {
		w := int(math.Round(float64(img.Bounds().Dx()) * scale))
		h := int(math.Round(float64(img.Bounds().Dy()) * scale))
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		img = scaled
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func composite(d *device) *image.RGBA {
	w, h := int(d.width), int(d.height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	fillRect(img, img.Bounds(), backdrop(d))
	if d.contentColor.Alpha() > 0 {
		fillRect(img, contentRect(d), d.contentColor)
	}

	if d.decorFits {
		// Standard mode: the OS draws the bars with their assigned colors.
		if d.statusVisible {
			fillRect(img, image.Rect(0, 0, w, int(d.statusBarInset)), d.statusBarColor)
		}
		if d.hasNavBar && d.navVisible {
			fillRect(img, navBarRect(d), d.navBarColor)
		}
	} else {
		// Edge-to-edge: the app's overlay bands supply the bar colors.
		for _, r := range d.overlays {
			fillRect(img, overlayRect(d, r), r.Color)
		}
	}

	if d.keyboardVisible && d.keyboardHeight > 0 {
		fillRect(img, image.Rect(0, h-int(d.keyboardHeight), w, h), keyboardGray)
	}
	return img
}

// backdrop is what shows through where nothing has been painted yet.
func backdrop(d *device) graphics.Color {
	if d.scheme == "dark" {
		return graphics.RGB(0x12, 0x12, 0x12)
	}
	return graphics.ColorWhite
}

func contentRect(d *device) image.Rectangle {
	w, h := int(d.width), int(d.height)
	if !d.decorFits {
		return image.Rect(0, 0, w, h)
	}
	r := image.Rect(0, int(d.statusBarInset), w, h)
	if d.hasNavBar {
		if d.landscape {
			r.Max.X = w - int(d.navBarInset)
		} else {
			r.Max.Y = h - int(d.navBarInset)
		}
	}
	return r
}

func navBarRect(d *device) image.Rectangle {
	w, h := int(d.width), int(d.height)
	if d.landscape {
		return image.Rect(w-int(d.navBarInset), 0, w, h)
	}
	return image.Rect(0, h-int(d.navBarInset), w, h)
}

func overlayRect(d *device, r platform.OverlayRegion) image.Rectangle {
	w, h := int(d.width), int(d.height)
	t := int(r.Thickness)
	switch r.Edge {
	case platform.OverlayTop:
		return image.Rect(0, 0, w, t)
	case platform.OverlayBottom:
		return image.Rect(0, h-t, w, h)
	case platform.OverlayLeft:
		return image.Rect(0, 0, t, h)
	case platform.OverlayRight:
		return image.Rect(w-t, 0, w, h)
	}
	return image.Rectangle{}
}

// fillRect alpha-composites a solid color over the rectangle.
func fillRect(img *image.RGBA, rect image.Rectangle, c graphics.Color) {
	r, g, b, a := c.RGBAF()
	src := image.NewUniform(color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: uint8(a*255 + 0.5),
	})
	xdraw.Draw(img, rect.Intersect(img.Bounds()), src, image.Point{}, xdraw.Over)
}

// renderChrome draws a terminal preview of the device chrome: the status bar,
// a content panel, and the navigation bar, each tinted with its effective
// color.
func renderChrome(d *device, info systemui.Info) string {
	const width = 44

	statusColor, navColor := d.statusBarColor, d.navBarColor
	if !d.decorFits {
		for _, r := range d.overlays {
			switch r.Edge {
			case platform.OverlayTop:
				statusColor = r.Color
			case platform.OverlayBottom:
				navColor = r.Color
			}
		}
	}

	bar := func(label string, c graphics.Color, visible bool) string {
		if !visible {
			return lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Faint(true).
				Render(label + " (hidden)")
		}
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Background(lipgloss.Color(c.Hex())).
			Foreground(contrastText(c)).
			Render(label + " " + c.Hex())
	}

	content := lipgloss.NewStyle().
		Width(width).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(effectiveContent(d).Hex())).
		Foreground(contrastText(effectiveContent(d))).
		Render(contentLabel(d, info))

	rows := []string{bar("status", statusColor, d.statusVisible), content}
	if d.hasNavBar {
		rows = append(rows, bar("navigation", navColor, d.navVisible))
	}
	if d.keyboardVisible {
		rows = append(rows, bar("keyboard", keyboardGray, true))
	}

	frame := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Render(frame)
}

func effectiveContent(d *device) graphics.Color {
	if d.contentColor.Alpha() > 0 {
		return d.contentColor
	}
	return backdrop(d)
}

func contentLabel(d *device, info systemui.Info) string {
	mode := "standard"
	if info.IsEdgeToEdgeEnabled {
		mode = "edge-to-edge"
	}
	orient := "portrait"
	if d.landscape {
		orient = "landscape"
	}
	return fmt.Sprintf("%s / %s / %s", mode, orient, d.scheme)
}

func contrastText(c graphics.Color) lipgloss.Color {
	if systemui.RecommendedBarStyle(c) == platform.BarStyleLight {
		return lipgloss.Color("#1a1a1a")
	}
	return lipgloss.Color("#fafafa")
}

func printInfo(w io.Writer, info systemui.Info) {
	var b strings.Builder
	fmt.Fprintf(&b, "statusBarHeight:      %g\n", info.StatusBarHeight)
	fmt.Fprintf(&b, "navigationBarHeight:  %g\n", info.NavigationBarHeight)
	fmt.Fprintf(&b, "leftInset:            %g\n", info.LeftInset)
	fmt.Fprintf(&b, "rightInset:           %g\n", info.RightInset)
	fmt.Fprintf(&b, "cutout:               top=%g left=%g right=%g\n", info.CutoutTop, info.CutoutLeft, info.CutoutRight)
	fmt.Fprintf(&b, "edgeToEdge:           %t\n", info.IsEdgeToEdgeEnabled)
	fmt.Fprintf(&b, "safeArea:             %t\n", info.IsSafeAreaEnabled)
	fmt.Fprintf(&b, "statusBarVisible:     %t\n", info.IsStatusBarVisible)
	fmt.Fprintf(&b, "navigationBarVisible: %t\n", info.IsNavigationBarVisible)
	fmt.Fprintf(&b, "colorScheme:          %s\n", info.ColorScheme)
	fmt.Fprint(w, b.String())
}
