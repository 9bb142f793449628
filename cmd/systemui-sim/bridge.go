package main

import (
	"fmt"
	"sync"

	"github.com/go-drift/systemui/pkg/graphics"
	"github.com/go-drift/systemui/pkg/platform"
)

// device is the simulated handset: fixed hardware geometry plus the mutable
// window chrome the controller drives through the bridge.
type device struct {
	mu sync.Mutex

	// Hardware.
	width, height  float64
	statusBarInset float64
	navBarInset    float64
	cutoutTop      float64
	hasNavBar      bool

	// Environment.
	landscape       bool
	keyboardVisible bool
	keyboardHeight  float64
	scheme          string

	// Chrome driven by the controller.
	decorFits      bool
	contentColor   graphics.Color
	statusBarColor graphics.Color
	navBarColor    graphics.Color
	statusVisible  bool
	navVisible     bool
	statusStyle    string
	navStyle       string
	overlays       []platform.OverlayRegion
	padding        platform.EdgeInsets
}

func newDevice(cfg DeviceConfig) *device {
	d := &device{
		width:          cfg.Width,
		height:         cfg.Height,
		statusBarInset: cfg.StatusBarInset,
		navBarInset:    cfg.NavigationBarInset,
		cutoutTop:      cfg.CutoutTop,
		hasNavBar:      !cfg.NoNavigationBar,
		scheme:         cfg.Scheme,
		decorFits:      true,
		statusVisible:  true,
		navVisible:     true,
		statusStyle:    "light",
		navStyle:       "light",
	}
	if d.scheme == "" {
		d.scheme = "light"
	}
	return d
}

// geometryPayload builds the inset event the real OS would deliver for the
// device's current orientation and keyboard state. In landscape the cutout
// moves to the left edge and the navigation bar to the right.
func (d *device) geometryPayload() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()

	p := map[string]any{
		"top":               d.statusBarInset,
		"bottom":            0.0,
		"left":              0.0,
		"right":             0.0,
		"cutoutTop":         0.0,
		"cutoutLeft":        0.0,
		"cutoutRight":       0.0,
		"isLandscape":       d.landscape,
		"isKeyboardVisible": d.keyboardVisible,
		"keyboardHeight":    0.0,
	}
	if d.landscape {
		if d.hasNavBar {
			p["right"] = d.navBarInset
		}
		p["cutoutLeft"] = d.cutoutTop
		if d.cutoutTop > d.statusBarInset {
			p["left"] = d.cutoutTop
		}
	} else {
		if d.hasNavBar {
			p["bottom"] = d.navBarInset
		}
		p["cutoutTop"] = d.cutoutTop
	}
	if d.keyboardVisible {
		p["keyboardHeight"] = d.keyboardHeight
	}
	return p
}

// snapshot returns a copy of the device safe to read while the dispatch
// queue keeps running.
func (d *device) snapshot() *device {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := &device{}
	out.width, out.height = d.width, d.height
	out.statusBarInset, out.navBarInset = d.statusBarInset, d.navBarInset
	out.cutoutTop, out.hasNavBar = d.cutoutTop, d.hasNavBar
	out.landscape = d.landscape
	out.keyboardVisible, out.keyboardHeight = d.keyboardVisible, d.keyboardHeight
	out.scheme = d.scheme
	out.decorFits = d.decorFits
	out.contentColor = d.contentColor
	out.statusBarColor, out.navBarColor = d.statusBarColor, d.navBarColor
	out.statusVisible, out.navVisible = d.statusVisible, d.navVisible
	out.statusStyle, out.navStyle = d.statusStyle, d.navStyle
	out.overlays = append([]platform.OverlayRegion(nil), d.overlays...)
	out.padding = d.padding
	return out
}

// simBridge answers platform channel traffic against the virtual device.
// requestInsets replies by queueing a geometry event, the same round trip a
// real window manager performs.
type simBridge struct {
	device     *device
	pushDevice func()
}

var _ platform.NativeBridge = (*simBridge)(nil)

func (b *simBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	var decoded any
	if len(args) > 0 {
		var err error
		decoded, err = platform.DefaultCodec.Decode(args)
		if err != nil {
			return nil, err
		}
	}
	m, _ := decoded.(map[string]any)

	switch channel {
	case "systemui/window":
		return b.handleWindow(method, m)
	case "systemui/appearance":
		if method == "getColorScheme" {
			b.device.mu.Lock()
			scheme := b.device.scheme
			b.device.mu.Unlock()
			return platform.DefaultCodec.Encode(map[string]any{"colorScheme": scheme})
		}
	}
	return platform.DefaultCodec.Encode(nil)
}

func (b *simBridge) handleWindow(method string, args map[string]any) ([]byte, error) {
	d := b.device
	d.mu.Lock()

	switch method {
	case "setDecorFits":
		d.decorFits, _ = args["fits"].(bool)
	case "setContentBackground":
		d.contentColor = argColor(args)
	case "setStatusBarColor":
		d.statusBarColor = argColor(args)
	case "setNavigationBarColor":
		d.navBarColor = argColor(args)
	case "setStatusBarVisible":
		d.statusVisible, _ = args["visible"].(bool)
	case "setNavigationBarVisible":
		d.navVisible, _ = args["visible"].(bool)
	case "setStatusBarStyle":
		d.statusStyle, _ = args["style"].(string)
	case "setNavigationBarStyle":
		d.navStyle, _ = args["style"].(string)
	case "setOverlayRegions":
		d.overlays = decodeRegions(args["regions"])
	case "clearOverlayRegions":
		d.overlays = nil
	case "setContentPadding":
		d.padding = platform.EdgeInsets{
			Top:    argFloat(args, "top"),
			Bottom: argFloat(args, "bottom"),
			Left:   argFloat(args, "left"),
			Right:  argFloat(args, "right"),
		}
	case "requestInsets":
		d.mu.Unlock()
		b.pushDevice()
		return platform.DefaultCodec.Encode(nil)
	case "hasNavigationBar":
		has := d.hasNavBar
		d.mu.Unlock()
		return platform.DefaultCodec.Encode(map[string]any{"hasNavigationBar": has})
	default:
		d.mu.Unlock()
		return nil, fmt.Errorf("window: unknown method %q", method)
	}

	d.mu.Unlock()
	return platform.DefaultCodec.Encode(nil)
}

func (b *simBridge) StartEventStream(string) error { return nil }
func (b *simBridge) StopEventStream(string) error  { return nil }

func argColor(args map[string]any) graphics.Color {
	v, _ := args["color"].(float64)
	return graphics.Color(uint32(v))
}

func argFloat(args map[string]any, key string) float64 {
	v, _ := args[key].(float64)
	return v
}

func decodeRegions(raw any) []platform.OverlayRegion {
	list, _ := raw.([]any)
	regions := make([]platform.OverlayRegion, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		edge, _ := m["edge"].(string)
		regions = append(regions, platform.OverlayRegion{
			Edge:      platform.OverlayEdge(edge),
			Thickness: argFloat(m, "thickness"),
			Color:     argColor(m),
		})
	}
	return regions
}

// dispatcher is the sim's UI thread: a single goroutine draining a queue.
// Events raised from inside a method call (requestInsets) land behind the
// call instead of deadlocking on the controller's state lock.
type dispatcher struct {
	queue chan func()
	done  chan struct{}
}

func newDispatcher() *dispatcher {
	d := &dispatcher{
		queue: make(chan func(), 256),
		done:  make(chan struct{}),
	}
	go d.loop()
	platform.RegisterDispatch(func(cb func()) { d.queue <- cb })
	return d
}

func (d *dispatcher) loop() {
	defer close(d.done)
	for fn := range d.queue {
		fn()
	}
}

// drain blocks until everything queued so far has run.
func (d *dispatcher) drain() {
	fence := make(chan struct{})
	d.queue <- func() { close(fence) }
	<-fence
}

func (d *dispatcher) stop() {
	close(d.queue)
	<-d.done
}
