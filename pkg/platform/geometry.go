package platform

import "sync"

// EdgeInsets represents distances from the four window edges, in device pixels.
type EdgeInsets struct {
	Top, Bottom, Left, Right float64
}

// InsetGeometry is a measured snapshot of the window's inset state. The native
// layer replaces it wholesale on every rotation, cutout, or keyboard change;
// consumers only ever read the latest snapshot.
type InsetGeometry struct {
	// Safe-area insets from the system bars and cutout combined.
	Top, Bottom, Left, Right float64

	// Cutout extents, a subset of the insets above. Only top/left/right
	// bands are reported; other shapes are not modeled.
	CutoutTop, CutoutLeft, CutoutRight float64

	// Landscape reports the current window orientation.
	Landscape bool

	// KeyboardVisible and KeyboardHeight describe the on-screen keyboard.
	// While the keyboard is showing its height supersedes the bottom inset
	// for content padding purposes.
	KeyboardVisible bool
	KeyboardHeight  float64
}

// Geometry provides the window inset geometry reported by the native layer.
var Geometry = &GeometryService{
	events: NewEventChannel("systemui/geometry/events"),
}

// GeometryService manages inset geometry events.
type GeometryService struct {
	events   *EventChannel
	current  InsetGeometry
	handlers []func(InsetGeometry)
	mu       sync.RWMutex
}

func init() {
	initGeometryListeners()
	registerBuiltinInit(initGeometryListeners)
}

func initGeometryListeners() {
	Geometry.events.Listen(EventHandler{
		OnEvent: func(data any) {
			m, ok := data.(map[string]any)
			if !ok {
				return
			}
			Geometry.update(parseInsetGeometry(m))
		},
	})
}

// parseInsetGeometry decodes a geometry event payload. Missing fields stay zero.
func parseInsetGeometry(m map[string]any) InsetGeometry {
	g := InsetGeometry{}
	g.Top = num(m, "top")
	g.Bottom = num(m, "bottom")
	g.Left = num(m, "left")
	g.Right = num(m, "right")
	g.CutoutTop = num(m, "cutoutTop")
	g.CutoutLeft = num(m, "cutoutLeft")
	g.CutoutRight = num(m, "cutoutRight")
	g.KeyboardHeight = num(m, "keyboardHeight")
	if v, ok := m["isLandscape"].(bool); ok {
		g.Landscape = v
	}
	if v, ok := m["isKeyboardVisible"].(bool); ok {
		g.KeyboardVisible = v
	}
	return g
}

func num(m map[string]any, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}

// Current returns the latest geometry snapshot.
func (g *GeometryService) Current() InsetGeometry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current
}

// AddHandler registers a handler to be called on geometry changes.
// Returns a function that removes the handler.
func (g *GeometryService) AddHandler(handler func(InsetGeometry)) func() {
	g.mu.Lock()
	g.handlers = append(g.handlers, handler)
	index := len(g.handlers) - 1
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		if index < len(g.handlers) {
			g.handlers[index] = nil
		}
		g.mu.Unlock()
	}
}

// update replaces the current snapshot and notifies handlers.
// Identical snapshots are dropped without notification.
func (g *GeometryService) update(next InsetGeometry) {
	g.mu.Lock()
	if g.current == next {
		g.mu.Unlock()
		return
	}
	g.current = next
	handlers := make([]func(InsetGeometry), len(g.handlers))
	copy(handlers, g.handlers)
	g.mu.Unlock()

	for _, h := range handlers {
		if h != nil {
			h(next)
		}
	}
}
