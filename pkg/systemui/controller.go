package systemui

import (
	"sync"

	"github.com/go-drift/systemui/pkg/errors"
	"github.com/go-drift/systemui/pkg/graphics"
	"github.com/go-drift/systemui/pkg/platform"
)

// Controller owns one window's chrome configuration. All public operations
// may be called from any goroutine; each is marshaled onto the UI thread via
// platform.Dispatch and serialized against every other mutation, including
// inbound geometry and appearance events.
type Controller struct {
	surface Surface

	mu    sync.Mutex
	state State

	navBarKnown   bool
	navBarPresent bool

	handlersMu     sync.Mutex
	schemeHandlers []func(platform.ColorScheme)

	removeGeometry func()
	removeScheme   func()
}

// NewController creates a controller bound to the given surface. Pass nil to
// use the platform.Window method-channel binding. The OS color scheme is read
// at construction; geometry and appearance changes are subscribed to until
// Close is called.
func NewController(surface Surface) *Controller {
	if surface == nil {
		surface = platform.Window
	}
	c := &Controller{
		surface: surface,
		state:   defaultState(),
	}
	if scheme, err := platform.Appearance.Refresh(); err == nil {
		c.state.Scheme = scheme
	} else {
		c.state.Scheme = platform.Appearance.Current()
	}
	c.state.Geometry = platform.Geometry.Current()

	c.removeGeometry = platform.Geometry.AddHandler(c.onGeometryChange)
	c.removeScheme = platform.Appearance.AddHandler(c.onSchemeChange)
	return c
}

// Close detaches the controller from geometry and appearance events.
// It does not undo any applied window state.
func (c *Controller) Close() {
	if c.removeGeometry != nil {
		c.removeGeometry()
		c.removeGeometry = nil
	}
	if c.removeScheme != nil {
		c.removeScheme()
		c.removeScheme = nil
	}
}

// Configure merges every supplied option into the current state and applies
// the result, in a fixed order: colors resolve first, then the edge-to-edge
// transition, then colors land on whichever surface is active, then
// visibility, then icon styles. A validation failure rejects the whole call
// before any state changes. A platform failure rejects after the steps that
// already ran; those steps are idempotent, so retrying the full call
// converges.
func (c *Controller) Configure(opts Options) error {
	return c.do(func() error { return c.applyLocked("systemui.Configure", opts) })
}

// SetBackgroundColors is Configure restricted to the color fields.
func (c *Controller) SetBackgroundColors(colors BackgroundColors) error {
	opts := Options{
		ContentBackgroundColor:            colors.Content,
		StatusBarBackgroundColor:          colors.StatusBar,
		NavigationBarBackgroundColor:      colors.NavigationBar,
		NavigationBarLeftBackgroundColor:  colors.NavigationBarLeft,
		NavigationBarRightBackgroundColor: colors.NavigationBarRight,
		CutoutBackgroundColor:             colors.Cutout,
	}
	return c.do(func() error { return c.applyLocked("systemui.SetBackgroundColors", opts) })
}

// SetBarStyles is Configure restricted to the icon styles. Empty strings
// leave the corresponding style untouched.
func (c *Controller) SetBarStyles(statusBar, navigationBar string) error {
	opts := Options{StatusBarStyle: statusBar, NavigationBarStyle: navigationBar}
	return c.do(func() error { return c.applyLocked("systemui.SetBarStyles", opts) })
}

// SetStatusBarVisibility shows or hides the status bar.
func (c *Controller) SetStatusBarVisibility(visible bool) error {
	opts := Options{StatusBarVisible: &visible}
	return c.do(func() error { return c.applyLocked("systemui.SetStatusBarVisibility", opts) })
}

// SetNavigationBarVisibility shows or hides the navigation bar. On platforms
// without a navigation bar this is a no-op, not an error.
func (c *Controller) SetNavigationBarVisibility(visible bool) error {
	opts := Options{NavigationBarVisible: &visible}
	return c.do(func() error { return c.applyLocked("systemui.SetNavigationBarVisibility", opts) })
}

// SetEdgeToEdge enables or disables edge-to-edge mode.
func (c *Controller) SetEdgeToEdge(enabled bool) error {
	opts := Options{EdgeToEdge: &enabled}
	return c.do(func() error { return c.applyLocked("systemui.SetEdgeToEdge", opts) })
}

// Info returns the consolidated chrome snapshot.
func (c *Controller) Info() Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	g := c.state.Geometry
	return Info{
		StatusBarHeight:        g.Top,
		NavigationBarHeight:    g.Bottom,
		LeftInset:              g.Left,
		RightInset:             g.Right,
		CutoutTop:              g.CutoutTop,
		CutoutLeft:             g.CutoutLeft,
		CutoutRight:            g.CutoutRight,
		IsEdgeToEdgeEnabled:    c.state.EdgeToEdge,
		IsSafeAreaEnabled:      c.state.SafeArea,
		IsStatusBarVisible:     c.state.StatusBarVisible,
		IsNavigationBarVisible: c.state.NavigationBarVisible,
		ColorScheme:            c.state.Scheme,
	}
}

// ColorScheme re-reads the scheme from the OS rather than echoing the cache:
// the OS can flip the scheme without notifying a late-attached listener. The
// cache is updated as a side effect, and a change fires the usual handlers.
func (c *Controller) ColorScheme() (platform.ColorScheme, error) {
	scheme, err := platform.Appearance.Refresh()
	if err != nil {
		return "", &errors.Error{Op: "systemui.ColorScheme", Kind: errors.KindPlatform, Err: err}
	}
	return scheme, nil
}

// AddColorSchemeHandler registers a handler for colorSchemeChanged events.
// Dedup happens upstream: unchanged schemes never reach handlers. Returns a
// function that removes the handler.
func (c *Controller) AddColorSchemeHandler(handler func(platform.ColorScheme)) func() {
	c.handlersMu.Lock()
	c.schemeHandlers = append(c.schemeHandlers, handler)
	index := len(c.schemeHandlers) - 1
	c.handlersMu.Unlock()

	return func() {
		c.handlersMu.Lock()
		if index < len(c.schemeHandlers) {
			c.schemeHandlers[index] = nil
		}
		c.handlersMu.Unlock()
	}
}

// do marshals fn onto the UI thread and waits for completion. Without a
// registered dispatcher it runs on the caller's goroutine; the state mutex
// serializes either way.
func (c *Controller) do(fn func() error) error {
	done := make(chan error, 1)
	run := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		done <- fn()
	}
	if !platform.Dispatch(run) {
		run()
	}
	return <-done
}

// schedule queues fn on the UI thread without waiting. Used for inbound OS
// events, which must not block their delivery thread.
func (c *Controller) schedule(fn func()) {
	run := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		fn()
	}
	if !platform.Dispatch(run) {
		run()
	}
}

// onGeometryChange re-runs the layout step with the latest snapshot. Reading
// Current at apply time rather than using the event payload gives
// last-write-wins behavior when several changes queue up: superseded
// intermediate snapshots are discarded, never replayed.
func (c *Controller) onGeometryChange(platform.InsetGeometry) {
	c.schedule(func() {
		c.applyGeometryLocked(platform.Geometry.Current())
	})
}

func (c *Controller) applyGeometryLocked(g platform.InsetGeometry) {
	c.state.Geometry = g
	if !c.state.EdgeToEdge {
		return
	}
	// Colors are not re-resolved here; geometry changes reuse the last
	// resolved set.
	if err := c.surface.SetOverlayRegions(overlayRegions(g, c.state.Colors)); err != nil {
		reportApply("systemui.geometryChange", err)
	}
	if err := c.surface.SetContentPadding(contentPadding(g, c.state.SafeArea)); err != nil {
		reportApply("systemui.geometryChange", err)
	}
}

func (c *Controller) onSchemeChange(scheme platform.ColorScheme) {
	c.schedule(func() { c.state.Scheme = scheme })

	c.handlersMu.Lock()
	handlers := make([]func(platform.ColorScheme), len(c.schemeHandlers))
	copy(handlers, c.schemeHandlers)
	c.handlersMu.Unlock()

	for _, h := range handlers {
		if h != nil {
			h(scheme)
		}
	}
}

// applyLocked is the single merge-and-apply pipeline behind every mutating
// operation.
func (c *Controller) applyLocked(op string, opts Options) error {
	ch, err := opts.parse(op)
	if err != nil {
		return err
	}

	// (1) Resolve colors.
	c.state.Colors = Resolve(c.state.Colors, ch.colors)

	// (2) Mode transition.
	if ch.edgeToEdge != nil {
		if err := c.transitionLocked(op, *ch.edgeToEdge); err != nil {
			return err
		}
	}
	if ch.safeArea != nil && *ch.safeArea != c.state.SafeArea {
		c.state.SafeArea = *ch.safeArea
		if c.state.EdgeToEdge {
			if err := platformErr(op, c.surface.SetContentPadding(contentPadding(c.state.Geometry, c.state.SafeArea))); err != nil {
				return err
			}
		}
	}

	// (3) Colors onto whichever surface is active.
	if err := c.applyColorsLocked(op); err != nil {
		return err
	}

	// (4) Visibility.
	if ch.statusBarVisible != nil {
		c.state.StatusBarVisible = *ch.statusBarVisible
		if err := platformErr(op, c.surface.SetStatusBarVisible(*ch.statusBarVisible)); err != nil {
			return err
		}
	}
	if ch.navigationBarVisible != nil {
		c.state.NavigationBarVisible = *ch.navigationBarVisible
		if c.hasNavigationBarLocked() {
			if err := platformErr(op, c.surface.SetNavigationBarVisible(*ch.navigationBarVisible)); err != nil {
				return err
			}
		}
	}

	// (5) Icon styles.
	if ch.statusBarStyle != nil {
		c.state.StatusBarStyle = *ch.statusBarStyle
		if err := platformErr(op, c.surface.SetStatusBarStyle(*ch.statusBarStyle)); err != nil {
			return err
		}
	}
	if ch.navigationBarStyle != nil {
		c.state.NavigationBarStyle = *ch.navigationBarStyle
		if c.hasNavigationBarLocked() {
			if err := platformErr(op, c.surface.SetNavigationBarStyle(*ch.navigationBarStyle)); err != nil {
				return err
			}
		}
	}

	return nil
}

// transitionLocked runs the edge-to-edge state machine. Self-transitions are
// no-ops for the mode switch; the caller's pipeline still re-applies colors
// and visibility afterwards.
func (c *Controller) transitionLocked(op string, enabled bool) error {
	if enabled == c.state.EdgeToEdge {
		return nil
	}
	c.state.EdgeToEdge = enabled

	if enabled {
		if err := platformErr(op, c.surface.SetDecorFits(false)); err != nil {
			return err
		}
		// System bars draw their own transparent background; the overlay
		// bands supply the visible color.
		if err := platformErr(op, c.surface.SetStatusBarColor(graphics.ColorTransparent)); err != nil {
			return err
		}
		if c.hasNavigationBarLocked() {
			if err := platformErr(op, c.surface.SetNavigationBarColor(graphics.ColorTransparent)); err != nil {
				return err
			}
		}
		if err := platformErr(op, c.surface.SetContentBackground(graphics.ColorTransparent)); err != nil {
			return err
		}
		if err := platformErr(op, c.surface.SetContentPadding(contentPadding(c.state.Geometry, c.state.SafeArea))); err != nil {
			return err
		}
		return platformErr(op, c.surface.RequestInsets())
	}

	// Leaving edge-to-edge hands bar coloring back to the standard APIs and
	// restores default padding behavior. Safe area is forced back on.
	c.state.SafeArea = true
	if err := platformErr(op, c.surface.ClearOverlayRegions()); err != nil {
		return err
	}
	if err := platformErr(op, c.surface.SetDecorFits(true)); err != nil {
		return err
	}
	return platformErr(op, c.surface.SetContentPadding(platform.EdgeInsets{}))
}

// applyColorsLocked paints the resolved colors on the active surface:
// overlay bands in edge-to-edge mode, the standard bar-color APIs otherwise.
func (c *Controller) applyColorsLocked(op string) error {
	colors := c.state.Colors

	if c.state.EdgeToEdge {
		return platformErr(op, c.surface.SetOverlayRegions(overlayRegions(c.state.Geometry, colors)))
	}

	if colors.Content.IsSet() {
		if err := platformErr(op, c.surface.SetContentBackground(colors.Content.Color)); err != nil {
			return err
		}
	}
	if colors.StatusBar.IsSet() {
		if err := platformErr(op, c.surface.SetStatusBarColor(colors.StatusBar.Color)); err != nil {
			return err
		}
	}
	if colors.NavigationBar.IsSet() && c.hasNavigationBarLocked() {
		if err := platformErr(op, c.surface.SetNavigationBarColor(colors.NavigationBar.Color)); err != nil {
			return err
		}
	}
	return nil
}

// hasNavigationBarLocked lazily asks the platform whether a navigation bar
// exists, caching the answer. Until the platform answers, one is assumed.
func (c *Controller) hasNavigationBarLocked() bool {
	if !c.navBarKnown {
		has, err := c.surface.HasNavigationBar()
		if err != nil {
			return true
		}
		c.navBarKnown = true
		c.navBarPresent = has
	}
	return c.navBarPresent
}

func platformErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &errors.Error{Op: op, Kind: errors.KindPlatform, Err: err}
}

func reportApply(op string, err error) {
	errors.Report(&errors.Error{Op: op, Kind: errors.KindPlatform, Err: err})
}
