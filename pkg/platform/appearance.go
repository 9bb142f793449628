package platform

import (
	"fmt"
	"sync"

	"github.com/go-drift/systemui/pkg/errors"
)

// ColorScheme is the OS appearance mode.
type ColorScheme string

const (
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
)

// ParseColorScheme validates a scheme string from native or caller input.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch ColorScheme(s) {
	case ColorSchemeLight, ColorSchemeDark:
		return ColorScheme(s), nil
	default:
		return "", fmt.Errorf("unknown color scheme %q", s)
	}
}

// Appearance provides the OS color scheme (dark mode) state.
var Appearance = &AppearanceService{
	channel: NewMethodChannel("systemui/appearance"),
	events:  NewEventChannel("systemui/appearance/events"),
	scheme:  ColorSchemeLight,
}

// AppearanceService manages OS appearance state and change events. The cached
// scheme is updated from native pushes and from explicit Refresh calls; the OS
// can flip the scheme while the app is backgrounded without a notification, so
// the service re-reads on every lifecycle resume.
type AppearanceService struct {
	channel  *MethodChannel
	events   *EventChannel
	scheme   ColorScheme
	handlers []func(ColorScheme)
	mu       sync.RWMutex
}

func init() {
	initAppearanceListeners()
	registerBuiltinInit(initAppearanceListeners)
}

func initAppearanceListeners() {
	Appearance.events.Listen(EventHandler{
		OnEvent: func(data any) {
			m, ok := data.(map[string]any)
			if !ok {
				reportAppearanceParse(data)
				return
			}
			raw, ok := m["colorScheme"].(string)
			if !ok {
				reportAppearanceParse(data)
				return
			}
			scheme, err := ParseColorScheme(raw)
			if err != nil {
				reportAppearanceParse(data)
				return
			}
			Appearance.update(scheme)
		},
	})

	// The OS may change the scheme while the app is backgrounded without
	// pushing an event to a late-attached listener. Re-read on resume.
	Lifecycle.AddHandler(func(state LifecycleState) {
		if state != LifecycleStateResumed {
			return
		}
		if _, err := Appearance.Refresh(); err != nil {
			errors.Report(&errors.Error{
				Op:      "appearance.resumeRefresh",
				Kind:    errors.KindPlatform,
				Channel: Appearance.channel.Name(),
				Err:     err,
			})
		}
	})
}

func reportAppearanceParse(data any) {
	errors.Report(&errors.Error{
		Op:      "appearance.parseEvent",
		Kind:    errors.KindParsing,
		Channel: Appearance.events.Name(),
		Err: &errors.ParseError{
			Channel:  Appearance.events.Name(),
			DataType: "ColorScheme",
			Got:      data,
		},
	})
}

// Current returns the cached color scheme without touching the bridge.
func (a *AppearanceService) Current() ColorScheme {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.scheme
}

// Refresh re-reads the color scheme from the OS, updates the cache, and
// notifies handlers if the scheme changed. Use this instead of Current when a
// live answer is required.
func (a *AppearanceService) Refresh() (ColorScheme, error) {
	result, err := a.channel.Invoke("getColorScheme", nil)
	if err != nil {
		return "", err
	}
	m, ok := result.(map[string]any)
	if !ok {
		return "", &errors.ParseError{Channel: a.channel.Name(), DataType: "ColorScheme", Got: result}
	}
	raw, ok := m["colorScheme"].(string)
	if !ok {
		return "", &errors.ParseError{Channel: a.channel.Name(), DataType: "ColorScheme", Got: result}
	}
	scheme, err := ParseColorScheme(raw)
	if err != nil {
		return "", err
	}
	a.update(scheme)
	return scheme, nil
}

// AddHandler registers a handler to be called when the scheme changes.
// Returns a function that removes the handler.
func (a *AppearanceService) AddHandler(handler func(ColorScheme)) func() {
	a.mu.Lock()
	a.handlers = append(a.handlers, handler)
	index := len(a.handlers) - 1
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		if index < len(a.handlers) {
			a.handlers[index] = nil
		}
		a.mu.Unlock()
	}
}

// update stores the scheme and notifies handlers. Unchanged schemes are
// dropped so repeated OS signals produce at most one notification.
func (a *AppearanceService) update(next ColorScheme) {
	a.mu.Lock()
	if a.scheme == next {
		a.mu.Unlock()
		return
	}
	a.scheme = next
	handlers := make([]func(ColorScheme), len(a.handlers))
	copy(handlers, a.handlers)
	a.mu.Unlock()

	for _, h := range handlers {
		if h != nil {
			h(next)
		}
	}
}
