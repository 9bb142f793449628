package systemui

import (
	"github.com/go-drift/systemui/pkg/errors"
	"github.com/go-drift/systemui/pkg/graphics"
	"github.com/go-drift/systemui/pkg/platform"
)

// Options is the atomic configuration input. Every field is optional: nil
// pointers and empty strings leave the corresponding state untouched, except
// where the color cascade forces a dependent slot to follow a changed parent.
//
// Color strings are "#RRGGBB" or "#RRGGBBAA", case-insensitive. Styles are
// "light" or "dark". A malformed field rejects the whole call before any
// state changes.
type Options struct {
	EdgeToEdge           *bool
	SafeArea             *bool
	StatusBarVisible     *bool
	NavigationBarVisible *bool

	StatusBarStyle     string
	NavigationBarStyle string

	ContentBackgroundColor            string
	StatusBarBackgroundColor          string
	NavigationBarBackgroundColor      string
	NavigationBarLeftBackgroundColor  string
	NavigationBarRightBackgroundColor string
	CutoutBackgroundColor             string
}

// BackgroundColors carries only the color fields, for SetBackgroundColors.
type BackgroundColors struct {
	Content            string
	StatusBar          string
	NavigationBar      string
	NavigationBarLeft  string
	NavigationBarRight string
	Cutout             string
}

// change is a fully validated Options: colors parsed, enums checked. Building
// it up front is what makes validation all-or-nothing.
type change struct {
	edgeToEdge           *bool
	safeArea             *bool
	statusBarVisible     *bool
	navigationBarVisible *bool
	statusBarStyle       *platform.BarStyle
	navigationBarStyle   *platform.BarStyle
	colors               PartialColors
}

func validationErr(op, field, value, reason string) error {
	return &errors.Error{
		Op:   op,
		Kind: errors.KindValidation,
		Err:  &errors.ValidationError{Field: field, Value: value, Reason: reason},
	}
}

// parse validates the whole call. Any failure rejects it before the
// controller touches state.
func (o Options) parse(op string) (change, error) {
	ch := change{
		edgeToEdge:           o.EdgeToEdge,
		safeArea:             o.SafeArea,
		statusBarVisible:     o.StatusBarVisible,
		navigationBarVisible: o.NavigationBarVisible,
	}

	colorFields := []struct {
		field string
		raw   string
		dst   **graphics.Color
	}{
		{"contentBackgroundColor", o.ContentBackgroundColor, &ch.colors.Content},
		{"statusBarBackgroundColor", o.StatusBarBackgroundColor, &ch.colors.StatusBar},
		{"navigationBarBackgroundColor", o.NavigationBarBackgroundColor, &ch.colors.NavigationBar},
		{"navigationBarLeftBackgroundColor", o.NavigationBarLeftBackgroundColor, &ch.colors.NavigationBarLeft},
		{"navigationBarRightBackgroundColor", o.NavigationBarRightBackgroundColor, &ch.colors.NavigationBarRight},
		{"cutoutBackgroundColor", o.CutoutBackgroundColor, &ch.colors.Cutout},
	}
	for _, f := range colorFields {
		if f.raw == "" {
			continue
		}
		c, err := graphics.ParseHex(f.raw)
		if err != nil {
			return change{}, validationErr(op, f.field, f.raw, "want #RRGGBB or #RRGGBBAA hex")
		}
		*f.dst = &c
	}

	if o.StatusBarStyle != "" {
		s, err := platform.ParseBarStyle(o.StatusBarStyle)
		if err != nil {
			return change{}, validationErr(op, "statusBarStyle", o.StatusBarStyle, `want "light" or "dark"`)
		}
		ch.statusBarStyle = &s
	}
	if o.NavigationBarStyle != "" {
		s, err := platform.ParseBarStyle(o.NavigationBarStyle)
		if err != nil {
			return change{}, validationErr(op, "navigationBarStyle", o.NavigationBarStyle, `want "light" or "dark"`)
		}
		ch.navigationBarStyle = &s
	}

	return ch, nil
}
