package systemui

import "github.com/go-drift/systemui/pkg/graphics"

// Origin records how a color slot got its value.
type Origin uint8

const (
	// OriginUnset means no value was ever supplied, directly or via cascade.
	// Unset slots render fully transparent.
	OriginUnset Origin = iota

	// OriginCascade means the value was derived from another slot. Cascaded
	// values are recomputed whenever their source changes.
	OriginCascade

	// OriginExplicit means the caller assigned the value directly. Explicit
	// values are sticky: no later cascade overwrites them.
	OriginExplicit
)

// SlotValue is one chrome color slot: a color plus how it was obtained.
type SlotValue struct {
	Color  graphics.Color
	Origin Origin
}

// IsSet reports whether the slot holds a value.
func (s SlotValue) IsSet() bool { return s.Origin != OriginUnset }

// Effective returns the slot's color, or transparent when unset.
func (s SlotValue) Effective() graphics.Color {
	if s.Origin == OriginUnset {
		return graphics.ColorTransparent
	}
	return s.Color
}

// ColorSet holds the six chrome color slots.
type ColorSet struct {
	Content            SlotValue
	StatusBar          SlotValue
	NavigationBar      SlotValue
	NavigationBarLeft  SlotValue
	NavigationBarRight SlotValue
	Cutout             SlotValue
}

// PartialColors carries the color-bearing fields of a single call. Nil means
// the slot is untouched by this call.
type PartialColors struct {
	Content            *graphics.Color
	StatusBar          *graphics.Color
	NavigationBar      *graphics.Color
	NavigationBarLeft  *graphics.Color
	NavigationBarRight *graphics.Color
	Cutout             *graphics.Color
}

// IsEmpty reports whether the call carries no color at all.
func (p PartialColors) IsEmpty() bool {
	return p.Content == nil && p.StatusBar == nil && p.NavigationBar == nil &&
		p.NavigationBarLeft == nil && p.NavigationBarRight == nil && p.Cutout == nil
}

// Resolve merges a call's partial colors into the previous resolved set and
// re-runs the cascade. Explicit assignments always win and stay sticky across
// later calls; every non-explicit slot is recomputed from its parent chain so
// a content change propagates to all slots that still follow it. The parent
// chains, in fixed priority order:
//
//	statusBar          <- content
//	navigationBar      <- navigationBarLeft | navigationBarRight | content
//	navigationBarLeft  <- navigationBarRight | navigationBar | content
//	navigationBarRight <- navigationBarLeft | navigationBar | content
//	cutout             <- statusBar | content
//
// The left and right edge bars prefer their sibling before the bottom bar;
// the cutout only ever follows the status bar or the app background, never
// the navigation bar. Slots with no explicit value anywhere in their chain
// stay unset. Resolving with an empty input is the identity.
func Resolve(prev ColorSet, in PartialColors) ColorSet {
	out := prev

	assign := func(slot *SlotValue, v *graphics.Color) {
		if v != nil {
			*slot = SlotValue{Color: *v, Origin: OriginExplicit}
		}
	}
	assign(&out.Content, in.Content)
	assign(&out.StatusBar, in.StatusBar)
	assign(&out.NavigationBar, in.NavigationBar)
	assign(&out.NavigationBarLeft, in.NavigationBarLeft)
	assign(&out.NavigationBarRight, in.NavigationBarRight)
	assign(&out.Cutout, in.Cutout)

	// Only explicit slots act as cascade sources: a cascaded value is itself
	// derived from some explicit ancestor, so walking one level of explicit
	// parents covers the transitive chains without order sensitivity.
	cascade := func(slot *SlotValue, parents ...*SlotValue) {
		if slot.Origin == OriginExplicit {
			return
		}
		for _, p := range parents {
			if p.Origin == OriginExplicit {
				*slot = SlotValue{Color: p.Color, Origin: OriginCascade}
				return
			}
		}
		*slot = SlotValue{}
	}
	cascade(&out.StatusBar, &out.Content)
	cascade(&out.NavigationBar, &out.NavigationBarLeft, &out.NavigationBarRight, &out.Content)
	cascade(&out.NavigationBarLeft, &out.NavigationBarRight, &out.NavigationBar, &out.Content)
	cascade(&out.NavigationBarRight, &out.NavigationBarLeft, &out.NavigationBar, &out.Content)
	cascade(&out.Cutout, &out.StatusBar, &out.Content)

	return out
}
