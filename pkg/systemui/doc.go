// Package systemui controls native window chrome (status bar, navigation
// bar, display-cutout regions, and edge-to-edge layout) from a single
// cross-platform call surface, and reports safe-area geometry and the OS
// color scheme back.
//
// The package has two parts. Resolve is a pure color-cascade function that
// turns partial color input into a fully resolved set for all six chrome
// slots. Controller owns the window-wide configuration, runs Resolve on
// every mutating call, recomputes overlay and padding geometry, and issues
// idempotent apply operations to a Surface (normally the platform.Window
// method-channel binding).
//
// One Controller exists per application window. All mutations are marshaled
// onto the platform's UI thread via platform.Dispatch and serialized there;
// geometry and appearance events from the OS feed the same pipeline.
package systemui
