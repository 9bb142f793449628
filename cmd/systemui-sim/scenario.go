package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/systemui/pkg/platform"
	"github.com/go-drift/systemui/pkg/systemui"
)

// Scenario is a scripted run against the virtual device: a device
// description plus an ordered list of steps.
type Scenario struct {
	Name   string       `yaml:"name"`
	Device DeviceConfig `yaml:"device"`
	Steps  []Step       `yaml:"steps"`
}

// DeviceConfig describes the simulated handset in device pixels.
type DeviceConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	StatusBarInset     float64 `yaml:"statusBarInset"`
	NavigationBarInset float64 `yaml:"navigationBarInset"`
	CutoutTop          float64 `yaml:"cutoutTop"`
	NoNavigationBar    bool    `yaml:"noNavigationBar"`
	Scheme             string  `yaml:"scheme"`
}

// Step is one scenario action. Exactly one field should be set per entry.
type Step struct {
	Configure *ConfigureStep `yaml:"configure"`
	Keyboard  *KeyboardStep  `yaml:"keyboard"`
	Rotate    *RotateStep    `yaml:"rotate"`
	Theme     string         `yaml:"theme"`
	Info      bool           `yaml:"info"`
	Snapshot  string         `yaml:"snapshot"`
}

// ConfigureStep mirrors systemui.Options in YAML form.
type ConfigureStep struct {
	EdgeToEdge           *bool  `yaml:"edgeToEdge"`
	SafeArea             *bool  `yaml:"safeArea"`
	StatusBarVisible     *bool  `yaml:"statusBarVisible"`
	NavigationBarVisible *bool  `yaml:"navigationBarVisible"`
	StatusBarStyle       string `yaml:"statusBarStyle"`
	NavigationBarStyle   string `yaml:"navigationBarStyle"`

	ContentBackgroundColor            string `yaml:"contentBackgroundColor"`
	StatusBarBackgroundColor          string `yaml:"statusBarBackgroundColor"`
	NavigationBarBackgroundColor      string `yaml:"navigationBarBackgroundColor"`
	NavigationBarLeftBackgroundColor  string `yaml:"navigationBarLeftBackgroundColor"`
	NavigationBarRightBackgroundColor string `yaml:"navigationBarRightBackgroundColor"`
	CutoutBackgroundColor             string `yaml:"cutoutBackgroundColor"`
}

func (s *ConfigureStep) options() systemui.Options {
	return systemui.Options{
		EdgeToEdge:                        s.EdgeToEdge,
		SafeArea:                          s.SafeArea,
		StatusBarVisible:                  s.StatusBarVisible,
		NavigationBarVisible:              s.NavigationBarVisible,
		StatusBarStyle:                    s.StatusBarStyle,
		NavigationBarStyle:                s.NavigationBarStyle,
		ContentBackgroundColor:            s.ContentBackgroundColor,
		StatusBarBackgroundColor:          s.StatusBarBackgroundColor,
		NavigationBarBackgroundColor:      s.NavigationBarBackgroundColor,
		NavigationBarLeftBackgroundColor:  s.NavigationBarLeftBackgroundColor,
		NavigationBarRightBackgroundColor: s.NavigationBarRightBackgroundColor,
		CutoutBackgroundColor:             s.CutoutBackgroundColor,
	}
}

// KeyboardStep shows or hides the soft keyboard.
type KeyboardStep struct {
	Visible bool    `yaml:"visible"`
	Height  float64 `yaml:"height"`
}

// RotateStep switches the device orientation.
type RotateStep struct {
	Landscape bool `yaml:"landscape"`
}

func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if sc.Device.Width <= 0 || sc.Device.Height <= 0 {
		return nil, fmt.Errorf("%s: device width and height are required", path)
	}
	return &sc, nil
}

// runner binds a scenario, a virtual device, and a live controller.
type runner struct {
	scenario    *Scenario
	device      *device
	dispatch    *dispatcher
	controller  *systemui.Controller
	out         io.Writer
	snapshotDir string
	scale       float64
}

func newRunner(sc *Scenario, out io.Writer, snapshotDir string, scale float64) *runner {
	r := &runner{
		scenario:    sc,
		device:      newDevice(sc.Device),
		dispatch:    newDispatcher(),
		out:         out,
		snapshotDir: snapshotDir,
		scale:       scale,
	}
	bridge := &simBridge{device: r.device}
	bridge.pushDevice = r.pushGeometry
	platform.SetNativeBridge(bridge)

	r.controller = systemui.NewController(nil)
	r.pushGeometry()
	r.dispatch.drain()
	return r
}

func (r *runner) close() {
	r.controller.Close()
	r.dispatch.stop()
	platform.ResetForTest()
}

func (r *runner) pushGeometry() {
	data, err := platform.DefaultCodec.Encode(r.device.geometryPayload())
	if err != nil {
		return
	}
	_ = platform.HandleEvent("systemui/geometry/events", data)
}

func (r *runner) pushScheme(scheme string) {
	data, err := platform.DefaultCodec.Encode(map[string]any{"colorScheme": scheme})
	if err != nil {
		return
	}
	_ = platform.HandleEvent("systemui/appearance/events", data)
}

func (r *runner) run() error {
	for i, step := range r.scenario.Steps {
		if err := r.step(step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		r.dispatch.drain()
	}
	return nil
}

func (r *runner) step(step Step) error {
	switch {
	case step.Configure != nil:
		return r.controller.Configure(step.Configure.options())

	case step.Keyboard != nil:
		r.device.mu.Lock()
		r.device.keyboardVisible = step.Keyboard.Visible
		r.device.keyboardHeight = step.Keyboard.Height
		r.device.mu.Unlock()
		r.pushGeometry()
		return nil

	case step.Rotate != nil:
		r.device.mu.Lock()
		r.device.landscape = step.Rotate.Landscape
		r.device.mu.Unlock()
		r.pushGeometry()
		return nil

	case step.Theme != "":
		if _, err := platform.ParseColorScheme(step.Theme); err != nil {
			return err
		}
		r.device.mu.Lock()
		r.device.scheme = step.Theme
		r.device.mu.Unlock()
		r.pushScheme(step.Theme)
		return nil

	case step.Info:
		r.dispatch.drain()
		printInfo(r.out, r.controller.Info())
		return nil

	case step.Snapshot != "":
		r.dispatch.drain()
		snap := r.device.snapshot()
		path := step.Snapshot
		if r.snapshotDir != "" {
			path = filepath.Join(r.snapshotDir, path)
		}
		if err := writeSnapshot(snap, path, r.scale); err != nil {
			return err
		}
		fmt.Fprintln(r.out, renderChrome(snap, r.controller.Info()))
		fmt.Fprintf(r.out, "wrote %s\n", path)
		return nil
	}
	return fmt.Errorf("empty step")
}
