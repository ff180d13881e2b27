// Package config holds the viewer's settings and loads them from a TOML file.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/Carmen-Shannon/oxy-inspect/engine/gesture"
	"github.com/Carmen-Shannon/oxy-inspect/engine/record"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config is the full viewer configuration.
type Config struct {
	Window     Window     `toml:"window"`
	Scene      Scene      `toml:"scene"`
	Navigation Navigation `toml:"navigation"`
	Picking    Picking    `toml:"picking"`
	Highlight  Highlight  `toml:"highlight"`
	Overlay    Overlay    `toml:"overlay"`
	Log        Log        `toml:"log"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// FrameCap limits frames per second. Zero renders as fast as the surface allows.
	FrameCap int `toml:"frame_cap"`
}

type Scene struct {
	// Model is the glTF or GLB file to open.
	Model string `toml:"model"`
	// Records is the YAML file of object records keyed by object name.
	Records string `toml:"records"`
	// Background is the clear colour as RGBA in [0, 1].
	Background [4]float64 `toml:"background"`
	// DefaultRecord, when set, is shown for selectable objects without their own record.
	DefaultRecord *record.Record `toml:"default_record,omitempty"`
	// MaterialRoughness and MaterialMetalness override every loaded material when positive.
	MaterialRoughness float32 `toml:"material_roughness"`
	MaterialMetalness float32 `toml:"material_metalness"`
}

type Navigation struct {
	BaseSpeed         float32 `toml:"base_speed"`
	PrecisionSpeed    float32 `toml:"precision_speed"`
	FastSpeed         float32 `toml:"fast_speed"`
	BoostSpeed        float32 `toml:"boost_speed"`
	RotationSpeed     float32 `toml:"rotation_speed"`
	PinchSensitivity  float32 `toml:"pinch_sensitivity"`
	PanSensitivity    float32 `toml:"pan_sensitivity"`
	ScrollSensitivity float32 `toml:"scroll_sensitivity"`
	// Fov is the vertical field of view in degrees.
	Fov  float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

type Picking struct {
	// Policy is "double" or "single".
	Policy string `toml:"policy"`
	// DoubleWindowMs is the maximum gap between the two contacts of a double click or tap.
	DoubleWindowMs int `toml:"double_window_ms"`
	// DeadZone is how far in pixels a click may move and still pick under the single policy.
	DeadZone float32 `toml:"dead_zone"`
	// FarCut limits pick distance in world units. Zero uses the camera far plane.
	FarCut float32 `toml:"far_cut"`
}

type Highlight struct {
	Color   [3]float32 `toml:"color"`
	Opacity float32    `toml:"opacity"`
}

type Overlay struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Offset float32 `toml:"offset"`
}

type Log struct {
	Level string `toml:"level"`
	// File enables a rotated JSON log in addition to the console.
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - Config: the defaults
func Default() Config {
	return Config{
		Window: Window{
			Title:  "oxy-inspect",
			Width:  1280,
			Height: 720,
		},
		Scene: Scene{
			Background:        [4]float64{0.94, 0.94, 0.94, 1},
			MaterialRoughness: 0.7,
			MaterialMetalness: 0.1,
		},
		Navigation: Navigation{
			BaseSpeed:         0.2,
			PrecisionSpeed:    0.1,
			FastSpeed:         0.4,
			BoostSpeed:        1.2,
			RotationSpeed:     0.005,
			PinchSensitivity:  0.02,
			PanSensitivity:    0.02,
			ScrollSensitivity: 0.5,
			Fov:               75,
			Near:              0.1,
			Far:               1000,
		},
		Picking: Picking{
			Policy:         gesture.PickDouble.String(),
			DoubleWindowMs: 300,
			DeadZone:       4,
		},
		Highlight: Highlight{
			Color:   [3]float32{1, 0, 0},
			Opacity: 0.8,
		},
		Overlay: Overlay{
			Width:  250,
			Height: 170,
			Offset: 10,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads a TOML file over the defaults. A missing file yields the defaults.
//
// Parameters:
//   - path: the file to read, or "" for defaults only
//
// Returns:
//   - Config: the merged configuration
//   - error: if the file cannot be read, decoded or validated
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	return Parse(data, cfg)
}

// Parse decodes TOML over base. Unknown keys are rejected so typos surface instead of
// silently keeping a default.
//
// Parameters:
//   - data: TOML document
//   - base: values kept for keys the document omits
//
// Returns:
//   - Config: the merged configuration
//   - error: if decoding or validation fails
func Parse(data []byte, base Config) (Config, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&base); err != nil {
		return base, errors.Wrap(err, "config: decoding")
	}
	if err := base.Validate(); err != nil {
		return base, err
	}
	return base, nil
}

// Save writes cfg as TOML, creating parent directories.
//
// Parameters:
//   - path: destination file
//   - cfg: configuration to write
//
// Returns:
//   - error: if encoding or writing fails
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "config: encoding")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "config: creating directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "config: writing %s", path)
}

// Validate checks that every value is usable.
//
// Returns:
//   - error: the first problem found
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameCap < 0 {
		return errors.New("config: window.frame_cap must not be negative")
	}
	n := c.Navigation
	for name, v := range map[string]float32{
		"base_speed":      n.BaseSpeed,
		"precision_speed": n.PrecisionSpeed,
		"fast_speed":      n.FastSpeed,
		"boost_speed":     n.BoostSpeed,
		"rotation_speed":  n.RotationSpeed,
	} {
		if v <= 0 {
			return errors.Errorf("config: navigation.%s must be positive, got %v", name, v)
		}
	}
	if n.Fov <= 0 || n.Fov >= 180 {
		return errors.Errorf("config: navigation.fov %v must be in (0, 180)", n.Fov)
	}
	if n.Near <= 0 || n.Far <= n.Near {
		return errors.Errorf("config: clip planes near=%v far=%v are invalid", n.Near, n.Far)
	}
	if _, err := gesture.ParsePickPolicy(c.Picking.Policy); err != nil {
		return errors.Wrap(err, "config: picking.policy")
	}
	if c.Picking.DoubleWindowMs <= 0 {
		return errors.New("config: picking.double_window_ms must be positive")
	}
	if c.Highlight.Opacity < 0 || c.Highlight.Opacity > 1 {
		return errors.Errorf("config: highlight.opacity %v must be in [0, 1]", c.Highlight.Opacity)
	}
	if c.Overlay.Width <= 0 || c.Overlay.Height <= 0 {
		return errors.New("config: overlay size must be positive")
	}
	return nil
}

// PickPolicy returns the parsed picking policy. Validate has already rejected unknown names.
func (c Config) PickPolicy() gesture.PickPolicy {
	p, _ := gesture.ParsePickPolicy(c.Picking.Policy)
	return p
}

// DoubleWindow returns the double-action window as a duration.
func (c Config) DoubleWindow() time.Duration {
	return time.Duration(c.Picking.DoubleWindowMs) * time.Millisecond
}
