package sidedrawer

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

// Config is the on-disk configuration, read from TOML:
//
//	[drawer]
//	panel_width_ratio = 0.8
//	edge_gesture_width = 20
//	fast_swipe_velocity = 300
//	max_overlay_opacity = 0.4
//	animation_ms = 300
//	drag_dead_zone = 4
//	language = "en"
//
//	[log]
//	level = "debug"
//	path = "logs/drawer.log"
type Config struct {
	Drawer DrawerConfig `toml:"drawer"`
	Log    LogConfig    `toml:"log"`

	// UnknownKeys lists keys the file set that no field takes. ApplyLogging
	// warns about them once the log destination is settled.
	UnknownKeys []string `toml:"-"`
}

// DrawerConfig holds the tunables of the drawer. Omitted keys keep defaults.
type DrawerConfig struct {
	PanelWidthRatio   float64 `toml:"panel_width_ratio"`
	EdgeGestureWidth  float64 `toml:"edge_gesture_width"`
	FastSwipeVelocity float64 `toml:"fast_swipe_velocity"`
	MaxOverlayOpacity float64 `toml:"max_overlay_opacity"`
	AnimationMillis   int     `toml:"animation_ms"`
	DragDeadZone      float64 `toml:"drag_dead_zone"`
	Language          string  `toml:"language"`
}

// LogConfig selects where diagnostic output goes and how verbose it is.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// ParseConfig decodes a TOML document. Unknown keys are collected in
// UnknownKeys and otherwise ignored. It does not log, so the [log] table can
// still choose where logs go.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, NewInfrastructureError("parse_config", err)
	}

	for _, key := range md.Undecoded() {
		cfg.UnknownKeys = append(cfg.UnknownKeys, key.String())
	}

	return cfg, nil
}

// LoadConfig reads and decodes the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewInfrastructureError("load_config", err)
	}
	return ParseConfig(data)
}

// Options converts the drawer table to Options. Capabilities and screen size
// are left for the host to fill in.
func (c Config) Options() Options {
	return Options{
		PanelWidthRatio:            c.Drawer.PanelWidthRatio,
		EdgeGestureWidth:           c.Drawer.EdgeGestureWidth,
		FastSwipeVelocityThreshold: c.Drawer.FastSwipeVelocity,
		MaxOverlayOpacity:          c.Drawer.MaxOverlayOpacity,
		AnimationDuration:          time.Duration(c.Drawer.AnimationMillis) * time.Millisecond,
		DragDeadZone:               c.Drawer.DragDeadZone,
		Language:                   c.Drawer.Language,
	}
}

// ApplyLogging points the loggers at the configured file and level, then
// warns about unknown keys. Call it before anything logs.
func (c Config) ApplyLogging() {
	if c.Log.Path != "" {
		internal.SetLogPath(c.Log.Path)
	}
	if c.Log.Level != "" {
		level := internal.ParseLevel(c.Log.Level)
		internal.SetLogLevel(level)
		internal.SetInternalLogLevel(level)
	}

	for _, key := range c.UnknownKeys {
		internal.GetInternalLogger().Warn("Unknown config key", "key", key)
	}
}
