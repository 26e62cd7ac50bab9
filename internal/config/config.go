package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultAccent    = "#693FC4"
	DefaultHighlight = "#FF6548"
)

type Config struct {
	DataFile string `koanf:"data_file"` // optional JSON seed for an empty database
	Database string `koanf:"database"`  // empty means the XDG data dir
	DebugLog string `koanf:"debug_log"` // log file; logging is discarded when empty

	Motion MotionConfig `koanf:"motion"`
	Rail   RailConfig   `koanf:"rail"`
	Theme  ThemeConfig  `koanf:"theme"`
}

// MotionConfig tunes the scroll animations.
type MotionConfig struct {
	FPS             int      `koanf:"fps"`              // frame ticks per second (10-240, default: 60)
	SpringFrequency float64  `koanf:"spring_frequency"` // angular frequency (default: 10)
	SpringDamping   float64  `koanf:"spring_damping"`   // 1 is critically damped (default: 1)
	TimingMS        int      `koanf:"timing_ms"`        // rail jump duration (50-5000, default: 500)
	Elasticity      *float64 `koanf:"elasticity"`       // bounce of the rail jump, 0 disables (default: 1)
	FadeEasing      string   `koanf:"fade_easing"`      // puck border curve: linear, in-out-quad, out-cubic, out-back, elastic (default: in-out-quad)
}

// Bounce returns the elasticity, or 1 when unset.
func (m MotionConfig) Bounce() float64 {
	if m.Elasticity == nil {
		return 1
	}
	return *m.Elasticity
}

// Timing returns TimingMS as a duration.
func (m MotionConfig) Timing() time.Duration {
	return time.Duration(m.TimingMS) * time.Millisecond
}

// RailConfig controls the rail geometry.
type RailConfig struct {
	Spacing   int  `koanf:"spacing"`    // lines per rail item (1-4, default: 1)
	MaxOffset *int `koanf:"max_offset"` // columns a fully elevated item moves out (0-12, default: 4)
}

// Offset returns MaxOffset, or 4 when unset.
func (r RailConfig) Offset() int {
	if r.MaxOffset == nil {
		return 4
	}
	return *r.MaxOffset
}

// ThemeConfig holds the rail colours as hex strings.
type ThemeConfig struct {
	Accent    string `koanf:"accent"`
	Highlight string `koanf:"highlight"`
}

// Load reads ~/.config/rolodex/config.toml then ./config.toml.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DataFile = expandPath(cfg.DataFile)
	cfg.Database = expandPath(cfg.Database)
	cfg.DebugLog = expandPath(cfg.DebugLog)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/rolodex/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rolodex", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasDataFile returns true if a JSON seed file is configured.
func (c *Config) HasDataFile() bool {
	return c.DataFile != ""
}

// GetMotionConfig returns the motion configuration with defaults applied.
func (c *Config) GetMotionConfig() MotionConfig {
	cfg := c.Motion

	if cfg.FPS == 0 {
		cfg.FPS = 60
	}
	cfg.FPS = clamp(cfg.FPS, 10, 240)
	if cfg.SpringFrequency <= 0 {
		cfg.SpringFrequency = 10
	}
	if cfg.SpringDamping <= 0 {
		cfg.SpringDamping = 1
	}
	if cfg.TimingMS == 0 {
		cfg.TimingMS = 500
	}
	cfg.TimingMS = clamp(cfg.TimingMS, 50, 5000)
	bounce := max(cfg.Bounce(), 0)
	cfg.Elasticity = &bounce
	if cfg.FadeEasing == "" {
		cfg.FadeEasing = "in-out-quad"
	}

	return cfg
}

// GetRailConfig returns the rail configuration with defaults applied.
func (c *Config) GetRailConfig() RailConfig {
	cfg := c.Rail

	if cfg.Spacing == 0 {
		cfg.Spacing = 1
	}
	cfg.Spacing = clamp(cfg.Spacing, 1, 4)
	offset := clamp(cfg.Offset(), 0, 12)
	cfg.MaxOffset = &offset

	return cfg
}

// GetThemeConfig returns the theme with invalid colours replaced by defaults.
func (c *Config) GetThemeConfig() ThemeConfig {
	cfg := c.Theme

	if !validHex(cfg.Accent) {
		cfg.Accent = DefaultAccent
	}
	if !validHex(cfg.Highlight) {
		cfg.Highlight = DefaultHighlight
	}

	return cfg
}

func validHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
