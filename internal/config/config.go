// Package config loads portfolio settings from an optional YAML file and
// PORTFOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Device string

const (
	DeviceAuto    Device = "auto"
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

type Config struct {
	Port         string  `koanf:"port"`
	Mode         string  `koanf:"mode"`
	Theme        Theme   `koanf:"theme"`
	Device       Device  `koanf:"device"`
	DPR          float64 `koanf:"dpr"`
	ImagesDir    string  `koanf:"images_dir"`
	StaticDir    string  `koanf:"static_dir"`
	ProfileImage string  `koanf:"profile_image"`
	LogFile      string  `koanf:"log_file"`
	Seed         uint64  `koanf:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:         "8080",
		Mode:         "release",
		Theme:        ThemeDark,
		Device:       DeviceAuto,
		DPR:          1,
		ImagesDir:    "./images",
		StaticDir:    "./static",
		ProfileImage: "profile-photo.png",
	}
}

// Load reads the YAML file at path if it exists, then overlays PORTFOLIO_*
// environment variables (PORTFOLIO_THEME -> theme). A bare PORT variable
// still sets the listen port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && !k.Exists("port") {
		cfg.Port = port
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme %q: must be dark or light", c.Theme)
	}
	switch c.Device {
	case DeviceAuto, DeviceDesktop, DeviceMobile:
	default:
		return fmt.Errorf("invalid device %q: must be one of auto, desktop, mobile", c.Device)
	}
	if c.DPR <= 0 {
		return fmt.Errorf("dpr must be positive")
	}
	return nil
}

// Dark reports whether the configured theme is dark.
func (c *Config) Dark() bool {
	return c.Theme != ThemeLight
}
