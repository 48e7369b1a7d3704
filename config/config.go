package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. KEYTOUCH_GRAB.
const EnvPrefix = "KEYTOUCH"

// envFile is read for overrides before the environment. A missing file is fine.
var envFile = ".env"

type Screen struct {
	Width  int `toml:"width" envconfig:"WIDTH"`
	Height int `toml:"height" envconfig:"HEIGHT"`
}

type Config struct {
	MappingFile string `toml:"mapping_file" envconfig:"MAPPING_FILE"`
	LogFile     string `toml:"log_file" envconfig:"LOG_FILE"`
	LogLevel    string `toml:"log_level" envconfig:"LOG_LEVEL"`

	Screen Screen `toml:"screen" envconfig:"SCREEN"`

	// Devices are keyboard names to listen to. Empty means every keyboard.
	Devices    []string `toml:"devices" envconfig:"DEVICES"`
	Grab       bool     `toml:"grab" envconfig:"GRAB"`
	UinputPath string   `toml:"uinput_path" envconfig:"UINPUT_PATH"`

	TapHold       time.Duration `toml:"tap_hold" envconfig:"TAP_HOLD"`
	WatchMappings bool          `toml:"watch_mappings" envconfig:"WATCH_MAPPINGS"`
}

func Default() Config {
	return Config{
		MappingFile:   "keymap.txt",
		LogFile:       "/cache/goKeyTouch.log",
		LogLevel:      "info",
		Screen:        Screen{Width: 1080, Height: 1920},
		UinputPath:    "/dev/uinput",
		TapHold:       50 * time.Millisecond,
		WatchMappings: true,
	}
}

// Load reads the defaults, then path if it exists, then a .env file, then
// KEYTOUCH_* environment variables. Later sources win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if _, err := toml.Decode(string(data), &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.MappingFile == "" {
		errs = append(errs, errors.New("mapping_file must be set"))
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.TapHold <= 0 {
		errs = append(errs, fmt.Errorf("tap_hold %s must be positive", c.TapHold))
	}
	return errors.Join(errs...)
}
