// Package config loads picker settings with viper from an afero filesystem.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cheerioskun/slotpick/internal/timeline"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SLOTPICK_TIMELINE_START_HOUR
const EnvPrefix = "SLOTPICK"

// DefaultConfigName is searched for in the working directory and ~/.config/slotpick
const DefaultConfigName = "slotpick"

// Settings is everything slotpick reads from its config file
type Settings struct {
	Timeline timeline.Config `mapstructure:"timeline"`
	// Width is the layout width used by non-interactive commands
	Width   int    `mapstructure:"width"`
	LogFile string `mapstructure:"log_file"`
}

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	def := timeline.DefaultConfig()
	v.SetDefault("timeline.start_hour", def.StartHour)
	v.SetDefault("timeline.end_hour", def.EndHour)
	v.SetDefault("timeline.interval_minutes", def.IntervalMinutes)
	v.SetDefault("timeline.allowed_ranges", []map[string]string{})
	v.SetDefault("width", 60)
	v.SetDefault("log_file", "/tmp/slotpick.out")
}

// Load reads path (or the default search locations when path is empty) from fs
// into v and returns validated settings. A missing default file is not an error.
func Load(fs afero.Fs, v *viper.Viper, path string) (*Settings, error) {
	SetDefaults(v)
	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/slotpick")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := settings.Timeline.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timeline config: %w", err)
	}
	if settings.Width <= 0 {
		return nil, fmt.Errorf("%w: width %d must be positive", timeline.ErrInvalidLayout, settings.Width)
	}

	return &settings, nil
}

// SampleConfig is the file written by `slotpick init`
const SampleConfig = `# slotpick configuration
timeline:
  start_hour: 8
  end_hour: 9
  interval_minutes: 5
  allowed_ranges:
    - start: "08:10"
      end: "08:15"
    - start: "08:30"
      end: "08:45"
    - start: "08:50"
      end: "09:00"

# columns used by non-interactive commands such as inspect
width: 60

log_file: /tmp/slotpick.out
`

// WriteSample writes SampleConfig to path, refusing to clobber an existing file
// unless overwrite is set
func WriteSample(fs afero.Fs, path string, overwrite bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if exists && !overwrite {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := afero.WriteFile(fs, path, []byte(SampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}
