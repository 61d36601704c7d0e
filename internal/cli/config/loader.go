package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// configKey is used to store config in context.
type configKey struct{}

// EnvPrefix is the prefix for environment variable overrides.
// Nested keys use a double underscore: MCPI_CANVAS__WIDTH -> canvas.width.
const EnvPrefix = "MCPI_"

// ConfigFileNames are the config file names searched for, in order.
var ConfigFileNames = []string{"mcpi.yaml", "mcpi.yml"}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// flagKeys maps flag names whose config key differs from the snake_case name.
var flagKeys = map[string]string{
	"sizes":  "convergence.sizes",
	"trials": "convergence.trials",
}

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// configIn returns the config file in dir, or "" if there is none.
func configIn(dir string) string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// findConfigUpward searches upward from startDir for a config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func findConfigUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if path := configIn(dir); path != "" {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// defaultsMap flattens Default into koanf keys.
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"points":               d.Points,
		"seed":                 d.Seed,
		"verbose":              false,
		"log_level":            d.LogLevel,
		"output":               d.OutputFormat,
		"canvas.width":         d.Canvas.Width,
		"canvas.height":        d.Canvas.Height,
		"canvas.point_radius":  d.Canvas.PointRadius,
		"canvas.inside_color":  d.Canvas.InsideColor,
		"canvas.outside_color": d.Canvas.OutsideColor,
		"canvas.circle_color":  d.Canvas.CircleColor,
		"tui.columns":          d.TUI.Columns,
		"tui.rows":             d.TUI.Rows,
		"tui.default_input":    d.TUI.DefaultInput,
		"tui.frame_interval":   d.TUI.FrameInterval.String(),
		"tui.points_per_frame": d.TUI.PointsPerFrame,
		"convergence.sizes":    d.Convergence.Sizes,
		"convergence.trials":   d.Convergence.Trials,
	}
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
//
// When cfgFile is empty, mcpi.yaml or mcpi.yml is searched for upward from
// the working directory. Only flags that were explicitly set are applied.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")
	configFileUsed = ""

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	if cfgFile != "" {
		configFileUsed = cfgFile
	} else {
		configFileUsed = findConfigUpward(cwd)
	}
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Apply the selected profile on top of the file
	if err := applyProfile(resolveProfile(flags)); err != nil {
		return nil, err
	}

	// 4. Load environment variables (MCPI_ prefix)
	// Transform: MCPI_LOG_LEVEL -> log_level, MCPI_CANVAS__WIDTH -> canvas.width
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			// Transform kebab-case to snake_case for config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 6. Unmarshal into Config struct
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// resolveProfile returns the profile name from flags, env or the config
// file, in that order.
func resolveProfile(flags *pflag.FlagSet) string {
	if flags != nil && flags.Changed("profile") {
		if v, err := flags.GetString("profile"); err == nil {
			return v
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PROFILE"); ok {
		return v
	}
	return k.String("profile")
}

// applyProfile merges profiles.<name> over the loaded defaults and file.
func applyProfile(name string) error {
	if name == "" {
		return nil
	}
	path := "profiles." + name
	if !k.Exists(path) {
		return fmt.Errorf("unknown profile %q%s", name, availableProfiles())
	}
	if err := k.Merge(k.Cut(path)); err != nil {
		return fmt.Errorf("failed to apply profile %q: %w", name, err)
	}
	return nil
}

func availableProfiles() string {
	names := k.MapKeys("profiles")
	if len(names) == 0 {
		return " (no profiles defined)"
	}
	return fmt.Sprintf(" (available: %s)", strings.Join(names, ", "))
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig. Without one it
// falls back to the last loaded config, then to the defaults.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	if currentConfig != nil {
		return currentConfig
	}
	return Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.New(slog.DiscardHandler)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// NewLogger builds the CLI logger. Verbose forces debug level.
func NewLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl := ParseLogLevel(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// ParseLogLevel maps a level name to a slog level, defaulting to warn.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
