// Package config provides configuration management for the mcpi CLI.
//
// Values are layered with koanf. Precedence (highest to lowest):
// explicitly set flags > MCPI_ environment variables > mcpi.yaml > defaults.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	Points       int               `koanf:"points" validate:"gt=0"`
	Seed         uint64            `koanf:"seed"`
	Profile      string            `koanf:"profile"`
	Verbose      bool              `koanf:"verbose"`
	LogLevel     string            `koanf:"log_level" validate:"oneof=debug info warn error"`
	OutputFormat string            `koanf:"output" validate:"oneof=auto text markdown json yaml"`
	Canvas       CanvasConfig      `koanf:"canvas"`
	TUI          TUIConfig         `koanf:"tui"`
	Convergence  ConvergenceConfig `koanf:"convergence"`
}

// CanvasConfig holds settings for rendered PNG canvases.
type CanvasConfig struct {
	Width        int     `koanf:"width" validate:"gt=0,lte=8192"`
	Height       int     `koanf:"height" validate:"gt=0,lte=8192"`
	PointRadius  float64 `koanf:"point_radius" validate:"gt=0"`
	InsideColor  string  `koanf:"inside_color" validate:"hexcolor"`
	OutsideColor string  `koanf:"outside_color" validate:"hexcolor"`
	CircleColor  string  `koanf:"circle_color" validate:"hexcolor"`
}

// TUIConfig holds settings for the interactive terminal UI.
type TUIConfig struct {
	Columns        int           `koanf:"columns" validate:"gte=8,lte=400"`
	Rows           int           `koanf:"rows" validate:"gte=4,lte=200"`
	DefaultInput   string        `koanf:"default_input"`
	FrameInterval  time.Duration `koanf:"frame_interval" validate:"gte=0"`
	PointsPerFrame int           `koanf:"points_per_frame" validate:"gt=0"`
}

// ConvergenceConfig holds defaults for the convergence report.
type ConvergenceConfig struct {
	Sizes  []int `koanf:"sizes" validate:"min=1,dive,gt=0"`
	Trials int   `koanf:"trials" validate:"gt=0"`
}

// Default configuration values.
const (
	DefaultPoints         = 1000
	DefaultLogLevel       = "warn"
	DefaultOutput         = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultCanvasWidth    = 300
	DefaultCanvasHeight   = 300
	DefaultPointRadius    = 1.0
	DefaultInsideColor    = "#00ff00"
	DefaultOutsideColor   = "#ff0000"
	DefaultCircleColor    = "#0000ff"
	DefaultTUIColumns     = 48
	DefaultTUIRows        = 24
	DefaultFrameInterval  = 16 * time.Millisecond
	DefaultPointsPerFrame = 250
	DefaultTrials         = 20
)

// DefaultSizes are the sample counts used by the convergence report.
var DefaultSizes = []int{100, 1_000, 10_000, 100_000}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Points:       DefaultPoints,
		LogLevel:     DefaultLogLevel,
		OutputFormat: DefaultOutput,
		Canvas: CanvasConfig{
			Width:        DefaultCanvasWidth,
			Height:       DefaultCanvasHeight,
			PointRadius:  DefaultPointRadius,
			InsideColor:  DefaultInsideColor,
			OutsideColor: DefaultOutsideColor,
			CircleColor:  DefaultCircleColor,
		},
		TUI: TUIConfig{
			Columns:        DefaultTUIColumns,
			Rows:           DefaultTUIRows,
			DefaultInput:   "1000",
			FrameInterval:  DefaultFrameInterval,
			PointsPerFrame: DefaultPointsPerFrame,
		},
		Convergence: ConvergenceConfig{
			Sizes:  append([]int(nil), DefaultSizes...),
			Trials: DefaultTrials,
		},
	}
}
