// Package config handles render configuration loading and management.
package config

// Config holds all render settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds sampling and scene settings.
type RenderConfig struct {
	Scene           string `yaml:"scene"`             // default, cornell, cornell-smoke
	Width           int    `yaml:"width"`             // 0 uses the scene's native size
	Height          int    `yaml:"height"`            // 0 uses the scene's native size
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"` // Bounce budget
	Workers         int    `yaml:"workers"`   // 0 uses all CPUs
	Seed            int64  `yaml:"seed"`
}

// OutputConfig holds image output settings.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Scene:           "cornell",
			SamplesPerPixel: 200,
			MaxDepth:        50,
			Workers:         0,
			Seed:            42,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
