package config

import "github.com/spf13/viper"

type Config struct {
	Output     Output       `mapstructure:"output"`
	Direction  string       `mapstructure:"direction"`
	Theme      string       `mapstructure:"theme"`
	Sources    Sources      `mapstructure:"sources"`
	Display    Display      `mapstructure:"display"`
	Render     RenderConfig `mapstructure:"render"`
	RawSources map[string]any
}

type Output struct {
	JSON string `mapstructure:"json"`
	D2   string `mapstructure:"d2"`
}

type Sources struct {
	Lssea    LsseaSource    `mapstructure:"lssea"`
	Snapshot SnapshotSource `mapstructure:"snapshot"`
}

type LsseaSource struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
	Suffix string `mapstructure:"suffix"`
}

type SnapshotSource struct {
	File string `mapstructure:"file"`
}

type Display struct {
	ShowProperties    bool `mapstructure:"show_properties"`
	ShowHardwarePaths bool `mapstructure:"show_hardware_paths"`
}

type RenderConfig struct {
	DetailLevel string `mapstructure:"detail_level"` // minimal, standard, detailed
	AutoRender  bool   `mapstructure:"auto_render"`
	Format      string `mapstructure:"format"` // svg, png
}

func Load() (*Config, error) {
	cfg := &Config{
		Direction: "down",
		Theme:     "default",
	}
	cfg.Output.JSON = "network_config.json"
	cfg.Output.D2 = "network_config.d2"
	cfg.Sources.Lssea.Prefix = "lssea"
	cfg.Sources.Lssea.Suffix = "log"
	cfg.Display.ShowProperties = true
	cfg.Display.ShowHardwarePaths = true
	cfg.Render.DetailLevel = "standard"
	cfg.Render.Format = "svg"

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Populate RawSources for the registry-based orchestrator
	cfg.RawSources = viper.GetStringMap("sources")

	return cfg, nil
}
