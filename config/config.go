package config

import (
	"fmt"

	"tron/game"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"TRON_LOG_LEVEL" env-default:"info"`
	Markers    Markers    `yaml:"markers"`
	Experiment Experiment `yaml:"experiment"`
}

type Markers struct {
	Open      string `yaml:"open" env:"TRON_MARKER_OPEN" env-default:"+"`
	Destroyed string `yaml:"destroyed" env:"TRON_MARKER_DESTROYED" env-default:"X"`
	Left      string `yaml:"left" env:"TRON_MARKER_LEFT" env-default:"L"`
	Right     string `yaml:"right" env:"TRON_MARKER_RIGHT" env-default:"R"`
}

type Experiment struct {
	Name      string `yaml:"name" env:"TRON_EXPERIMENT_NAME" env-default:"sizes"`
	OutputDir string `yaml:"output-dir" env:"TRON_OUTPUT_DIR" env-default:"experiments/results"`
	Seed      uint64 `yaml:"seed" env:"TRON_SEED" env-default:"1"`
	Samples   int    `yaml:"samples" env:"TRON_SAMPLES" env-default:"5"`
	Sizes     []Size `yaml:"sizes"`
}

// Size is one board shape to sample in an experiment.
type Size struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Left  int `yaml:"left"`
	Right int `yaml:"right"`
}

var defaultSizes = []Size{
	{Rows: 2, Cols: 2, Left: 1, Right: 1},
	{Rows: 2, Cols: 3, Left: 1, Right: 1},
	{Rows: 3, Cols: 3, Left: 1, Right: 1},
	{Rows: 3, Cols: 4, Left: 1, Right: 1},
}

// Load reads the YAML file at path when one is given, then the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if len(config.Experiment.Sizes) == 0 {
		config.Experiment.Sizes = append([]Size(nil), defaultSizes...)
	}
	return config, nil
}

// MustLoad is Load for program startup.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (that Markers) Game() game.Markers {
	return game.Markers{
		Open:      that.Open,
		Destroyed: that.Destroyed,
		Left:      that.Left,
		Right:     that.Right,
	}
}
