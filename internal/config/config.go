package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHorizon    = 10.0
	DefaultSamples    = 1000
	DefaultGainMin    = 0.0
	DefaultGainMax    = 100.0
	DefaultGainPoints = 400
	DefaultKp         = 1.0
	DefaultKi         = 0.1
	DefaultKd         = 0.1
	DefaultDataDir    = "runs"
)

type Config struct {
	Num        []float64        `yaml:"num"`
	Den        []float64        `yaml:"den"`
	Input      string           `yaml:"input"`
	Horizon    float64          `yaml:"horizon"`
	Samples    int              `yaml:"samples"`
	Gains      GainConfig       `yaml:"gains"`
	Controller ControllerConfig `yaml:"controller"`
	DataDir    string           `yaml:"data_dir"`
}

type GainConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
}

type ControllerConfig struct {
	Kind string  `yaml:"kind"`
	Kp   float64 `yaml:"kp"`
	Ki   float64 `yaml:"ki"`
	Kd   float64 `yaml:"kd"`
}

func DefaultConfig() *Config {
	return &Config{
		Num:     []float64{1},
		Den:     []float64{1, 1},
		Input:   "step",
		Horizon: DefaultHorizon,
		Samples: DefaultSamples,
		Gains: GainConfig{
			Min:    DefaultGainMin,
			Max:    DefaultGainMax,
			Points: DefaultGainPoints,
		},
		Controller: ControllerConfig{
			Kind: "none",
			Kp:   DefaultKp,
			Ki:   DefaultKi,
			Kd:   DefaultKd,
		},
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
