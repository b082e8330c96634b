package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

const (
	DefaultWidth         = 1200
	DefaultHeight        = 800
	DefaultFPS           = 4
	DefaultEpisodeLength = 200
	DefaultDataDir       = ".brainiac"
	DefaultDemoSteps     = 60
)

type Config struct {
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	FPS           int        `yaml:"fps"`
	EpisodeLength int        `yaml:"episode_length"`
	DataDir       string     `yaml:"data_dir"`
	ActionNames   []string   `yaml:"action_names"`
	Demo          DemoConfig `yaml:"demo"`
}

type DemoConfig struct {
	Steps  int   `yaml:"steps"`
	Seed   int64 `yaml:"seed"`
	Record bool  `yaml:"record"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		FPS:           DefaultFPS,
		EpisodeLength: DefaultEpisodeLength,
		DataDir:       DefaultDataDir,
		ActionNames:   snapshot.DefaultActionNames(),
		Demo: DemoConfig{
			Steps: DefaultDemoSteps,
		},
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
