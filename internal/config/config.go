package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Catalog struct {
		// Path overrides the bootstrapped data-dir catalog when set.
		Path string `yaml:"path" json:"path"`
	} `yaml:"catalog" json:"catalog"`

	Digest struct {
		MaxJobs         int `yaml:"max_jobs" json:"max_jobs"`
		DefaultMinScore int `yaml:"default_min_score" json:"default_min_score"`
	} `yaml:"digest" json:"digest"`
}

// Default is the configuration the engine ships with.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38473
	cfg.Digest.MaxJobs = 10
	cfg.Digest.DefaultMinScore = 20
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
