package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Validation collects everything wrong (or suspicious) with a config so
// the UI can show it all at once.
type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills unset digest knobs from defaults, then
// checks ranges. The returned config is safe to save when vr.OK().
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var vr Validation
	def := Default()

	if cfg.App.Port == 0 {
		cfg.App.Port = def.App.Port
	}
	if cfg.Digest.MaxJobs == 0 {
		cfg.Digest.MaxJobs = def.Digest.MaxJobs
	}
	if cfg.Digest.DefaultMinScore == 0 {
		cfg.Digest.DefaultMinScore = def.Digest.DefaultMinScore
	}

	if cfg.App.Port < 1 || cfg.App.Port > 65535 {
		vr.Errors = append(vr.Errors, "app.port must be 1..65535")
	}
	if cfg.Digest.MaxJobs < 1 {
		vr.Errors = append(vr.Errors, "digest.max_jobs must be >= 1")
	}
	if cfg.Digest.DefaultMinScore < 0 || cfg.Digest.DefaultMinScore > 100 {
		vr.Errors = append(vr.Errors, "digest.default_min_score must be 0..100")
	}
	if cfg.Digest.MaxJobs > 50 {
		vr.Warnings = append(vr.Warnings, fmt.Sprintf("digest.max_jobs=%d is large for a daily digest", cfg.Digest.MaxJobs))
	}

	return cfg, vr
}

// SaveAtomic validates and writes the config via tmp+rename, keeping the
// previous file as .bak.
func SaveAtomic(path string, cfg Config) error {
	if _, vr := NormalizeAndValidate(cfg); !vr.OK() {
		return fmt.Errorf("config validation failed: %v", vr.Errors)
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
