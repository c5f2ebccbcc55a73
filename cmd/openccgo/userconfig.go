package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// userConfig holds the per-user CLI defaults loaded from ~/.openccgo.yaml.
// Fields mirror the flags they can default: explicit flags always win.
type userConfig struct {
	Config string `yaml:"config"`
	InEnc  string `yaml:"in_enc"`
	OutEnc string `yaml:"out_enc"`
	Punct  *bool  `yaml:"punct"`
}

// loadUserConfig reads ~/.openccgo.yaml if present. A missing file is not
// an error; a malformed one is.
func loadUserConfig() (userConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return userConfig{}, nil
	}

	path := filepath.Join(home, ".openccgo.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return userConfig{}, nil
		}
		return userConfig{}, errors.Wrapf(err, "read %q", path)
	}

	var cfg userConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return userConfig{}, errors.Wrapf(err, "parse %q", path)
	}
	return cfg, nil
}

// applyStringDefault and applyBoolDefault overwrite *flag with fallback
// only when *flag is still its
// zero value, so a CLI flag the user actually passed always wins over the
// config file default.
func applyStringDefault(flag *string, fallback string) {
	if *flag == "" {
		*flag = fallback
	}
}

func applyBoolDefault(flag *bool, fallback *bool) {
	if !*flag && fallback != nil {
		*flag = *fallback
	}
}
