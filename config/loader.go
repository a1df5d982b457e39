// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where Load looks when no path is given.
const DefaultConfigPath = "goscope.yaml"

// Loader reads and validates a configuration file.
type Loader struct {
	configPath string
}

func NewLoader(configPath string) *Loader {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	return &Loader{configPath: configPath}
}

// Load parses the file at the loader's path, applies defaults for
// missing fields and clamps out-of-range values.
func (l *Loader) Load() (*Config, error) {
	raw, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, NewReadError(l.configPath, err)
	}

	cfg := Default()
	err = yaml.Unmarshal(raw, cfg)
	if err != nil {
		return nil, NewParseError(l.configPath, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
