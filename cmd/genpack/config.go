package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level genpack.yaml configuration: the set of
// Go packages to scan for serialize candidates and where their generated
// siblings should land.
type Config struct {
	// Packages lists the go/packages load patterns to scan (e.g.
	// "./internal/models", "./..."). Each is compiled independently so a
	// diagnostic in one package never blocks generation in another.
	Packages []string `yaml:"packages"`
}

// LoadConfig reads and parses a genpack.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses genpack.yaml content from bytes. path is used only in
// error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig searches for genpack.yaml starting from dir and walking up to
// parent directories, the same way a .gitignore is located.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "genpack.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		candidate = filepath.Join(dir, "genpack.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	if len(c.Packages) == 0 {
		return fmt.Errorf("%s: no packages defined", path)
	}
	for i, p := range c.Packages {
		if p == "" {
			return fmt.Errorf("%s: packages[%d]: empty pattern", path, i)
		}
	}
	return nil
}
