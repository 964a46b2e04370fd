package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

const (
	dirName  = ".storefront"
	fileName = "config.yaml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultDir returns ~/.storefront.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns ~/.storefront/config.yaml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load builds the configuration: defaults, then the YAML file, then
// overrides, then validation. An empty path means the default location,
// which may be absent; an explicit path must exist.
func Load(path string, overrides Overrides) (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, fileName)
	}

	cfg := Default(dir)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, apperrors.NewParseError(path, extractLine(err), err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg.Apply(overrides)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
