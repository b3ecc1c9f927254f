package config

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# templa configuration\n# replace pairs are applied in ascending byte order of their keys\n"

// Decode reads YAML from r over the defaults. Unknown keys are rejected so a
// misspelled option does not silently fall back to its default.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Replace == nil {
		cfg.Replace = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("failed to read config file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// SaveToFile writes cfg as YAML, creating parent directories
func SaveToFile(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("invalid configuration: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return errors.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return errors.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigPath returns $HOME/.config/templa/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "templa", "config.yaml"), nil
}

// LoadDefault loads the file at DefaultConfigPath, falling back to the
// defaults when there is no home directory or no file
func LoadDefault() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return Default(), nil
	}

	cfg, err := LoadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
