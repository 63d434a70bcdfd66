// Package config manages the app settings file kept in the user's home
// directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600
)

// Config represents app config object.
type Config struct {
	// LogLevel is the minimum level printed to the console.
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, receives a JSON copy of every log record.
	LogFile string `yaml:"log_file"`

	// ReportSuffix is the file extension of per-model importance reports.
	ReportSuffix string `yaml:"report_suffix"`

	// TopFeatures caps how many records are read from each report.
	TopFeatures int `yaml:"top_features"`

	// FragmentsCmd and DescriptorsCmd are the argv templates for the
	// external extraction tools; see pkg/chem for the placeholders.
	FragmentsCmd   []string `yaml:"fragments_cmd"`
	DescriptorsCmd []string `yaml:"descriptors_cmd"`
}

func getDefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		ReportSuffix: "am",
		TopFeatures:  20,
		FragmentsCmd: []string{
			"extract-fragments", "-i", "{input}", "-o", "{output}", "-t", "{types}",
		},
		DescriptorsCmd: []string{
			"generate-descriptors", "-i", "{input}", "-o", "{output}", "-g", "{generator}", "-p", "{tool}",
		},
	}
}

func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("failed to write config file: %s: %w", configFileName, err)
	}
	return nil
}

// ReadOrCreate reads app config from directory or creates a new one.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(dirPath, dirMode); err != nil {
			return nil, fmt.Errorf("failed to create dir: %s: %w", dirPath, err)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(dirPath, getDefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %s: %w", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file: %s: %w", path, err)
	}
	return &c, nil
}

// GetOrCreateHomeDir returns the home directory for the current user.
// The create flag is set to true if the directory was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to get user home dir: %w", err)
	}
	slog.Debug("home dir", "path", home)

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, fmt.Errorf("failed to create dir: %s: %w", dir, err)
		}
		created = true
	}
	return dir, created, nil
}
