// Package config loads the application configuration from the user's
// config directory, filling in defaults for anything missing.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tavlaboard/tavla/internal/models"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings     `yaml:"key_mappings"`
	ColorScheme ColorScheme     `yaml:"theme"`
	Storage     StorageConfig   `yaml:"storage"`
	Board       BoardConfig     `yaml:"board"`
	Projects    []ProjectConfig `yaml:"projects"`
}

// StorageConfig selects and locates the persistence backend
type StorageConfig struct {
	// Backend is "json" or "sqlite"
	Backend string `yaml:"backend"`
	// Path overrides the default data file location
	Path string `yaml:"path"`
}

// BoardConfig holds board behavior settings
type BoardConfig struct {
	// DateFilter selects the date-range filter policy: "due" matches on
	// due date only, "any" matches when either the start or due date
	// falls within the bounds.
	DateFilter string `yaml:"date_filter"`
}

// ProjectConfig is a seed project entry
type ProjectConfig struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	CreatedAt   time.Time `yaml:"created_at"`
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Load loads config from the user's config directory
// Returns default config if the file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// SeedProjects converts the configured project entries to model values
func (c *Config) SeedProjects() []models.Project {
	projects := make([]models.Project, 0, len(c.Projects))
	for _, p := range c.Projects {
		projects = append(projects, models.Project{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		})
	}
	return projects
}

// DataPath resolves the task data file for the configured backend
func (c *Config) DataPath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	name := "tasks.json"
	if c.Storage.Backend == BackendSQLite {
		name = "tasks.db"
	}
	return filepath.Join(home, ".tavla", name), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tavla", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tavla", "config.yaml"), nil
}

func defaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendJSON
	}
	if c.Board.DateFilter == "" {
		c.Board.DateFilter = "due"
	}
}
