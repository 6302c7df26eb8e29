package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Model identifier sent to the generative language API
	Model string `yaml:"model"`

	// Base URL of the generative language API
	BaseURL string `yaml:"base_url"`

	// Request timeout in seconds
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Path to the project dataset CSV
	DataPath string `yaml:"data_path"`

	// Path to the analysis history database
	HistoryPath string `yaml:"history_path"`

	// API key for the generative language service. Never written to the
	// config file; populated from the environment at load time.
	APIKey string `yaml:"-"`
}

// Dir returns the configuration directory, creating it if needed.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(homeDir, ".plens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}

// Default returns the configuration defaults rooted at configDir.
func Default(configDir string) *Config {
	return &Config{
		Model:          "gemini-1.5-flash",
		BaseURL:        "https://generativelanguage.googleapis.com/v1beta",
		TimeoutSeconds: 30,
		DataPath:       "project_data.csv",
		HistoryPath:    filepath.Join(configDir, "history.db"),
	}
}

// Load loads the configuration from the given file path, falling back to
// defaults when the file does not exist, then applies environment
// overrides. The API key is read from GEMINI_API_KEY.
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if dataPath := os.Getenv("PLENS_DATA_PATH"); dataPath != "" {
		cfg.DataPath = dataPath
	}
	if model := os.Getenv("PLENS_MODEL"); model != "" {
		cfg.Model = model
	}
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")

	return cfg, nil
}

// Save saves the configuration to the given file path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
