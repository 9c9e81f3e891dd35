// Package config loads the generator configuration: where content
// lives, where the site is written, and how the serve command runs.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
}

// ContentConfig locates the editable content files.
type ContentConfig struct {
	Dir      string `yaml:"dir"`                 // pages.csv, links.csv, site.json live here
	BlogDir  string `yaml:"blog_dir,omitempty"`  // defaults to <dir>/blog
	MediaDir string `yaml:"media_dir,omitempty"` // defaults to <dir>/media
}

// OutputConfig controls where the generated site is written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// ServerConfig configures the serve and preview commands.
type ServerConfig struct {
	Addr            string        `yaml:"addr,omitempty"`
	SignupsPath     string        `yaml:"signups_path,omitempty"`     // newsletter signup CSV
	RebuildInterval time.Duration `yaml:"rebuild_interval,omitempty"` // 0 disables scheduled rebuilds
	MetricsEnabled  bool          `yaml:"metrics_enabled,omitempty"`
}

// HistoryConfig configures the build history database.
type HistoryConfig struct {
	Path string `yaml:"path,omitempty"` // empty disables history recording
}

// Load loads configuration from the specified file. A .env file in
// the working directory is applied first, and environment variables
// are expanded inside the YAML before parsing.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.Content.Dir == "" {
		c.Content.Dir = "./content"
	}
	if c.Content.BlogDir == "" {
		c.Content.BlogDir = c.Content.Dir + "/blog"
	}
	if c.Content.MediaDir == "" {
		c.Content.MediaDir = c.Content.Dir + "/media"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./site"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.SignupsPath == "" {
		c.Server.SignupsPath = c.Output.Directory + "/data/newsletter_signups.csv"
	}
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Content: ContentConfig{Dir: "./content"},
		Output:  OutputConfig{Directory: "./site"},
		Server: ServerConfig{
			Addr:            ":8080",
			RebuildInterval: 15 * time.Minute,
			MetricsEnabled:  true,
		},
		History: HistoryConfig{Path: "./sitegen-history.db"},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
