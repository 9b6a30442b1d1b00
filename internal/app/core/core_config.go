package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig holds server settings from config.yaml.
type FileConfig struct {
	Server struct {
		Host  string `yaml:"host"`
		Port  int    `yaml:"port"`
		Debug bool   `yaml:"debug"`
	} `yaml:"server"`

	NoColors bool `yaml:"no_colors"`
}

const defaultConfigContent = `# config.yaml

server:
  host: "0.0.0.0"   # Listen address for the HTTP server
  port: 8000        # Listen port
  debug: false      # Verbose request logging

no_colors: false    # Disable colorful terminal output
`

// LoadFileConfig reads config.yaml, generating a commented default file on
// first run. HOST, PORT and DEBUG environment variables override the file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigContent), 0644); err != nil {
			return nil, fmt.Errorf("write default config file: %w", err)
		}
		data = []byte(defaultConfigContent)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *FileConfig) {
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}
	if debug := os.Getenv("DEBUG"); debug != "" {
		cfg.Server.Debug = strings.EqualFold(debug, "true")
	}
}

// ListenAddr joins the configured host and port.
func (c *FileConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
