// Package config holds the tool configuration. Everything is optional;
// the compiled-in defaults match a standard OpenClaw host.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full tool configuration.
type Config struct {
	// OpenClawPath is the openclaw binary name or absolute path.
	OpenClawPath string `yaml:"openclaw_path"`
	// DiskPath is the filesystem sampled for capacity.
	DiskPath string `yaml:"disk_path"`
	// GitServers are the services probed over TCP on localhost.
	GitServers []GitServer `yaml:"git_servers"`
}

// GitServer names one probed service.
type GitServer struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

// Default returns the built-in configuration: the openclaw binary from
// PATH, the root filesystem, and the forgejo/gitea daemons on their
// standard local ports.
func Default() *Config {
	return &Config{
		OpenClawPath: "openclaw",
		DiskPath:     "/",
		GitServers: []GitServer{
			{Name: "forgejo", Port: 3001},
			{Name: "gitea", Port: 3000},
		},
	}
}

// Load reads a YAML config file over the defaults, so a partial file
// only overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.OpenClawPath == "" {
		return fmt.Errorf("openclaw_path must not be empty")
	}
	if c.DiskPath == "" {
		return fmt.Errorf("disk_path must not be empty")
	}
	for _, s := range c.GitServers {
		if s.Name == "" {
			return fmt.Errorf("git server with port %d has no name", s.Port)
		}
		if s.Port <= 0 || s.Port > 65535 {
			return fmt.Errorf("git server %q has invalid port %d", s.Name, s.Port)
		}
	}
	return nil
}
