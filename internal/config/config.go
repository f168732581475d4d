// Package config loads the YAML configuration shared by the server and
// client binaries, layered under flag defaults set by cobra.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Server holds the arbiter's tunable settings.
type Server struct {
	ListenAddr string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
	MazeFile   string `yaml:"maze_file"`
	LogLevel   string `yaml:"log_level"`
}

// Client holds the navigator's tunable settings.
type Client struct {
	ServerAddr string   `yaml:"server_addr"`
	TeamName   string   `yaml:"team_name"`
	Players    []string `yaml:"players"`
	LogLevel   string   `yaml:"log_level"`
}

// DefaultServer returns the built-in defaults, used when no config file is
// given and no flags override them.
func DefaultServer() Server {
	return Server{
		ListenAddr: "127.0.0.1:8778",
		MetricsAddr: "",
		MazeFile:   "",
		LogLevel:   "info",
	}
}

// DefaultClient returns the built-in defaults for the client binary.
func DefaultClient() Client {
	return Client{
		ServerAddr: "127.0.0.1:8778",
		TeamName:   "wanderers",
		Players:    []string{"scout"},
		LogLevel:   "info",
	}
}

// LoadServer reads and merges a YAML file over DefaultServer. A missing
// path is not an error: callers pass an empty path to skip loading.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}

// LoadClient reads and merges a YAML file over DefaultClient.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}
