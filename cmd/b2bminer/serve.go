package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"
)

// defaultServeConcurrency is the concurrent fetch limit the server uses
// when the config file doesn't set one.
const defaultServeConcurrency = 4

// ServeConfig is the YAML layout of the serve configuration file.
type ServeConfig struct {
	Addr        string `yaml:"addr"`
	DB          string `yaml:"db"`
	Fetcher     string `yaml:"fetcher"`
	Concurrency int    `yaml:"concurrency"`
	MaxFetch    int    `yaml:"max_fetch"`
	SeedPaths   bool   `yaml:"seed_paths"`
}

// LoadServeConfig reads the YAML config at path. An empty path returns
// the defaults.
func LoadServeConfig(path string) (*ServeConfig, error) {
	cfg := &ServeConfig{Concurrency: defaultServeConcurrency}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultServeConcurrency
	}

	return cfg, nil
}

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if err := deps.Server.Open(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", deps.Server.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return deps.Server.Close()
}
