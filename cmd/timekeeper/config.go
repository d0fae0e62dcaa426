package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/timekeeper/internal/api"
	"github.com/nikmy/timekeeper/internal/auth"
	"github.com/nikmy/timekeeper/internal/availability"
	"github.com/nikmy/timekeeper/internal/repo"
	"github.com/nikmy/timekeeper/internal/telegram"
	"github.com/nikmy/timekeeper/pkg/environment"
	"github.com/nikmy/timekeeper/pkg/errors"
)

type Config struct {
	Environment     environment.Env     `yaml:"Environment"`
	ShutdownTimeout time.Duration       `yaml:"ShutdownTimeout"`
	API             api.Config          `yaml:"API"`
	Auth            auth.Config         `yaml:"Auth"`
	Availability    availability.Config `yaml:"Availability"`
	Mongo           repo.Config         `yaml:"Mongo"`
	Telegram        telegram.Config     `yaml:"Telegram"`
}

const defaultShutdownTimeout = 5 * time.Second

type flags struct {
	env    string
	config string
}

func parseFlags(args []string) (flags, error) {
	var f flags

	fs := flag.NewFlagSet("timekeeper", flag.ContinueOnError)
	fs.StringVar(&f.env, "env", "", "environment (dev, prod)")
	fs.StringVar(&f.config, "config", "config.yaml", "path to config file")

	err := fs.Parse(args)
	return f, errors.WrapFail(err, "parse flags")
}

func loadConfig(f flags) (*Config, error) {
	path, err := filepath.Abs(f.config)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	return parseConfig(data, f.env)
}

func parseConfig(data []byte, envOverride string) (*Config, error) {
	var cfg Config
	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if envOverride != "" {
		cfg.Environment = environment.FromString(envOverride)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return &cfg, nil
}
