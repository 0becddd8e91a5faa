package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	float "github.com/grindlemire/go-float"
)

// config holds flag defaults taken from the environment.
type config struct {
	Placement float.Placement `envconfig:"FLOAT_PLACEMENT" default:"bottom"`
	Offset    float64         `envconfig:"FLOAT_OFFSET" default:"0"`
	Padding   float64         `envconfig:"FLOAT_PADDING" default:"0"`
	Arrow     float64         `envconfig:"FLOAT_ARROW" default:"0"`
	Debug     string          `envconfig:"FLOAT_DEBUG"`
}

// loadConfig reads envFile into the environment, if it exists, and then
// processes FLOAT_* variables. Variables already set in the environment take
// precedence over the file.
func loadConfig(envFile string) (config, error) {
	var cfg config

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// options turns the configured defaults into resolver options.
func (c config) options() float.Options {
	return float.Options{
		Placement: c.Placement,
		Offset:    c.Offset,
		ArrowSize: c.Arrow,
		ShowArrow: c.Arrow > 0,
	}
}
