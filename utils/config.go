package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds drawing and seeding configuration
type Config struct {
	Architecture []int   `env:"DNNKIT_LAYERS" envSeparator:" "`
	ArchFile     string  `env:"DNNKIT_ARCH_FILE"`
	SaveArch     string  `env:"DNNKIT_SAVE_ARCH"`
	Seed         int64   `env:"DNNKIT_SEED" envDefault:"42"`
	Output       string  `env:"DNNKIT_OUTPUT"`
	Width        float64 `env:"DNNKIT_WIDTH" envDefault:"6.4"`  // inches
	Height       float64 `env:"DNNKIT_HEIGHT" envDefault:"4.8"` // inches
	Show         bool    `env:"DNNKIT_SHOW" envDefault:"true"`
	Verbose      bool    `env:"DNNKIT_VERBOSE" envDefault:"true"`
}

// LoadConfigFromEnv returns the configuration described by DNNKIT_* variables.
func LoadConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// ParseArchitecture parses architecture string into slice of integers
func ParseArchitecture(archStr string) ([]int, error) {
	archParts := strings.Fields(archStr)
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		arch[i] = n
	}
	return arch, nil
}

// FormatArchitecture is the inverse of ParseArchitecture.
func FormatArchitecture(arch []int) string {
	parts := make([]string, len(arch))
	for i, n := range arch {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

// ValidateConfig validates drawing configuration
func ValidateConfig(config *Config) error {
	if len(config.Architecture) == 0 {
		return fmt.Errorf("architecture must have at least 1 layer")
	}

	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g", config.Width, config.Height)
	}

	return nil
}
