package config

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 📚 Config holds the run options. The rewrite rule table itself is fixed
// and lives in pkg/rules; only where and how to run is configurable.
type Config struct {
	Root    string // Directory to scan
	Include string // Base-name glob for files to rewrite
	Workers int    // Parallel file workers, 1 means sequential
	DryRun  bool   // Report changes without writing them
}

// 🏭 Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Root:    "src",
		Include: "*.tsx",
		Workers: 1,
	}
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = "src"
	}
	if cfg.Include == "" {
		cfg.Include = "*.tsx"
	}
	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	return nil
}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the list of available parsers
var parsers []Parser

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}
