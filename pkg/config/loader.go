package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// defaultCandidates are probed, in order, when no config path is given
var defaultCandidates = []string{
	".darkrc.yaml",
	".darkrc.yml",
	".darkrc.hcl",
	".darkrc",
}

// 🎯 Load loads the configuration from path. An empty path probes the
// default candidates and falls back to Default() when none exists; an
// explicit path that cannot be read is an error.
func Load(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		for _, candidate := range defaultCandidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			zerolog.Ctx(ctx).Debug().Msg("no config file found, using defaults")
			cfg := Default()
			if err := cfg.Validate(); err != nil {
				return nil, errors.Errorf("validating default config: %w", err)
			}
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := parse(ctx, path, data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("root", cfg.Root).
		Str("include", cfg.Include).
		Msg("loaded config")

	return cfg, nil
}

// parse picks a parser for path; a bare .darkrc file tries YAML then HCL
func parse(ctx context.Context, path string, data []byte) (*Config, error) {
	if p := GetParser(path); p != nil {
		return p.Parse(ctx, data)
	}

	cfg, yamlErr := (&YAMLParser{}).Parse(ctx, data)
	if yamlErr == nil {
		return cfg, nil
	}
	cfg, hclErr := (&HCLParser{}).Parse(ctx, data)
	if hclErr == nil {
		return cfg, nil
	}
	return nil, errors.Errorf("parsing %s as YAML or HCL: %w", path, yamlErr)
}
