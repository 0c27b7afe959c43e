package config

import (
	"bytes"
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define YAML schema
	type yamlConfig struct {
		Root    string `yaml:"root,omitempty"`
		Include string `yaml:"include,omitempty"`
		Workers int    `yaml:"workers,omitempty"`
		DryRun  bool   `yaml:"dry_run,omitempty"`
	}

	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &Config{
		Root:    yamlCfg.Root,
		Include: yamlCfg.Include,
		Workers: yamlCfg.Workers,
		DryRun:  yamlCfg.DryRun,
	}, nil
}
