// Package config loads settings of the a11ycheck command.
//
// Settings come from an optional YAML file, then from A11YCHECK_* environment
// variables overriding what the file says.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/a11ycheck"
)

// File is the configuration file layout. Fields with an env tag can be
// overridden from the environment.
type File struct {
	Exclude                []string         `yaml:"exclude"                  env:"A11YCHECK_EXCLUDE"        envSeparator:","`
	Device                 a11ycheck.Device `yaml:"device"                   env:"A11YCHECK_DEVICE"`
	ThrowOnFailure         bool             `yaml:"throw_on_failure"         env:"A11YCHECK_THROW"`
	IncludeSourceReference bool             `yaml:"include_source_reference" env:"A11YCHECK_INCLUDE_SOURCE"`
	IgnoreIDs              []string         `yaml:"ignore_ids"               env:"A11YCHECK_IGNORE_IDS"     envSeparator:","`

	// IgnoreElements lists element names (component display names or
	// tag#id) whose failures are suppressed.
	IgnoreElements []string `yaml:"ignore_elements"`
}

// Load reads the file at path and applies environment overrides. An empty
// path means there is no file.
func Load(path string) (File, error) {
	var f File
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := ParseEnv(&f); err != nil {
		return File{}, err
	}
	return f, nil
}

// ParseEnv loads configuration from environment variables. Fields whose
// variables are unset keep their values.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Engine converts settings into the engine configuration.
func (f File) Engine() a11ycheck.Config {
	return a11ycheck.Config{
		Exclude:                slices.Clone(f.Exclude),
		Device:                 f.Device,
		ThrowOnFailure:         f.ThrowOnFailure,
		IncludeSourceReference: f.IncludeSourceReference,
		Filter:                 f.filter(),
	}
}

func (f File) filter() func(name, id string) bool {
	if len(f.IgnoreIDs) == 0 && len(f.IgnoreElements) == 0 {
		return nil
	}

	ids := set(f.IgnoreIDs)
	names := set(f.IgnoreElements)
	return func(name, id string) bool {
		if _, ok := ids[id]; ok {
			return false
		}
		if _, ok := names[name]; ok {
			return false
		}
		return true
	}
}

func set(items []string) map[string]struct{} {
	res := make(map[string]struct{}, len(items))
	for _, item := range items {
		res[item] = struct{}{}
	}
	return res
}
