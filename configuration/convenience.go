package configuration

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/willibrandon/timber"
)

// BaseFile is the configuration file read by CreateRegistryFromEnvironment.
const BaseFile = "timber.json"

// CreateRegistryFromFile creates a registry from a JSON configuration file.
func CreateRegistryFromFile(filename string) (*timber.Registry, error) {
	config, err := LoadFromFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}

	return NewRegistryBuilder().Build(config)
}

// CreateRegistryFromJSON creates a registry from JSON configuration data.
func CreateRegistryFromJSON(jsonData []byte) (*timber.Registry, error) {
	config, err := LoadFromJSON(jsonData)
	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}

	return NewRegistryBuilder().Build(config)
}

// LoadForEnvironment reads timber.json and, when environment is set,
// timber.<environment>.json from dir, the second overriding the first.
// Missing files are skipped.
func LoadForEnvironment(dir, environment string) (*Configuration, error) {
	base, err := LoadFromFile(filepath.Join(dir, BaseFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load base configuration")
	}
	if base == nil {
		base = &Configuration{}
	}

	if environment != "" {
		envFile := filepath.Join(dir, fmt.Sprintf("timber.%s.json", environment))
		override, err := LoadFromFile(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, "load environment configuration")
		}
		if override != nil {
			mergeConfiguration(base, override)
		}
	}
	return base, nil
}

// CreateRegistryFromEnvironment builds the registry described by
// LoadForEnvironment in the working directory.
func CreateRegistryFromEnvironment(environment string) (*timber.Registry, error) {
	config, err := LoadForEnvironment("", environment)
	if err != nil {
		return nil, err
	}
	return NewRegistryBuilder().Build(config)
}

// mergeConfiguration merges source into target. A non-empty sink list in
// source replaces the one in target.
func mergeConfiguration(target, source *Configuration) {
	if source.Timber.Name != "" {
		target.Timber.Name = source.Timber.Name
	}
	if len(source.Timber.Sinks) > 0 {
		target.Timber.Sinks = source.Timber.Sinks
	}
}
